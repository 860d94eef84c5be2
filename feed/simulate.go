package feed

import (
	"context"
	"math/rand"
	"time"

	"github.com/raykavin/kchart/core"
)

// Simulator generates a random-walk candle stream. Useful for demos and
// testing real-time chart updates without a live data source.
type Simulator struct {
	current core.Candle
	step    time.Duration
	rnd     *rand.Rand
	updates int
}

// NewSimulator starts a random walk from the given candle, producing a
// completed candle every few updates and partial updates in between
func NewSimulator(start core.Candle, step time.Duration) *Simulator {
	if start.Empty() {
		start = core.Candle{
			Time:   time.Now().Truncate(step),
			Open:   100.0,
			High:   105.0,
			Low:    95.0,
			Close:  100.0,
			Volume: 1000.0,
		}
	}
	return &Simulator{
		current: start,
		step:    step,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next implements CandleFeeder
func (s *Simulator) Next(_ context.Context) (core.Candle, error) {
	priceChange := (s.rnd.Float64() - 0.5) * 2.0
	newClose := s.current.Close + priceChange

	if newClose > s.current.High {
		s.current.High = newClose
	}
	if newClose < s.current.Low {
		s.current.Low = newClose
	}
	s.current.Close = newClose
	s.current.Volume += s.rnd.Float64() * 10.0
	s.updates++

	// roll over to a fresh candle every ten updates or so
	if s.updates >= 10 {
		s.updates = 0
		done := s.current
		done.Complete = true

		s.current = core.Candle{
			Time:   done.Time.Add(s.step),
			Open:   done.Close,
			High:   done.Close,
			Low:    done.Close,
			Close:  done.Close,
			Volume: 0,
		}
		return done, nil
	}

	return s.current, nil
}

// History produces n completed candles up front, advancing the walk
func (s *Simulator) History(n int) []core.Candle {
	out := make([]core.Candle, 0, n)
	for len(out) < n {
		candle, _ := s.Next(context.Background())
		if candle.Complete {
			out = append(out, candle)
		}
	}
	return out
}
