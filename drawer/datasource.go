// Package drawer provides the built-in data series renderers: bars, candles
// and lines, together with the slice-backed data sources feeding them.
package drawer

import (
	"github.com/raykavin/kchart/core"
)

// FloatSource is a slice-backed data source of scalar values
type FloatSource struct {
	values   core.Series[float64]
	onChange func()
}

// NewFloatSource creates a source pre-filled with the given values
func NewFloatSource(values ...float64) *FloatSource {
	return &FloatSource{values: values}
}

// SetOnChange registers the observer notified when the data changes,
// typically the owning surface's invalidation hook
func (s *FloatSource) SetOnChange(fn func()) {
	s.onChange = fn
}

func (s *FloatSource) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Append adds values to the end of the source
func (s *FloatSource) Append(values ...float64) {
	s.values = append(s.values, values...)
	s.notify()
}

// Clear removes all values
func (s *FloatSource) Clear() {
	s.values = s.values[:0]
	s.notify()
}

// Len returns the number of values
func (s *FloatSource) Len() int {
	return len(s.values)
}

// At returns the value at index i
func (s *FloatSource) At(i int) float64 {
	return s.values[i]
}

// Window returns the values covering [begin, end), clamped to bounds
func (s *FloatSource) Window(begin, end int) core.Series[float64] {
	return s.values.Window(begin, end)
}

// CandleSource is a slice-backed data source of OHLCV records
type CandleSource struct {
	candles  []core.Candle
	onChange func()
}

// NewCandleSource creates a source pre-filled with the given candles
func NewCandleSource(candles ...core.Candle) *CandleSource {
	return &CandleSource{candles: candles}
}

// SetOnChange registers the observer notified when the data changes,
// typically the owning surface's invalidation hook
func (s *CandleSource) SetOnChange(fn func()) {
	s.onChange = fn
}

func (s *CandleSource) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Append adds candles to the end of the source
func (s *CandleSource) Append(candles ...core.Candle) {
	s.candles = append(s.candles, candles...)
	s.notify()
}

// Update replaces the last candle when the incoming one carries the same
// timestamp, otherwise appends. Live feeds push partial candles this way.
func (s *CandleSource) Update(c core.Candle) {
	if n := len(s.candles); n > 0 && s.candles[n-1].Time.Equal(c.Time) {
		s.candles[n-1] = c
		s.notify()
		return
	}
	s.candles = append(s.candles, c)
	s.notify()
}

// Clear removes all candles
func (s *CandleSource) Clear() {
	s.candles = s.candles[:0]
	s.notify()
}

// Len returns the number of candles
func (s *CandleSource) Len() int {
	return len(s.candles)
}

// At returns the candle at index i
func (s *CandleSource) At(i int) core.Candle {
	return s.candles[i]
}

// Window returns the candles covering [begin, end), clamped to bounds
func (s *CandleSource) Window(begin, end int) []core.Candle {
	if begin < 0 {
		begin = 0
	}
	if end > len(s.candles) {
		end = len(s.candles)
	}
	if begin >= end {
		return nil
	}
	return s.candles[begin:end]
}

// Closes returns the close values of all candles
func (s *CandleSource) Closes() []float64 {
	out := make([]float64, len(s.candles))
	for i, c := range s.candles {
		out[i] = c.Close
	}
	return out
}
