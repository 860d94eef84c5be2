package drawer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/painter/record"
)

func candleAt(hour int, open, close, low, high float64) core.Candle {
	return core.Candle{
		Time:     time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC),
		Open:     open,
		Close:    close,
		Low:      low,
		High:     high,
		Complete: true,
	}
}

func TestCandle_PrepareDraw(t *testing.T) {
	c := NewCandle(NewCandleSource(
		candleAt(0, 10, 12, 9, 13),
		candleAt(1, 12, 11, 8, 14),
		candleAt(2, 11, 15, 11, 16),
	))

	cfg := c.PrepareDraw(&core.DrawConfig{Begin: 0, End: 3})
	require.Equal(t, 8.0, cfg.YLow)
	require.Equal(t, 16.0, cfg.YHigh)

	cfg = c.PrepareDraw(&core.DrawConfig{Begin: 0, End: 1})
	require.Equal(t, 9.0, cfg.YLow)
	require.Equal(t, 13.0, cfg.YHigh)
}

func TestCandle_DrawBodyAndWick(t *testing.T) {
	c := NewCandle(NewCandleSource(candleAt(0, 10, 12, 9, 13)))
	p := record.New()

	c.Draw(&core.DrawConfig{Begin: 0, End: 1}, p)

	// one body plus one wick
	require.Equal(t, 2, p.Count(record.OpFillRect))

	body := p.Ops[0]
	require.Equal(t, c.GrowingColor, body.Brush)
	require.InDelta(t, 10.0, body.Rect.Top(), 1e-9)
	require.InDelta(t, 2.0, body.Rect.Height(), 1e-9)
	require.InDelta(t, c.BodyWidth, body.Rect.Width(), 1e-9)

	wick := p.Ops[1]
	require.InDelta(t, 9.0, wick.Rect.Top(), 1e-9)
	require.InDelta(t, 4.0, wick.Rect.Height(), 1e-9)
	require.InDelta(t, c.WickWidth, wick.Rect.Width(), 1e-9)

	// body and wick share the bin center
	require.InDelta(t, 0.5, body.Rect.Left()+body.Rect.Width()/2, 1e-9)
	require.InDelta(t, 0.5, wick.Rect.Left()+wick.Rect.Width()/2, 1e-9)
}

func TestCandle_DrawFallingColor(t *testing.T) {
	c := NewCandle(NewCandleSource(candleAt(0, 12, 10, 9, 13)))
	p := record.New()

	c.Draw(&core.DrawConfig{Begin: 0, End: 1}, p)
	require.Equal(t, c.FallingColor, p.Ops[0].Brush)
}

func TestCandle_FlatCandleKeepsMinimumHeight(t *testing.T) {
	c := NewCandle(NewCandleSource(candleAt(0, 10, 10, 10, 10)))
	p := record.New()

	c.Draw(&core.DrawConfig{Begin: 0, End: 1}, p)
	require.Equal(t, c.MinimumBoxHeight, p.Ops[0].Rect.Height())
}

func TestCandleSource_Update(t *testing.T) {
	s := NewCandleSource(candleAt(0, 10, 11, 9, 12))

	// same timestamp replaces the last candle
	s.Update(candleAt(0, 10, 11.5, 9, 12))
	require.Equal(t, 1, s.Len())
	require.Equal(t, 11.5, s.At(0).Close)

	// a new timestamp appends
	s.Update(candleAt(1, 11.5, 12, 11, 13))
	require.Equal(t, 2, s.Len())
}

func TestCandleSource_OnChange(t *testing.T) {
	s := NewCandleSource()

	changes := 0
	s.SetOnChange(func() { changes++ })

	s.Append(candleAt(0, 10, 11, 9, 12))
	s.Update(candleAt(0, 10, 11.5, 9, 12))
	s.Clear()
	require.Equal(t, 3, changes)
}

func TestCandleSource_WindowClamps(t *testing.T) {
	s := NewCandleSource(
		candleAt(0, 1, 1, 1, 1),
		candleAt(1, 2, 2, 2, 2),
		candleAt(2, 3, 3, 3, 3),
	)

	require.Len(t, s.Window(-5, 2), 2)
	require.Len(t, s.Window(1, 100), 2)
	require.Empty(t, s.Window(2, 2))
	require.Equal(t, []float64{1, 2, 3}, s.Closes())
}
