package drawer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/painter/record"
)

func TestBar_PrepareDraw(t *testing.T) {
	b := NewBar(NewFloatSource(3, -1, 4, 1, 5))

	cfg := b.PrepareDraw(&core.DrawConfig{Begin: 0, End: 5})
	require.Equal(t, -1.0, cfg.YLow)
	require.Equal(t, 5.0, cfg.YHigh)

	// only the visible window contributes
	cfg = b.PrepareDraw(&core.DrawConfig{Begin: 2, End: 4})
	require.Equal(t, 1.0, cfg.YLow)
	require.Equal(t, 4.0, cfg.YHigh)
}

func TestBar_PrepareDrawEmptyWindow(t *testing.T) {
	b := NewBar(NewFloatSource(1, 2))

	cfg := b.PrepareDraw(&core.DrawConfig{Begin: 10, End: 20, YLow: -7, YHigh: 7})
	require.Equal(t, -7.0, cfg.YLow)
	require.Equal(t, 7.0, cfg.YHigh)
}

func TestBar_DrawSignColors(t *testing.T) {
	b := NewBar(NewFloatSource(2, -3))
	p := record.New()

	b.Draw(&core.DrawConfig{Begin: 0, End: 2}, p)

	require.Equal(t, 2, p.Count(record.OpFillRect))
	require.Equal(t, b.PositiveColor, p.Ops[0].Brush)
	require.Equal(t, b.NegativeColor, p.Ops[1].Brush)

	// bars are centered on i+0.5 and grow from the zero line
	up := p.Ops[0].Rect
	require.InDelta(t, 0.5, up.Left()+up.Width()/2, 1e-9)
	require.InDelta(t, 0.0, up.Top(), 1e-9)
	require.InDelta(t, 2.0, up.Height(), 1e-9)

	down := p.Ops[1].Rect
	require.InDelta(t, -3.0, down.Top(), 1e-9)
	require.InDelta(t, 3.0, down.Height(), 1e-9)
}

func TestBar_DrawClampsRange(t *testing.T) {
	b := NewBar(NewFloatSource(1, 2, 3))
	p := record.New()

	b.Draw(&core.DrawConfig{Begin: -5, End: 50}, p)
	require.Equal(t, 3, p.Count(record.OpFillRect))
}

func TestBar_HasData(t *testing.T) {
	require.False(t, NewBar(NewFloatSource()).HasData())
	require.True(t, NewBar(NewFloatSource(1)).HasData())
}
