package drawer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/painter/record"
)

func TestLine_PrepareDrawUsesOffsetWindow(t *testing.T) {
	l := NewLine("blue")
	l.SetValues([]float64{5, 7, 3, 9}, 2)

	// range [2,6) maps to series indices [0,4)
	cfg := l.PrepareDraw(&core.DrawConfig{Begin: 2, End: 6})
	require.Equal(t, 3.0, cfg.YLow)
	require.Equal(t, 9.0, cfg.YHigh)
}

func TestLine_DrawPolyline(t *testing.T) {
	l := NewLine("blue")
	l.SetValues([]float64{1, 2, 3}, 0)
	p := record.New()

	l.Draw(&core.DrawConfig{Begin: 0, End: 3}, p)

	require.Equal(t, 2, p.Count(record.OpLine))
	require.Equal(t, core.Color("blue"), p.Ops[0].Pen)

	// segments pass through the bin centers
	require.Equal(t, core.Point{X: 0.5, Y: 1}, p.Ops[0].From)
	require.Equal(t, core.Point{X: 1.5, Y: 2}, p.Ops[0].To)
	require.Equal(t, core.Point{X: 2.5, Y: 3}, p.Ops[1].To)
}

func TestLine_DrawWithOffset(t *testing.T) {
	l := NewLine("blue")
	l.SetValues([]float64{10, 20}, 3)
	p := record.New()

	l.Draw(&core.DrawConfig{Begin: 0, End: 10}, p)

	require.Equal(t, 1, p.Count(record.OpLine))
	require.Equal(t, core.Point{X: 3.5, Y: 10}, p.Ops[0].From)
	require.Equal(t, core.Point{X: 4.5, Y: 20}, p.Ops[0].To)
}

func TestLine_SinglePointDrawsNothing(t *testing.T) {
	l := NewLine("blue")
	l.SetValues([]float64{42}, 0)
	p := record.New()

	l.Draw(&core.DrawConfig{Begin: 0, End: 5}, p)
	require.Empty(t, p.Ops)
}

func TestLine_HasData(t *testing.T) {
	l := NewLine("blue")
	require.False(t, l.HasData())
	l.SetValues([]float64{1}, 0)
	require.True(t, l.HasData())
}
