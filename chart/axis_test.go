package chart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/painter/record"
)

func TestTickData_Generate(t *testing.T) {
	var d TickData
	d.Generate(0, 10, 5, false)

	ticks := d.Ticks()
	require.Len(t, ticks, 5)
	require.InDelta(t, 0.0, ticks[0].Value, 1e-9)
	require.InDelta(t, 8.0, ticks[4].Value, 1e-9)
}

func TestTickData_GenerateSkipFirst(t *testing.T) {
	var d TickData
	d.Generate(0, 10, 5, true)

	ticks := d.Ticks()
	require.Len(t, ticks, 4)
	require.InDelta(t, 2.0, ticks[0].Value, 1e-9)
}

func TestTickData_GenerateEmptyRange(t *testing.T) {
	var d TickData
	d.Generate(5, 5, 5, false)
	require.Empty(t, d.Ticks())

	d.Generate(0, 10, 0, false)
	require.Empty(t, d.Ticks())
}

func frameConfig(begin, end int, yLow, yHigh float64) *core.DrawConfig {
	cfg := &core.DrawConfig{Begin: begin, End: end, YLow: yLow, YHigh: yHigh, HasShowingData: true}
	cfg.Cache = buildDrawingCache(cfg, core.NewRect(80, 0, 400, 200), testLogger())
	return cfg
}

func TestValueAxis_DrawGridsHorizontal(t *testing.T) {
	a := NewBarAxisX()
	p := record.New()
	cfg := frameConfig(0, 10, 0, 100)

	a.PrepareDrawGrids(cfg, p)
	a.DrawGrids(cfg, p)

	require.Equal(t, 5, p.Count(record.OpLine))

	// vertical grid lines span the full plot height
	op := p.Ops[0]
	require.InDelta(t, op.From.X, op.To.X, 1e-9)
	require.InDelta(t, cfg.Cache.PlotArea.Top(), op.From.Y, 1e-9)
	require.InDelta(t, cfg.Cache.PlotArea.Bottom(), op.To.Y, 1e-9)
}

func TestValueAxis_DrawGridsVerticalSkipsLowest(t *testing.T) {
	a := NewValueAxis(core.Vertical)
	p := record.New()
	cfg := frameConfig(0, 10, 0, 100)

	a.PrepareDrawGrids(cfg, p)
	a.DrawGrids(cfg, p)

	// the bottom tick is skipped, leaving count-1 horizontal lines
	require.Equal(t, 4, p.Count(record.OpLine))
	op := p.Ops[0]
	require.InDelta(t, op.From.Y, op.To.Y, 1e-9)
}

func TestValueAxis_DrawTicksLabels(t *testing.T) {
	a := NewBarAxisX()
	p := record.New()
	cfg := frameConfig(0, 10, 0, 100)

	a.PrepareDrawTicks(cfg, p)
	a.DrawTicks(cfg, p)

	require.Equal(t, 5, p.Count(record.OpText))
	require.Equal(t, "0", p.Ops[0].Text)
	require.Equal(t, "8", p.Ops[4].Text)

	// labels sit below the plot area
	require.Greater(t, p.Ops[0].Pos.Y, cfg.Cache.PlotArea.Bottom())
}

func TestValueAxis_ColorNoneSuppressesDrawing(t *testing.T) {
	a := NewValueAxis(core.Vertical)
	a.GridColor = core.ColorNone
	a.TickColor = core.ColorNone

	p := record.New()
	cfg := frameConfig(0, 10, 0, 100)

	a.PrepareDrawGrids(cfg, p)
	a.DrawGrids(cfg, p)
	a.PrepareDrawTicks(cfg, p)
	a.DrawTicks(cfg, p)

	require.Empty(t, p.Ops)
}

func TestValueAxis_VisibilityFlags(t *testing.T) {
	a := NewValueAxis(core.Horizontal)
	require.True(t, a.Visible())
	require.True(t, a.GridsVisible())
	require.True(t, a.TicksVisible())

	a.GridVisible = false
	require.False(t, a.GridsVisible())
	require.Equal(t, core.Horizontal, a.Orientation())
}
