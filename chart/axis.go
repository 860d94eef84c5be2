package chart

import (
	"fmt"

	"github.com/raykavin/kchart/core"
)

// ValueAxis draws evenly spaced grid lines and value labels for one
// orientation. Tick positions come from its generated TickData source;
// a crosshair wrapping this axis replaces the source contents with the
// live cursor position before delegating.
type ValueAxis struct {
	orientation core.Orientation

	AxisVisible bool
	GridVisible bool
	TickVisible bool

	GridColor core.Color
	TickColor core.Color
	TickFont  core.Font

	// TickCount is how many ticks are generated across the visible range
	TickCount int

	// Format is the fmt verb applied to tick values
	Format string

	// TickSpacing is the gap in pixels between the plot area and labels
	TickSpacing float64

	source *TickData
}

// NewValueAxis creates an axis with the default presentation settings
func NewValueAxis(orientation core.Orientation) *ValueAxis {
	return &ValueAxis{
		orientation: orientation,
		AxisVisible: true,
		GridVisible: true,
		TickVisible: true,
		GridColor:   "gray",
		TickColor:   "white",
		TickFont:    core.Font{Size: 12},
		TickCount:   5,
		Format:      "%.2f",
		TickSpacing: 2,
	}
}

// NewBarAxisX creates a horizontal axis labeled with integer bar indices
func NewBarAxisX() *ValueAxis {
	a := NewValueAxis(core.Horizontal)
	a.Format = "%.0f"
	return a
}

// Orientation implements core.Axis.
func (a *ValueAxis) Orientation() core.Orientation { return a.orientation }

// Visible implements core.Axis.
func (a *ValueAxis) Visible() bool { return a.AxisVisible }

// GridsVisible implements core.Axis.
func (a *ValueAxis) GridsVisible() bool { return a.GridVisible }

// TicksVisible implements core.Axis.
func (a *ValueAxis) TicksVisible() bool { return a.TickVisible }

// Source exposes the tick source so decorating axes can drive it
func (a *ValueAxis) Source() *TickData {
	if a.source == nil {
		a.source = &TickData{}
	}
	return a.source
}

// PrepareDrawAxis implements core.Axis.
func (a *ValueAxis) PrepareDrawAxis(cfg *core.DrawConfig, p core.Painter) {}

// PrepareDrawGrids implements core.Axis.
func (a *ValueAxis) PrepareDrawGrids(cfg *core.DrawConfig, p core.Painter) {
	a.generate(cfg)
}

// PrepareDrawTicks implements core.Axis.
func (a *ValueAxis) PrepareDrawTicks(cfg *core.DrawConfig, p core.Painter) {
	a.generate(cfg)
}

func (a *ValueAxis) generate(cfg *core.DrawConfig) {
	if a.orientation == core.Horizontal {
		a.Source().Generate(float64(cfg.Begin), float64(cfg.End), a.TickCount, false)
		return
	}
	a.Source().Generate(cfg.YLow, cfg.YHigh, a.TickCount, true)
}

// DrawGrids implements core.Axis.
func (a *ValueAxis) DrawGrids(cfg *core.DrawConfig, p core.Painter) {
	if a.GridColor == core.ColorNone {
		return
	}
	p.SetPen(a.GridColor)

	cache := cfg.Cache
	if a.orientation == core.Horizontal {
		top, bottom := cache.PlotArea.Top(), cache.PlotArea.Bottom()
		for _, tick := range a.Source().Ticks() {
			x := cache.DrawerXToUI(tick.Value)
			p.DrawLine(core.Point{X: x, Y: top}, core.Point{X: x, Y: bottom})
		}
		return
	}

	left, right := cache.PlotArea.Left()-1, cache.PlotArea.Right()
	for _, tick := range a.Source().Ticks() {
		y := cache.DrawerYToUI(tick.Value)
		p.DrawLine(core.Point{X: left, Y: y}, core.Point{X: right, Y: y})
	}
}

// DrawTicks implements core.Axis.
func (a *ValueAxis) DrawTicks(cfg *core.DrawConfig, p core.Painter) {
	if a.TickColor == core.ColorNone {
		return
	}
	p.SetPen(a.TickColor)
	p.SetFont(a.TickFont)

	cache := cfg.Cache
	if a.orientation == core.Horizontal {
		textTop := cache.PlotArea.Bottom() + 1 + a.TickSpacing
		for _, tick := range a.Source().Ticks() {
			text := fmt.Sprintf(a.Format, tick.Value)
			x := anchor(cache.DrawerXToUI(tick.Value), p.BoundingRect(text).Width(), tick.Align)
			p.DrawText(core.Point{X: x, Y: textTop}, text)
		}
		return
	}

	labelRight := cache.PlotArea.Left() - 1 - a.TickSpacing
	for _, tick := range a.Source().Ticks() {
		text := fmt.Sprintf(a.Format, tick.Value)
		bounds := p.BoundingRect(text)
		y := cache.DrawerYToUI(tick.Value) - bounds.Height()/2
		p.DrawText(core.Point{X: labelRight - bounds.Width(), Y: y}, text)
	}
}

// anchor shifts a label position so the text aligns to its tick
func anchor(pos, width float64, align core.Alignment) float64 {
	switch align {
	case core.AlignMid:
		return pos - width/2
	case core.AlignEnd:
		return pos - width
	default:
		return pos
	}
}
