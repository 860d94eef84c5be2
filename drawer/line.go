package drawer

import (
	"github.com/raykavin/kchart/core"
)

// Line renders a float series as a polyline through the bin centers.
// Offset shifts the series along X: the value at position i draws at drawer
// index i+Offset, which lets indicator series with a warmup period align
// with the candles they were computed from.
type Line struct {
	values core.Series[float64]

	Offset int
	Color  core.Color
}

// NewLine creates an empty line drawer
func NewLine(color core.Color) *Line {
	return &Line{Color: color}
}

// SetValues replaces the series and its X offset
func (l *Line) SetValues(values []float64, offset int) {
	l.values = values
	l.Offset = offset
}

// HasData implements core.Drawer.
func (l *Line) HasData() bool {
	return len(l.values) > 0
}

// PrepareDraw implements core.Drawer.
func (l *Line) PrepareDraw(cfg *core.DrawConfig) *core.DrawConfig {
	if low, high, ok := l.values.Window(cfg.Begin-l.Offset, cfg.End-l.Offset).MinMax(); ok {
		cfg.YLow, cfg.YHigh = low, high
	}
	return cfg
}

// Draw implements core.Drawer.
func (l *Line) Draw(cfg *core.DrawConfig, p core.Painter) {
	begin := cfg.Begin - l.Offset
	end := cfg.End - l.Offset
	if begin < 0 {
		begin = 0
	}
	if end > len(l.values) {
		end = len(l.values)
	}
	if end-begin < 2 {
		return
	}

	p.SetPen(l.Color)
	prev := l.point(begin)
	for i := begin + 1; i < end; i++ {
		next := l.point(i)
		p.DrawLine(prev, next)
		prev = next
	}
}

func (l *Line) point(i int) core.Point {
	return core.Point{
		X: float64(i+l.Offset) + 0.5,
		Y: l.values[i],
	}
}
