package drawer

import (
	"math"

	"github.com/raykavin/kchart/core"
)

// Bar renders scalar values as vertical bars growing from the zero line,
// colored by sign. X position i covers the bin [i, i+1) with the body
// centered at i+0.5.
type Bar struct {
	source *FloatSource

	BodyWidth     float64
	PositiveColor core.Color
	NegativeColor core.Color
}

// NewBar creates a bar drawer over the given source
func NewBar(source *FloatSource) *Bar {
	return &Bar{
		source:        source,
		BodyWidth:     1,
		PositiveColor: "red",
		NegativeColor: "green",
	}
}

// HasData implements core.Drawer.
func (b *Bar) HasData() bool {
	return b.source != nil && b.source.Len() > 0
}

// PrepareDraw implements core.Drawer.
func (b *Bar) PrepareDraw(cfg *core.DrawConfig) *core.DrawConfig {
	if low, high, ok := b.source.Window(cfg.Begin, cfg.End).MinMax(); ok {
		cfg.YLow, cfg.YHigh = low, high
	}
	return cfg
}

// Draw implements core.Drawer.
func (b *Bar) Draw(cfg *core.DrawConfig, p core.Painter) {
	begin, end := cfg.Begin, cfg.End
	if begin < 0 {
		begin = 0
	}
	if end > b.source.Len() {
		end = b.source.Len()
	}

	for i := begin; i < end; i++ {
		value := b.source.At(i)
		if value >= 0 {
			p.SetBrush(b.PositiveColor)
		} else {
			p.SetBrush(b.NegativeColor)
		}
		p.FillRect(barRect(i, 0, value, b.BodyWidth, 0))
	}
}

// barRect builds a drawer-space rectangle spanning startY..endY in the bin
// at index i, at least minHeight tall so flat boxes stay visible
func barRect(i int, startY, endY, width, minHeight float64) core.Rect {
	left := float64(i) + 0.5 - 0.5*width
	return core.NewRect(
		left,
		math.Min(startY, endY),
		width,
		math.Max(math.Abs(startY-endY), minHeight),
	)
}
