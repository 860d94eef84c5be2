package drawer

import (
	"github.com/raykavin/kchart/core"
	"github.com/samber/lo"
)

// Candle renders OHLCV records as candlesticks: a body spanning open..close
// and a thinner wick spanning low..high.
type Candle struct {
	source *CandleSource

	BodyWidth        float64
	WickWidth        float64
	MinimumBoxHeight float64
	GrowingColor     core.Color
	FallingColor     core.Color
}

// NewCandle creates a candlestick drawer over the given source
func NewCandle(source *CandleSource) *Candle {
	return &Candle{
		source:           source,
		BodyWidth:        0.95,
		WickWidth:        0.15,
		MinimumBoxHeight: 0.01,
		GrowingColor:     "red",
		FallingColor:     "green",
	}
}

// HasData implements core.Drawer.
func (c *Candle) HasData() bool {
	return c.source != nil && c.source.Len() > 0
}

// PrepareDraw implements core.Drawer.
func (c *Candle) PrepareDraw(cfg *core.DrawConfig) *core.DrawConfig {
	window := c.source.Window(cfg.Begin, cfg.End)
	if len(window) == 0 {
		return cfg
	}

	cfg.YLow = lo.MinBy(window, func(a, b core.Candle) bool { return a.Low < b.Low }).Low
	cfg.YHigh = lo.MaxBy(window, func(a, b core.Candle) bool { return a.High > b.High }).High
	return cfg
}

// Draw implements core.Drawer.
func (c *Candle) Draw(cfg *core.DrawConfig, p core.Painter) {
	begin, end := cfg.Begin, cfg.End
	if begin < 0 {
		begin = 0
	}
	if end > c.source.Len() {
		end = c.source.Len()
	}

	for i := begin; i < end; i++ {
		data := c.source.At(i)

		if data.Open <= data.Close {
			p.SetBrush(c.GrowingColor)
		} else {
			p.SetBrush(c.FallingColor)
		}

		p.FillRect(barRect(i, data.Open, data.Close, c.BodyWidth, c.MinimumBoxHeight))
		p.FillRect(barRect(i, data.Low, data.High, c.WickWidth, c.MinimumBoxHeight))
	}
}
