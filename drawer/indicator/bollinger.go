package indicator

import (
	"github.com/markcheno/go-talib"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/drawer"
)

// BollingerBands renders the upper, middle and lower band as three lines
type BollingerBands struct {
	Upper  *drawer.Line
	Middle *drawer.Line
	Lower  *drawer.Line

	Period    int
	Deviation float64
	Series    SeriesType
}

// NewBollingerBands creates a Bollinger Bands overlay
func NewBollingerBands(period int, deviation float64, bandColor, midColor core.Color) *BollingerBands {
	return &BollingerBands{
		Upper:     drawer.NewLine(bandColor),
		Middle:    drawer.NewLine(midColor),
		Lower:     drawer.NewLine(bandColor),
		Period:    period,
		Deviation: deviation,
		Series:    Close,
	}
}

// Drawers returns the band lines in drawing order
func (b *BollingerBands) Drawers() []core.Drawer {
	return []core.Drawer{b.Upper, b.Middle, b.Lower}
}

// Load recomputes the bands from the candle source
func (b *BollingerBands) Load(src *drawer.CandleSource) {
	if !hasWarmup(src, b.Period) {
		return
	}

	values, err := b.Series.FromCandles(src)
	if err != nil {
		return
	}

	upper, middle, lower := talib.BBands(values, b.Period, b.Deviation, b.Deviation, talib.SMA)
	b.Upper.SetValues(upper[b.Period:], b.Period)
	b.Middle.SetValues(middle[b.Period:], b.Period)
	b.Lower.SetValues(lower[b.Period:], b.Period)
}
