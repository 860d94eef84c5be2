package indicator

import (
	"github.com/markcheno/go-talib"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/drawer"
)

// EMA is an exponential moving average overlay
type EMA struct {
	*drawer.Line
	Period int
	Series SeriesType
}

// NewEMA creates an exponential moving average line
func NewEMA(period int, color core.Color, seriesType SeriesType) *EMA {
	return &EMA{
		Line:   drawer.NewLine(color),
		Period: period,
		Series: seriesType,
	}
}

// Load recomputes the indicator from the candle source
func (e *EMA) Load(src *drawer.CandleSource) {
	if !hasWarmup(src, e.Period) {
		return
	}

	values, err := e.Series.FromCandles(src)
	if err != nil {
		return
	}

	result := talib.Ema(values, e.Period)
	e.SetValues(result[e.Period:], e.Period)
}
