package indicator

import (
	"github.com/markcheno/go-talib"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/drawer"
)

// SMA is a simple moving average overlay
type SMA struct {
	*drawer.Line
	Period int
	Series SeriesType
}

// NewSMA creates a simple moving average line
// period: the number of candles averaged per point
// color: the line color
func NewSMA(period int, color core.Color, seriesType SeriesType) *SMA {
	return &SMA{
		Line:   drawer.NewLine(color),
		Period: period,
		Series: seriesType,
	}
}

// Load recomputes the indicator from the candle source
func (s *SMA) Load(src *drawer.CandleSource) {
	if !hasWarmup(src, s.Period) {
		return
	}

	values, err := s.Series.FromCandles(src)
	if err != nil {
		return
	}

	result := talib.Sma(values, s.Period)
	s.SetValues(result[s.Period:], s.Period)
}
