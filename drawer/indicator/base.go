// Package indicator provides moving-average style overlays computed from a
// candle source and rendered as line drawers.
package indicator

import (
	"fmt"

	"github.com/raykavin/kchart/drawer"
)

// SeriesType selects which candle field an indicator is computed from
type SeriesType int8

const (
	Close SeriesType = iota
	Open
	High
	Low
)

// FromCandles extracts the selected field from every candle in the source
func (s SeriesType) FromCandles(src *drawer.CandleSource) ([]float64, error) {
	out := make([]float64, src.Len())
	for i := 0; i < src.Len(); i++ {
		c := src.At(i)
		switch s {
		case Close:
			out[i] = c.Close
		case Open:
			out[i] = c.Open
		case High:
			out[i] = c.High
		case Low:
			out[i] = c.Low
		default:
			return nil, fmt.Errorf("invalid series type %d", s)
		}
	}
	return out, nil
}

// hasWarmup reports whether the source holds enough candles for the period
func hasWarmup(src *drawer.CandleSource, period int) bool {
	return src.Len() >= period
}
