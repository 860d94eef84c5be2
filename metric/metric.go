// Package metric provides summary statistics over chart series, used by
// the demo to describe loaded data sets.
package metric

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of the values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdDev calculates the sample standard deviation of the values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// MinMax returns the smallest and largest of the values.
func MinMax(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Change returns the relative change from the first to the last value,
// e.g. 0.05 for a 5% increase.
func Change(values []float64) float64 {
	if len(values) < 2 || values[0] == 0 {
		return 0
	}
	return (values[len(values)-1] - values[0]) / math.Abs(values[0])
}

// Summary bundles the statistics of one series.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Change float64
}

// Summarize computes a Summary for the values.
func Summarize(values []float64) Summary {
	min, max := MinMax(values)
	return Summary{
		Count:  len(values),
		Mean:   Mean(values),
		StdDev: StdDev(values),
		Min:    min,
		Max:    max,
		Change: Change(values),
	}
}
