package metric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, Mean(nil))
	require.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-9)
}

func TestStdDev(t *testing.T) {
	require.Equal(t, 0.0, StdDev([]float64{5}))
	require.InDelta(t, 1.2909944487, StdDev([]float64{1, 2, 3, 4}), 1e-9)
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 4, 1, 5})
	require.Equal(t, -1.0, min)
	require.Equal(t, 5.0, max)

	min, max = MinMax(nil)
	require.Equal(t, 0.0, min)
	require.Equal(t, 0.0, max)
}

func TestChange(t *testing.T) {
	require.InDelta(t, 0.5, Change([]float64{100, 120, 150}), 1e-9)
	require.InDelta(t, -0.25, Change([]float64{100, 75}), 1e-9)
	require.Equal(t, 0.0, Change([]float64{100}))
	require.Equal(t, 0.0, Change([]float64{0, 50}))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{100, 110, 90, 120})
	require.Equal(t, 4, s.Count)
	require.InDelta(t, 105.0, s.Mean, 1e-9)
	require.Equal(t, 90.0, s.Min)
	require.Equal(t, 120.0, s.Max)
	require.InDelta(t, 0.2, s.Change, 1e-9)
}
