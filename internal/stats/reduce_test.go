package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/stats"
)

func TestReduceEmptySeries(t *testing.T) {
	_, err := stats.Reduce(nil, stats.Options{})
	require.ErrorIs(t, err, stats.ErrEmptySeries)
}

func TestReduceNonFinite(t *testing.T) {
	_, err := stats.Reduce([]float64{1, 2, math.NaN()}, stats.Options{})
	require.ErrorIs(t, err, stats.ErrNonFinite)

	_, err = stats.Reduce([]float64{1, math.Inf(1)}, stats.Options{})
	require.ErrorIs(t, err, stats.ErrNonFinite)
}

func TestReduceSingleSample(t *testing.T) {
	d, err := stats.Reduce([]float64{42}, stats.Options{WithPercentiles: true})
	require.NoError(t, err)
	require.Equal(t, 0.0, d.StdDev)
	require.Equal(t, 42.0, d.Median)
	require.NotNil(t, d.Percentiles)
	require.Equal(t, 42.0, d.Percentiles.P50)
	require.Equal(t, 42.0, d.Percentiles.P999)
	require.True(t, d.Percentiles.LowSample)
}

func TestReduceRepeatedValue(t *testing.T) {
	series := make([]float64, 50)
	for i := range series {
		series[i] = 7.0
	}
	d, err := stats.Reduce(series, stats.Options{WithPercentiles: true})
	require.NoError(t, err)
	require.Equal(t, 7.0, d.Min)
	require.Equal(t, 7.0, d.Max)
	require.Equal(t, 7.0, d.Mean)
	require.Equal(t, 0.0, d.StdDev)
	require.Equal(t, 7.0, d.Percentiles.P999)
}

func TestReduceInvariantOrdering(t *testing.T) {
	series := make([]float64, 2000)
	for i := range series {
		series[i] = float64(i)
	}
	d, err := stats.Reduce(series, stats.Options{WithPercentiles: true})
	require.NoError(t, err)
	p := d.Percentiles
	require.False(t, p.LowSample)
	require.LessOrEqual(t, d.Min, d.Median)
	require.LessOrEqual(t, d.Median, p.P95)
	require.LessOrEqual(t, p.P95, p.P99)
	require.LessOrEqual(t, p.P99, p.P999)
	require.LessOrEqual(t, p.P999, d.Max)
	require.GreaterOrEqual(t, d.Mean, d.Min)
	require.LessOrEqual(t, d.Mean, d.Max)
}

func TestReduceWarmupDropsLeadingSamples(t *testing.T) {
	series := []float64{1000, 1000, 1, 1, 1}
	d, err := stats.Reduce(series, stats.Options{Warmup: 2})
	require.NoError(t, err)
	require.Equal(t, 3, d.Iterations)
	require.Equal(t, 1.0, d.Max)
}

func TestReduceOutlierTrim(t *testing.T) {
	series := make([]float64, 100)
	for i := range series {
		series[i] = 1
	}
	series[99] = 1000
	d, err := stats.Reduce(series, stats.Options{TrimOutlier: true})
	require.NoError(t, err)
	require.Equal(t, 99, d.Iterations)
	require.Equal(t, 1.0, d.Max)
}

func TestReduceOutlierTrimNoTrimBelowThreshold(t *testing.T) {
	series := make([]float64, 100)
	for i := range series {
		series[i] = 1
	}
	series[99] = 5
	d, err := stats.Reduce(series, stats.Options{TrimOutlier: true})
	require.NoError(t, err)
	require.Equal(t, 100, d.Iterations)
	require.Equal(t, 5.0, d.Max)
}

func TestReduceWarmupConsumesAll(t *testing.T) {
	_, err := stats.Reduce([]float64{1, 2, 3}, stats.Options{Warmup: 5})
	require.True(t, errors.Is(err, stats.ErrEmptySeries))
}

func TestCompareIdenticalDistributionsNotSignificant(t *testing.T) {
	a := []float64{10, 11, 9, 10, 12, 9, 11, 10}
	b := []float64{10, 9, 11, 10, 12, 9, 10, 11}
	cmp := stats.Compare(a, b)
	require.False(t, cmp.Significant)
	require.InDelta(t, 0, cmp.MedianDiffPct, 5)
}

func TestCompareShiftedDistributionsSignificant(t *testing.T) {
	a := make([]float64, 30)
	b := make([]float64, 30)
	for i := range a {
		a[i] = float64(i)
		b[i] = float64(i) + 1000
	}
	cmp := stats.Compare(a, b)
	require.True(t, cmp.Significant)
}
