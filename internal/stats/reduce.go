package stats

import (
	"fmt"
	"math"
	"math/rand"
)

// Reduce turns a raw, non-empty sample series into a TestDetails,
// following the contract in the statistics component: min/max in a single
// pass, mean via Welford's online algorithm, population standard
// deviation, and (optionally) the nearest-rank percentile set.
func Reduce(series []float64, opts Options) (TestDetails, error) {
	if len(series) == 0 {
		return TestDetails{}, ErrEmptySeries
	}
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return TestDetails{}, ErrNonFinite
		}
	}

	working := applyWarmup(series, opts.Warmup)
	if len(working) == 0 {
		return TestDetails{}, ErrEmptySeries
	}

	if opts.TrimOutlier && len(working) > 1 {
		working = trimHighOutlier(working)
	}

	min, max, mean, stddev := welfordReduce(working)

	details := TestDetails{
		Iterations:   len(working),
		DurationSecs: opts.Elapsed,
		Min:          min,
		Max:          max,
		Mean:         mean,
		Median:       nearestRankPercentile(working, 50),
		StdDev:       stddev,
	}

	if opts.WithPercentiles {
		p := computePercentiles(working)
		details.Percentiles = &p
	}

	checkInvariant(details)
	return details, nil
}

// applyWarmup drops the first n samples as declared by the workload. If n
// would consume the entire series, it returns nil, which Reduce reports as
// ErrEmptySeries.
func applyWarmup(series []float64, n int) []float64 {
	if n <= 0 {
		return series
	}
	if n >= len(series) {
		return nil
	}
	return series[n:]
}

// trimHighOutlier discards the single largest sample when it exceeds 10x
// the series' P99, absorbing a one-off scheduler stall per the outlier
// policy. It leaves the series untouched when the condition does not
// hold.
func trimHighOutlier(series []float64) []float64 {
	p99 := nearestRankPercentile(series, 99)
	if p99 <= 0 {
		return series
	}
	maxIdx := 0
	maxVal := series[0]
	for i, v := range series {
		if v > maxVal {
			maxVal = v
			maxIdx = i
		}
	}
	if maxVal <= 10*p99 {
		return series
	}
	trimmed := make([]float64, 0, len(series)-1)
	trimmed = append(trimmed, series[:maxIdx]...)
	trimmed = append(trimmed, series[maxIdx+1:]...)
	return trimmed
}

// welfordReduce computes min, max and mean/stddev in a combined pass using
// Welford's online algorithm for numerically stable mean/variance.
func welfordReduce(series []float64) (min, max, mean, stddev float64) {
	min, max = series[0], series[0]
	var m2 float64
	count := 0.0
	for _, v := range series {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		count++
		delta := v - mean
		mean += delta / count
		delta2 := v - mean
		m2 += delta * delta2
	}
	if count > 0 {
		stddev = math.Sqrt(m2 / count)
	}
	return min, max, mean, stddev
}

// computePercentiles builds the full Percentiles block, setting LowSample
// and falling back P999 to P99 when the series has fewer than 1000
// observations.
func computePercentiles(series []float64) Percentiles {
	p99 := nearestRankPercentile(series, 99)
	p := Percentiles{
		P50: nearestRankPercentile(series, 50),
		P75: nearestRankPercentile(series, 75),
		P90: nearestRankPercentile(series, 90),
		P95: nearestRankPercentile(series, 95),
		P99: p99,
	}
	if len(series) >= 1000 {
		p.P999 = nearestRankPercentile(series, 99.9)
	} else {
		p.P999 = p99
		p.LowSample = true
	}
	return p
}

// nearestRankPercentile returns the value at the nearest-rank index
// ceil(p/100*n), 1-based, over series, found by partial quickselect on a
// private copy so the caller's series is never reordered.
func nearestRankPercentile(series []float64, p float64) float64 {
	n := len(series)
	if n == 1 {
		return series[0]
	}
	rank := int(math.Ceil(p / 100.0 * float64(n)))
	if rank < 1 {
		rank = 1
	}
	if rank > n {
		rank = n
	}
	buf := make([]float64, n)
	copy(buf, series)
	return quickselect(buf, rank-1)
}

// quickselect returns the element that would be at index k (0-based) if
// buf were fully sorted ascending, using Lomuto partitioning around a
// random pivot. buf is
// mutated in place; callers pass a private copy.
func quickselect(buf []float64, k int) float64 {
	lo, hi := 0, len(buf)-1
	for lo < hi {
		pivotIdx := lo + rand.Intn(hi-lo+1)
		pivotIdx = partition(buf, lo, hi, pivotIdx)
		switch {
		case k == pivotIdx:
			return buf[k]
		case k < pivotIdx:
			hi = pivotIdx - 1
		default:
			lo = pivotIdx + 1
		}
	}
	return buf[lo]
}

// partition performs a Lomuto partition of buf[lo:hi+1] around the pivot
// currently at pivotIdx, returning the pivot's final resting index.
func partition(buf []float64, lo, hi, pivotIdx int) int {
	pivot := buf[pivotIdx]
	buf[pivotIdx], buf[hi] = buf[hi], buf[pivotIdx]
	store := lo
	for i := lo; i < hi; i++ {
		if buf[i] < pivot {
			buf[i], buf[store] = buf[store], buf[i]
			store++
		}
	}
	buf[store], buf[hi] = buf[hi], buf[store]
	return store
}

// checkInvariant enforces min <= median <= p95 <= p99 <= p999 <= max when
// percentiles are present. A violation indicates a bug in Reduce, not bad
// input — an InternalError per the statistics component's contract — so it
// panics with ErrInvariant rather than returning it, leaving recovery to
// the orchestrator's single per-workload boundary.
func checkInvariant(d TestDetails) {
	if d.Percentiles == nil {
		if d.Min > d.Median || d.Median > d.Max {
			panic(fmt.Errorf("%w: min=%v median=%v max=%v", ErrInvariant, d.Min, d.Median, d.Max))
		}
		return
	}
	p := d.Percentiles
	if !(d.Min <= d.Median && d.Median <= p.P95 && p.P95 <= p.P99 && p.P99 <= p.P999 && p.P999 <= d.Max) {
		panic(fmt.Errorf("%w: min=%v median=%v p95=%v p99=%v p999=%v max=%v",
			ErrInvariant, d.Min, d.Median, p.P95, p.P99, p.P999, d.Max))
	}
}
