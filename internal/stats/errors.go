package stats

import "errors"

// ErrEmptySeries is returned when Reduce is given a zero-length sample
// series. A sample series must contain at least one observation.
var ErrEmptySeries = errors.New("stats: empty sample series")

// ErrNonFinite is returned when a sample series contains a NaN or +/-Inf
// observation. Reduce refuses to summarize such a series rather than
// silently propagating a poisoned statistic.
var ErrNonFinite = errors.New("stats: non-finite sample in series")

// ErrInvariant marks a computed TestDetails that violates the ordering
// invariant min <= median <= p95 <= p99 <= p999 <= max. It is treated as a
// bug in Reduce itself, not a data problem, and should never occur in
// practice: Reduce panics with it wrapped rather than returning it, so the
// orchestrator's per-workload recovery can convert it into a Failed
// outcome with context while leaving any other panic (clock, pool) to
// propagate.
var ErrInvariant = errors.New("stats: percentile ordering invariant violated")
