package stats

// Unit declares the physical quantity a sample series is measured in. The
// orchestrator and report layers treat it as an opaque label; only display
// and export code branch on it.
type Unit string

const (
	UnitMilliseconds Unit = "ms"
	UnitMicroseconds Unit = "us"
	UnitNanoseconds  Unit = "ns"
	UnitMBPerSecond  Unit = "MB/s"
	UnitFilesPerSec  Unit = "files/s"
	UnitOpsPerSec    Unit = "ops/s"
	UnitGBPerSecond  Unit = "GB/s"
	UnitPercent      Unit = "%"
)

// Percentiles holds the optional percentile set a TestDetails may carry.
// LowSample is set when the series had fewer than 1000 observations, in
// which case P999 is reported equal to P99 rather than computed from too
// few samples to be meaningful.
type Percentiles struct {
	P50       float64 `json:"p50"`
	P75       float64 `json:"p75"`
	P90       float64 `json:"p90"`
	P95       float64 `json:"p95"`
	P99       float64 `json:"p99"`
	P999      float64 `json:"p999"`
	LowSample bool    `json:"low_sample"`
}

// TestDetails is the statistical reduction of one sample series, as
// defined in the data model: iteration count, total duration, and the
// five-number-plus-tails summary.
type TestDetails struct {
	Iterations   int          `json:"iterations"`
	DurationSecs float64      `json:"duration_secs"`
	Min          float64      `json:"min"`
	Max          float64      `json:"max"`
	Mean         float64      `json:"mean"`
	Median       float64      `json:"median"`
	StdDev       float64      `json:"std_dev"`
	Percentiles  *Percentiles `json:"percentiles,omitempty"`
}

// Options tunes how Reduce processes a raw sample series before computing
// its TestDetails.
type Options struct {
	// Warmup is the number of leading samples to discard before any
	// other computation, as declared by the owning workload.
	Warmup int
	// TrimOutlier enables the single-sample high-outlier trim described
	// in the statistics contract: after warmup, the single largest
	// remaining sample is discarded if it exceeds 10x P99. Only latency
	// series from I/O and OS probes should set this; throughput series
	// must leave it false.
	TrimOutlier bool
	// WithPercentiles requests the optional Percentiles block. Some
	// callers (e.g. a quick CV check) only need Mean/StdDev and skip the
	// extra quickselect passes.
	WithPercentiles bool
	// Elapsed is the total wall-clock time, in seconds, the caller spent
	// producing series (summed across iterations or bracketed around the
	// measured region). It populates TestDetails.DurationSecs and plays
	// no part in the statistical reduction itself.
	Elapsed float64
}
