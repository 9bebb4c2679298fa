package workload

import "github.com/ravenscale/workbench/internal/stats"

// Measurement is what a workload hands back on success: its primary
// metric plus the full statistical reduction of its sample series and the
// score/max_score C3 computed from the metric. The orchestrator combines
// this with the workload's own ID/Name/Description/Category to build a
// report.TestResult — the workload itself never needs to know about the
// report package.
type Measurement struct {
	Value     float64
	Unit      stats.Unit
	Score     int
	MaxScore  int
	Details   stats.TestDetails
	Secondary map[string]float64
}

// Kind discriminates the variants of Outcome, mirroring the spec's
// WorkloadOutcome tagged union.
type Kind int

const (
	KindCompleted Kind = iota
	KindSkipped
	KindFailed
	KindCancelled
)

// Outcome is the result of invoking a workload's Run method. Exactly one
// of its fields is meaningful, selected by Kind; use the constructors
// below rather than building an Outcome by hand.
type Outcome struct {
	Kind    Kind
	Result  Measurement // KindCompleted
	Reason  string      // KindSkipped, KindFailed
	Partial []float64   // KindFailed: whatever samples were gathered before the error
}

// Completed wraps a successful Measurement.
func Completed(m Measurement) Outcome {
	return Outcome{Kind: KindCompleted, Result: m}
}

// Skipped reports that the workload could not even start (SetupError,
// missing platform capability treated as skip rather than fallback). It
// contributes 0/0 to its category.
func Skipped(reason string) Outcome {
	return Outcome{Kind: KindSkipped, Reason: reason}
}

// Failed reports a mid-series execution failure, carrying whatever
// samples were gathered before the error for postmortem purposes. It
// contributes 0/0 to its category.
func Failed(reason string, partial []float64) Outcome {
	return Outcome{Kind: KindFailed, Reason: reason, Partial: partial}
}

// Cancelled reports that cooperative cancellation was observed. It
// contributes 0/0 and signals the orchestrator to stop the session.
func Cancelled() Outcome {
	return Outcome{Kind: KindCancelled}
}
