package workload

import (
	"log/slog"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/platform"
)

// RunContext bundles everything a workload's Run method needs besides
// its own fixed identity: the progress/cancellation capability, a clock
// source, where to put its scratch area, the host's capability probes,
// and a sample-count scale factor driven by internal/config. Run is
// still stateless across calls — RunContext is passed in fresh every
// time, never retained by the workload between invocations.
type RunContext struct {
	Progress     Progress
	Clock        clock.Source
	ScratchRoot  string
	Capabilities platform.Capabilities
	Logger       *slog.Logger
	// SampleScale scales every workload's declared repetition/iteration
	// count. 1.0 (the zero value is treated as 1.0) runs the full
	// spec-declared contract; smaller values are for fast CI runs.
	SampleScale float64
}

// Scale applies SampleScale to n, rounding to at least 1 so a scaled-down
// workload still produces a non-empty series.
func (rc RunContext) Scale(n int) int {
	s := rc.SampleScale
	if s <= 0 {
		s = 1
	}
	scaled := int(float64(n) * s)
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

// ScaleBytes applies SampleScale to a byte count the same way Scale
// applies it to an iteration count, floored at 4096 bytes so a
// heavily-scaled-down test run still produces a file workloads can open
// and read from meaningfully.
func (rc RunContext) ScaleBytes(n int64) int64 {
	s := rc.SampleScale
	if s <= 0 {
		s = 1
	}
	scaled := int64(float64(n) * s)
	if scaled < 4096 {
		scaled = 4096
	}
	return scaled
}

func (rc RunContext) logger() *slog.Logger {
	if rc.Logger != nil {
		return rc.Logger
	}
	return slog.Default()
}

// Workload is the shared capability surface every measurement routine
// presents (component C6). It is intentionally small and stateless: all
// per-run state lives in Run's locals and in the RunContext it is given.
type Workload interface {
	// ID is the workload's stable identifier (e.g. "file_enum"), used as
	// the registry key and the JSON test_id field.
	ID() string
	Name() string
	Description() string
	Category() Category
	// EstimatedDurationSeconds is used by the orchestrator to size each
	// workload's span of the overall [0,1] progress range; it is not a
	// timeout.
	EstimatedDurationSeconds() int
	// Run executes the workload to completion (or to a cooperative
	// cancellation point, or to a failure) and returns exactly one
	// Outcome variant.
	Run(rc RunContext) Outcome
}
