// Package orchestrator implements the orchestrator component (C7):
// given a selection of workload IDs and a progress collaborator, it
// queries SystemInfo once, runs the selected catalog workloads in
// declared order, and assembles the result envelope (C8), honoring
// cooperative cancellation throughout. It is adapted from the teacher's
// sequential scenario-runner style (internal/runner) generalized from
// "run one named database scenario" to "run a declared, ordered list of
// workloads and assemble a typed envelope."
package orchestrator

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ravenscale/workbench/internal/catalog"
	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/platform"
	"github.com/ravenscale/workbench/internal/report"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/sysinfo"
	"github.com/ravenscale/workbench/internal/workload"
)

// Selection names the workload IDs to run. Unknown IDs are silently
// ignored by catalog.Lookup; Run returns an error only when none of the
// requested IDs matches a catalog workload.
type Selection struct {
	WorkloadIDs []string
}

// Options configures one orchestrator session.
type Options struct {
	Selection    Selection
	Progress     SessionProgress
	SystemInfo   sysinfo.Provider
	Capabilities platform.Capabilities
	Clock        clock.Source
	ScratchRoot  string
	SampleScale  float64
	Logger       *slog.Logger
	Machine      string
	Notes        string
	Tags         []string
}

// Run executes Options.Selection's workloads to completion or
// cancellation and returns a well-formed BenchmarkRun. A cancelled
// session still returns a partial, well-formed envelope (spec §4.7's
// cancellation contract) — Run itself only returns a non-nil error for
// setup failures that prevent any workload from running at all (no
// SystemInfo provider configured, an empty resolved selection).
func Run(opts Options) (report.BenchmarkRun, error) {
	opts = withDefaults(opts)

	if opts.SystemInfo == nil {
		return report.BenchmarkRun{}, fmt.Errorf("orchestrator: no SystemInfo provider configured")
	}
	sysInfo, err := opts.SystemInfo.Snapshot()
	if err != nil {
		return report.BenchmarkRun{}, fmt.Errorf("orchestrator: query system info: %w", err)
	}

	workloads := catalog.Lookup(opts.Selection.WorkloadIDs)
	if len(workloads) == 0 {
		return report.BenchmarkRun{}, fmt.Errorf("orchestrator: selection %v matched no catalog workload", opts.Selection.WorkloadIDs)
	}

	totalEstimate := 0
	for _, w := range workloads {
		totalEstimate += w.EstimatedDurationSeconds()
	}
	if totalEstimate <= 0 {
		totalEstimate = len(workloads)
	}

	var results report.CategoryResults
	var elapsedEstimate int

	for _, w := range workloads {
		if opts.Progress.IsCancelled() {
			break
		}

		span := float64(w.EstimatedDurationSeconds())
		if span <= 0 {
			span = 1
		}
		start := float64(elapsedEstimate) / float64(totalEstimate)
		elapsedEstimate += w.EstimatedDurationSeconds()
		end := float64(elapsedEstimate) / float64(totalEstimate)

		opts.Logger.Debug("running workload", "id", w.ID(), "category", w.Category())

		rc := workload.RunContext{
			Progress:     scopedProgress{session: opts.Progress, workloadID: w.ID(), start: start, end: end},
			Clock:        opts.Clock,
			ScratchRoot:  opts.ScratchRoot,
			Capabilities: opts.Capabilities,
			Logger:       opts.Logger,
			SampleScale:  opts.SampleScale,
		}

		outcome := runWorkload(w, rc)
		switch outcome.Kind {
		case workload.KindCompleted:
			results.Append(report.TestResult{
				ID:          w.ID(),
				Name:        w.Name(),
				Description: w.Description(),
				Category:    report.Category(w.Category()),
				Value:       outcome.Result.Value,
				Unit:        outcome.Result.Unit,
				Score:       outcome.Result.Score,
				MaxScore:    outcome.Result.MaxScore,
				Details:     outcome.Result.Details,
				Secondary:   outcome.Result.Secondary,
			})
			opts.Logger.Info("workload completed", "id", w.ID(), "value", outcome.Result.Value, "score", outcome.Result.Score)
		case workload.KindSkipped:
			opts.Logger.Warn("workload skipped", "id", w.ID(), "reason", outcome.Reason)
		case workload.KindFailed:
			opts.Logger.Warn("workload failed", "id", w.ID(), "reason", outcome.Reason, "partial_samples", len(outcome.Partial))
		case workload.KindCancelled:
			opts.Logger.Info("workload cancelled", "id", w.ID())
			return finish(opts, sysInfo, results), nil
		}
	}

	return finish(opts, sysInfo, results), nil
}

// runWorkload calls w.Run, recovering exactly once at this boundary — but
// only from an InternalError (stats.ErrInvariant: a bug in Reduce itself,
// per spec §7). Any other panic is a genuine infrastructure failure
// (clock, pool) and is re-panicked so it still crashes the session; this
// is the only place in the core that recovers at all.
func runWorkload(w workload.Workload, rc workload.RunContext) (outcome workload.Outcome) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok && errors.Is(err, stats.ErrInvariant) {
			outcome = workload.Failed(fmt.Sprintf("internal error: %v", err), nil)
			return
		}
		panic(r)
	}()
	return w.Run(rc)
}

func finish(opts Options, sysInfo report.SystemInfo, results report.CategoryResults) report.BenchmarkRun {
	return report.BenchmarkRun{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Machine:    opts.Machine,
		Notes:      opts.Notes,
		Tags:       opts.Tags,
		SystemInfo: sysInfo,
		Results:    results,
		Scores:     report.ComputeScores(results),
	}
}

func withDefaults(opts Options) Options {
	if opts.Progress == nil {
		opts.Progress = NoopSessionProgress{}
	}
	if opts.Clock == nil {
		opts.Clock = clock.Default()
	}
	if opts.Capabilities == nil {
		opts.Capabilities = platform.NoCapabilities{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SampleScale <= 0 {
		opts.SampleScale = 1
	}
	return opts
}
