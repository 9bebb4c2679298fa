package orchestrator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

// panicWorkload satisfies workload.Workload and panics with whatever value
// it is constructed with, to exercise runWorkload's recovery boundary.
type panicWorkload struct{ value any }

func (panicWorkload) ID() string          { return "panic_test" }
func (panicWorkload) Name() string        { return "Panic Test" }
func (panicWorkload) Description() string { return "" }
func (panicWorkload) Category() workload.Category {
	return workload.ProjectOperations
}
func (panicWorkload) EstimatedDurationSeconds() int { return 1 }

func (w panicWorkload) Run(workload.RunContext) workload.Outcome {
	panic(w.value)
}

func TestRunWorkloadConvertsInvariantPanicToFailed(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", stats.ErrInvariant)
	outcome := runWorkload(panicWorkload{value: err}, workload.RunContext{})
	require.Equal(t, workload.KindFailed, outcome.Kind)
	require.Contains(t, outcome.Reason, "internal error")
}

func TestRunWorkloadRepanicsInfrastructureFailure(t *testing.T) {
	require.Panics(t, func() {
		runWorkload(panicWorkload{value: "clock source exhausted"}, workload.RunContext{})
	})
}

func TestRunWorkloadRepanicsUnrelatedError(t *testing.T) {
	require.Panics(t, func() {
		runWorkload(panicWorkload{value: fmt.Errorf("pool: worker crashed")}, workload.RunContext{})
	})
}
