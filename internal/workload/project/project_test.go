package project_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/platform"
	"github.com/ravenscale/workbench/internal/workload"
	"github.com/ravenscale/workbench/internal/workload/project"
)

// testScale keeps every scratch-heavy workload's file sizes and iteration
// counts small enough to run in a unit test while staying above the
// per-workload warmup floors.
const testScale = 0.05

func testRC(t *testing.T, progress workload.Progress) workload.RunContext {
	t.Helper()
	return workload.RunContext{
		Progress:     progress,
		Clock:        clock.New(),
		ScratchRoot:  t.TempDir(),
		Capabilities: platform.NoCapabilities{},
		SampleScale:  testScale,
	}
}

func TestFileEnumCompletes(t *testing.T) {
	w := project.NewFileEnum()
	outcome := w.Run(testRC(t, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.Greater(t, outcome.Result.Value, 0.0)
	require.GreaterOrEqual(t, outcome.Result.Score, 0)
	require.LessOrEqual(t, outcome.Result.Score, outcome.Result.MaxScore)
	require.Equal(t, 500, outcome.Result.MaxScore)
}

func TestFileEnumCancelled(t *testing.T) {
	w := project.NewFileEnum()
	outcome := w.Run(testRC(t, workload.CancelAfter(0)))
	require.Equal(t, workload.KindCancelled, outcome.Kind)
}

func TestRandomReadCompletes(t *testing.T) {
	w := project.NewRandomRead()
	outcome := w.Run(testRC(t, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.NotNil(t, outcome.Result.Details.Percentiles)
	require.GreaterOrEqual(t, outcome.Result.Details.Percentiles.P99, outcome.Result.Details.Median)
	require.Equal(t, 600, outcome.Result.MaxScore)
}

func TestMetadataOpsCompletes(t *testing.T) {
	w := project.NewMetadataOps()
	outcome := w.Run(testRC(t, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.Greater(t, outcome.Result.Value, 0.0)
	require.Equal(t, 500, outcome.Result.MaxScore)
}

func TestDirTraversalCompletes(t *testing.T) {
	w := project.NewDirTraversal()
	outcome := w.Run(testRC(t, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.Greater(t, outcome.Result.Value, 0.0)
	require.Equal(t, 400, outcome.Result.MaxScore)
}

func TestLargeSeqReadCompletes(t *testing.T) {
	w := project.NewLargeSeqRead()
	outcome := w.Run(testRC(t, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.Greater(t, outcome.Result.Value, 0.0)
	require.Equal(t, 500, outcome.Result.MaxScore)
}

func TestProjectWorkloadsDeclareIdentity(t *testing.T) {
	ws := []workload.Workload{
		project.NewFileEnum(),
		project.NewRandomRead(),
		project.NewMetadataOps(),
		project.NewDirTraversal(),
		project.NewLargeSeqRead(),
	}
	seen := map[string]bool{}
	for _, w := range ws {
		require.NotEmpty(t, w.ID())
		require.False(t, seen[w.ID()], "duplicate id %s", w.ID())
		seen[w.ID()] = true
		require.Equal(t, workload.ProjectOperations, w.Category())
		require.Greater(t, w.EstimatedDurationSeconds(), 0)
	}
}
