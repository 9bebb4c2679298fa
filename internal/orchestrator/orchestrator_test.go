package orchestrator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/orchestrator"
	"github.com/ravenscale/workbench/internal/platform"
	"github.com/ravenscale/workbench/internal/report"
)

// testScale keeps every selected workload's scratch files and iteration
// counts small enough that a session completes quickly in a unit test.
const testScale = 0.02

type stubSystemInfo struct{}

func (stubSystemInfo) Snapshot() (report.SystemInfo, error) {
	return report.SystemInfo{}, nil
}

func baseOptions(t *testing.T, ids []string) orchestrator.Options {
	t.Helper()
	return orchestrator.Options{
		Selection:    orchestrator.Selection{WorkloadIDs: ids},
		SystemInfo:   stubSystemInfo{},
		Capabilities: platform.NoCapabilities{},
		Clock:        clock.New(),
		ScratchRoot:  t.TempDir(),
		SampleScale:  testScale,
		Machine:      "test-machine",
	}
}

func TestRunProducesWellFormedEnvelope(t *testing.T) {
	run, err := orchestrator.Run(baseOptions(t, []string{"file_enum", "metadata_ops"}))
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	require.Equal(t, "test-machine", run.Machine)
	require.Len(t, run.Results.ProjectOperations, 2)
	ids := []string{run.Results.ProjectOperations[0].ID, run.Results.ProjectOperations[1].ID}
	require.ElementsMatch(t, []string{"file_enum", "metadata_ops"}, ids)
	require.Empty(t, run.Results.BuildPerformance)
	require.Nil(t, run.Scores.Graphics)
	require.Greater(t, run.Scores.OverallMax, 0)
}

func TestRunUnknownSelectionErrors(t *testing.T) {
	_, err := orchestrator.Run(baseOptions(t, []string{"does_not_exist"}))
	require.Error(t, err)
}

func TestRunNoSystemInfoProviderErrors(t *testing.T) {
	opts := baseOptions(t, []string{"file_enum"})
	opts.SystemInfo = nil
	_, err := orchestrator.Run(opts)
	require.Error(t, err)
}

func TestRunGraphicsAbsentWhenNoDisplayAdapter(t *testing.T) {
	run, err := orchestrator.Run(baseOptions(t, []string{"file_enum", "render_2d"}))
	require.NoError(t, err)
	require.Empty(t, run.Results.Graphics)
	require.Nil(t, run.Scores.Graphics)
	require.Equal(t, 500, run.Scores.OverallMax) // only file_enum's declared max contributes
}

// fakeSessionProgress cancels the session the moment any workload other
// than file_enum reports progress, deterministically reproducing "cancel
// injected after file_enum completes, during the next workload" without
// depending on exact IsCancelled call counts inside a workload's Run.
type fakeSessionProgress struct {
	mu        sync.Mutex
	cancelled bool
}

func (f *fakeSessionProgress) Update(fraction float64, workloadID, message string) {
	if workloadID == "file_enum" {
		return
	}
	f.mu.Lock()
	f.cancelled = true
	f.mu.Unlock()
}

func (f *fakeSessionProgress) IsCancelled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelled
}

func TestRunCancellationMidSessionLeavesPartialEnvelope(t *testing.T) {
	opts := baseOptions(t, []string{"file_enum", "random_read", "metadata_ops", "process_spawn"})
	opts.Progress = &fakeSessionProgress{}

	run, err := orchestrator.Run(opts)
	require.NoError(t, err)

	require.Len(t, run.Results.ProjectOperations, 1)
	require.Equal(t, "file_enum", run.Results.ProjectOperations[0].ID)
	require.Empty(t, run.Results.BuildPerformance)
	require.Empty(t, run.Results.Responsiveness)
	require.Equal(t, 500, run.Scores.ProjectOperations.MaxScore)
	require.Greater(t, run.Scores.OverallMax, 0)
}
