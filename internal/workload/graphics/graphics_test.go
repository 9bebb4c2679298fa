package graphics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/workload"
	"github.com/ravenscale/workbench/internal/workload/graphics"
)

const testScale = 0.02

type fakeCapabilities struct {
	hasDisplay bool
}

func (f fakeCapabilities) HasDisplayAdapter() bool    { return f.hasDisplay }
func (f fakeCapabilities) CanDropFileCache() bool     { return false }
func (f fakeCapabilities) DurableSyncSupported() bool { return false }

func testRC(t *testing.T, hasDisplay bool, progress workload.Progress) workload.RunContext {
	t.Helper()
	return workload.RunContext{
		Progress:     progress,
		Clock:        clock.New(),
		ScratchRoot:  t.TempDir(),
		Capabilities: fakeCapabilities{hasDisplay: hasDisplay},
		SampleScale:  testScale,
	}
}

func TestGraphicsWorkloadsSkipWithoutDisplayAdapter(t *testing.T) {
	ws := []workload.Workload{
		graphics.NewAdapterClassification(),
		graphics.NewRender2D(),
		graphics.NewRender3D(),
		graphics.NewFrameTimeConsistency(),
		graphics.NewTextureUpload(),
	}
	for _, w := range ws {
		outcome := w.Run(testRC(t, false, workload.NoopProgress{}))
		require.Equal(t, workload.KindSkipped, outcome.Kind, "workload %s", w.ID())
	}
}

func TestAdapterClassificationCompletes(t *testing.T) {
	w := graphics.NewAdapterClassification()
	outcome := w.Run(testRC(t, true, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.GreaterOrEqual(t, outcome.Result.Value, 0.0)
	require.LessOrEqual(t, outcome.Result.Value, 100.0)
	require.Equal(t, 300, outcome.Result.MaxScore)
}

func TestRender2DCompletes(t *testing.T) {
	w := graphics.NewRender2D()
	outcome := w.Run(testRC(t, true, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.Greater(t, outcome.Result.Value, 0.0)
	require.Equal(t, 500, outcome.Result.MaxScore)
}

func TestRender3DCompletes(t *testing.T) {
	w := graphics.NewRender3D()
	outcome := w.Run(testRC(t, true, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.Greater(t, outcome.Result.Value, 0.0)
	require.Equal(t, 600, outcome.Result.MaxScore)
}

func TestFrameTimeConsistencyCompletes(t *testing.T) {
	w := graphics.NewFrameTimeConsistency()
	outcome := w.Run(testRC(t, true, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.GreaterOrEqual(t, outcome.Result.Value, 1.0)
	require.Equal(t, 600, outcome.Result.MaxScore)
}

func TestTextureUploadCompletes(t *testing.T) {
	w := graphics.NewTextureUpload()
	outcome := w.Run(testRC(t, true, workload.NoopProgress{}))
	require.Equal(t, workload.KindCompleted, outcome.Kind)
	require.Greater(t, outcome.Result.Value, 0.0)
	require.Equal(t, 500, outcome.Result.MaxScore)
}

func TestRender2DCancelled(t *testing.T) {
	w := graphics.NewRender2D()
	outcome := w.Run(testRC(t, true, workload.CancelAfter(0)))
	require.Equal(t, workload.KindCancelled, outcome.Kind)
}

func TestGraphicsWorkloadsDeclareIdentity(t *testing.T) {
	ws := []workload.Workload{
		graphics.NewAdapterClassification(),
		graphics.NewRender2D(),
		graphics.NewRender3D(),
		graphics.NewFrameTimeConsistency(),
		graphics.NewTextureUpload(),
	}
	seen := map[string]bool{}
	for _, w := range ws {
		require.NotEmpty(t, w.ID())
		require.False(t, seen[w.ID()], "duplicate id %s", w.ID())
		seen[w.ID()] = true
		require.Equal(t, workload.Graphics, w.Category())
	}
}
