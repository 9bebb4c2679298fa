package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/metrics"
	"github.com/ravenscale/workbench/internal/orchestrator"
)

type recordingProgress struct {
	updates   int
	cancelled bool
}

func (r *recordingProgress) Update(fraction float64, workloadID, message string) { r.updates++ }
func (r *recordingProgress) IsCancelled() bool                                   { return r.cancelled }

func TestRecorderForwardsUpdatesAndCancellation(t *testing.T) {
	reg := prometheus.NewRegistry()
	next := &recordingProgress{}
	r := metrics.NewRecorder(reg, next, map[string]string{"file_enum": "ProjectOperations"})

	r.Update(0.5, "file_enum", "enumerating")
	require.Equal(t, 1, next.updates)
	require.False(t, r.IsCancelled())

	next.cancelled = true
	require.True(t, r.IsCancelled())
}

func TestRecorderFlushesDurationOnWorkloadTransition(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg, orchestrator.NoopSessionProgress{}, map[string]string{
		"file_enum":   "ProjectOperations",
		"random_read": "ProjectOperations",
	})

	r.Update(0, "file_enum", "start")
	r.Update(1, "random_read", "start") // transition flushes file_enum's duration

	families, err := reg.Gather()
	require.NoError(t, err)
	require.True(t, hasMetricFamily(families, "workbench_workload_duration_seconds"))
}

func TestRecorderObserveScoreSetsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg, orchestrator.NoopSessionProgress{}, nil)
	r.ObserveScore(6200)

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "workbench_session_score" {
			found = true
			require.Equal(t, 6200.0, f.Metric[0].GetGauge().GetValue())
		}
	}
	require.True(t, found)
}

func hasMetricFamily(families []*dto.MetricFamily, name string) bool {
	for _, f := range families {
		if f.GetName() == name {
			return true
		}
	}
	return false
}
