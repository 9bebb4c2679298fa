// Package metrics provides optional Prometheus instrumentation of a
// running orchestrator session, built on
// github.com/prometheus/client_golang (a direct dependency in
// jinterlante1206-AleutianLocal's retrieved go.mod). It is an
// observability surface, not a requirement of the core contract: a host
// that never constructs a Recorder pays no cost for it.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ravenscale/workbench/internal/orchestrator"
)

// Recorder wraps an orchestrator.SessionProgress, exposing
// workbench_workload_duration_seconds (a histogram labeled by workload ID
// and category) and workbench_session_score (a gauge set once the
// envelope is assembled) to whatever Prometheus registry it is
// registered against.
type Recorder struct {
	next orchestrator.SessionProgress

	duration *prometheus.HistogramVec
	score    prometheus.Gauge

	categories map[string]string
	current    string
	startedAt  time.Time
}

// NewRecorder builds a Recorder wrapping next (use
// orchestrator.NoopSessionProgress{} if the host has no progress UI of
// its own) and registers its collectors against reg. categories maps a
// workload ID to its category label, so the duration histogram can carry
// both dimensions without the Recorder importing the catalog package.
func NewRecorder(reg prometheus.Registerer, next orchestrator.SessionProgress, categories map[string]string) *Recorder {
	if next == nil {
		next = orchestrator.NoopSessionProgress{}
	}
	r := &Recorder{
		next:       next,
		categories: categories,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workbench_workload_duration_seconds",
			Help:    "Wall-clock duration of each workload run, labeled by workload ID and category.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 16),
		}, []string{"workload_id", "category"}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "workbench_session_score",
			Help: "Overall score of the most recently completed benchmark session.",
		}),
	}
	reg.MustRegister(r.duration, r.score)
	return r
}

// Update forwards to the wrapped SessionProgress and, on a workload
// transition, closes out the duration histogram for the workload that
// just finished.
func (r *Recorder) Update(fraction float64, workloadID, message string) {
	if workloadID != r.current {
		r.flush()
		r.current = workloadID
		r.startedAt = time.Now()
	}
	r.next.Update(fraction, workloadID, message)
}

func (r *Recorder) IsCancelled() bool {
	return r.next.IsCancelled()
}

// ObserveScore records the overall score of a finished session.
func (r *Recorder) ObserveScore(score int) {
	r.flush()
	r.score.Set(float64(score))
}

func (r *Recorder) flush() {
	if r.current == "" || r.startedAt.IsZero() {
		return
	}
	r.duration.WithLabelValues(r.current, r.categories[r.current]).Observe(time.Since(r.startedAt).Seconds())
	r.startedAt = time.Time{}
}
