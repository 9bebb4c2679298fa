package clock

import "time"

// Source is the minimal clock surface a workload depends on. Both Clock
// and Fake satisfy it, so workloads never need to know which one they were
// handed.
type Source interface {
	Now() Instant
	Since(a, b Instant) time.Duration
	ResolutionNS() int64
}

// Sampler accumulates timed observations into a pre-sized buffer so that
// measurement loops do not allocate per-sample. It is not safe for
// concurrent use by design: each worker goroutine in a parallel workload
// owns its own Sampler and the results are concatenated after the
// measured region ends, per the spec's thread-local sampling model.
type Sampler struct {
	src    Source
	values []float64
}

// NewSampler returns a Sampler backed by src with its buffer pre-sized to
// capacity n.
func NewSampler(src Source, n int) *Sampler {
	return &Sampler{src: src, values: make([]float64, 0, n)}
}

// Record appends a single observation, in the caller's declared unit, to
// the sample buffer.
func (s *Sampler) Record(v float64) {
	s.values = append(s.values, v)
}

// Timed runs fn and records the elapsed duration, in nanoseconds, as the
// sample. It returns the elapsed duration for callers that also want to
// react to slow iterations inline (e.g. cancellation checks).
func (s *Sampler) Timed(fn func()) time.Duration {
	start := s.src.Now()
	fn()
	d := s.src.Since(start, s.src.Now())
	s.Record(float64(d.Nanoseconds()))
	return d
}

// Samples returns the accumulated sample series. The returned slice
// aliases the Sampler's internal buffer; callers that need to keep it
// after further recording should copy it.
func (s *Sampler) Samples() []float64 {
	return s.values
}

// Len reports how many samples have been recorded so far.
func (s *Sampler) Len() int {
	return len(s.values)
}
