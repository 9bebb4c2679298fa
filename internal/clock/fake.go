package clock

import (
	"sync"
	"time"
)

// Fake is a deterministic, manually-advanced Clock stand-in for tests. It
// satisfies the same Now/Since/ResolutionNS surface as Clock but never
// touches the wall clock, so scenario tests (see spec scenarios S1-S6) can
// assert exact elapsed durations.
type Fake struct {
	mu         sync.Mutex
	now        time.Time
	resolution time.Duration
}

// NewFake returns a Fake clock starting at an arbitrary fixed epoch with
// the given reported resolution.
func NewFake(resolution time.Duration) *Fake {
	return &Fake{
		now:        time.Unix(0, 0).UTC(),
		resolution: resolution,
	}
}

// Now returns the current fake Instant.
func (f *Fake) Now() Instant {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Instant{t: f.now}
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Since returns b - a.
func (f *Fake) Since(a, b Instant) time.Duration {
	return b.t.Sub(a.t)
}

// ResolutionNS reports the configured fake resolution.
func (f *Fake) ResolutionNS() int64 {
	return f.resolution.Nanoseconds()
}
