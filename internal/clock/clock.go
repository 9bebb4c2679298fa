// Package clock provides the monotonic timing primitive every workload
// measures against. A single process-wide Clock is initialized lazily on
// first use and frozen after that: resolution is probed once and reused for
// the lifetime of the process.
package clock

import (
	"sync"
	"time"
)

// Instant is an opaque monotonic timestamp. It carries no wall-clock
// meaning and is only ever compared to another Instant from the same
// Clock.
type Instant struct {
	t time.Time
}

// Clock exposes monotonic timing. The zero value is not usable; obtain one
// via Default or New.
type Clock struct {
	resolution time.Duration
	once       sync.Once
}

var (
	defaultOnce  sync.Once
	defaultClock *Clock
)

// Default returns the process-wide Clock, initializing it on first call.
func Default() *Clock {
	defaultOnce.Do(func() {
		defaultClock = New()
	})
	return defaultClock
}

// New constructs a standalone Clock. Most callers want Default; New exists
// for tests that need an isolated resolution probe.
func New() *Clock {
	c := &Clock{}
	c.calibrate()
	return c
}

// calibrate measures the platform's minimum observable tick by timing a
// tight loop of back-to-back Now() calls until the reading changes. This
// mirrors the kind of once-per-process hardware probe the teacher performs
// for connection/container setup: expensive to repeat, safe to cache.
func (c *Clock) calibrate() {
	c.once.Do(func() {
		start := time.Now()
		for {
			now := time.Now()
			if d := now.Sub(start); d > 0 {
				c.resolution = d
				return
			}
		}
	})
}

// Now returns the current monotonic Instant.
func (c *Clock) Now() Instant {
	return Instant{t: time.Now()}
}

// Since returns the elapsed duration between two Instants, in nanoseconds
// resolution, as b - a. b is expected to be later than a; a negative
// result is returned as-is rather than clamped, so misuse is visible.
func (c *Clock) Since(a, b Instant) time.Duration {
	return b.t.Sub(a.t)
}

// ResolutionNS reports the platform's minimum observable tick, in
// nanoseconds, as measured at calibration time.
func (c *Clock) ResolutionNS() int64 {
	return c.resolution.Nanoseconds()
}
