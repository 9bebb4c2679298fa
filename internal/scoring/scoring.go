// Package scoring turns a workload's primary metric into an integer point
// value via a monotone, piecewise-constant step function, and turns a
// category percentage into a qualitative Rating.
package scoring

import "fmt"

// Direction says which way a metric's "better" points.
type Direction int

const (
	// HigherIsBetter means larger metric values earn more points
	// (throughput, FPS, bandwidth).
	HigherIsBetter Direction = iota
	// LowerIsBetter means smaller metric values earn more points
	// (latency, ns/access).
	LowerIsBetter
)

// Band is one step of a StepFunction: a threshold and the points awarded
// when the metric reaches it (direction-dependent).
type Band struct {
	Threshold float64
	Points    int
}

// StepFunction is a workload's scoring function: a monotone,
// piecewise-constant mapping from a metric to an integer score, bounded
// by MaxScore. Evaluate does not sort Bands: callers build every table
// already in the declared-better order (best band first), matching how
// every table in the spec is written.
type StepFunction struct {
	Direction Direction
	// Bands must be ordered from best to worst: descending threshold for
	// HigherIsBetter, ascending threshold for LowerIsBetter. The last
	// band is the catch-all and its Threshold is ignored.
	Bands    []Band
	MaxScore int
}

// Evaluate maps metric to its earned score. Ties break toward the upper
// (better-scoring) band: HigherIsBetter bands are scanned with >=,
// LowerIsBetter bands are scanned with <=, so a metric landing exactly on
// a boundary earns the more generous neighboring band. The result is
// always clamped to [0, MaxScore].
func (f StepFunction) Evaluate(metric float64) int {
	if len(f.Bands) == 0 {
		return 0
	}
	points := f.Bands[len(f.Bands)-1].Points
	for _, b := range f.Bands[:len(f.Bands)-1] {
		matched := false
		switch f.Direction {
		case HigherIsBetter:
			matched = metric >= b.Threshold
		case LowerIsBetter:
			matched = metric <= b.Threshold
		}
		if matched {
			points = b.Points
			break
		}
	}
	return clampScore(points, f.MaxScore)
}

func clampScore(points, maxScore int) int {
	if points < 0 {
		return 0
	}
	if points > maxScore {
		return maxScore
	}
	return points
}

// Validate checks that a StepFunction is internally well-formed: no band
// awards negative points, and bands are ordered from the most favorable
// metric value to the least. A band's points may still exceed MaxScore on
// purpose (Evaluate clamps the result) when a table is shared across two
// workloads with different declared maximums. Validate exists to catch an
// authoring mistake in thresholds.go, not to validate runtime metrics.
func (f StepFunction) Validate() error {
	for _, b := range f.Bands {
		if b.Points < 0 {
			return fmt.Errorf("scoring: band points %d is negative", b.Points)
		}
	}
	for i := 1; i < len(f.Bands)-1; i++ {
		prev, cur := f.Bands[i-1].Threshold, f.Bands[i].Threshold
		switch f.Direction {
		case HigherIsBetter:
			if cur > prev {
				return fmt.Errorf("scoring: bands not in descending threshold order at index %d", i)
			}
		case LowerIsBetter:
			if cur < prev {
				return fmt.Errorf("scoring: bands not in ascending threshold order at index %d", i)
			}
		}
	}
	return nil
}
