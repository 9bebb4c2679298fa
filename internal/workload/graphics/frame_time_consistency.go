package graphics

import (
	"fmt"
	"math/rand"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	frameTimeConsistencyDuration       = 3.0 // seconds
	frameTimeConsistencyShapesPerFrame = 600
)

// FrameTimeConsistency renders frames of randomly placed shapes, with an
// occasional heavier frame mixed in, and scores on the ratio of P99 to
// P50 per-frame time (lower is steadier).
type FrameTimeConsistency struct {
	workload.Base
}

func NewFrameTimeConsistency() FrameTimeConsistency {
	return FrameTimeConsistency{workload.Base{
		IDValue:          "frame_time_consistency",
		NameValue:        "Frame Time Consistency",
		DescriptionValue: "Renders a frame sequence with occasional heavier frames and scores on the P99/P50 frame-time ratio.",
		CategoryValue:    workload.Graphics,
		EstimatedSeconds: 4,
	}}
}

func (w FrameTimeConsistency) Run(rc workload.RunContext) workload.Outcome {
	if rc.Capabilities == nil || !rc.Capabilities.HasDisplayAdapter() {
		return workload.Skipped("no usable display adapter")
	}

	duration := scaledDuration(rc, frameTimeConsistencyDuration, 0.05)
	canvas := newCanvas()
	rng := rand.New(rand.NewSource(41))
	sampler := clock.NewSampler(rc.Clock, 512)

	var totalSeconds float64
	for frame := 0; totalSeconds < duration; frame++ {
		if frame%32 == 0 && rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		if frame%32 == 0 {
			rc.Progress.Update(min01(totalSeconds/duration), fmt.Sprintf("frame %d", frame))
		}

		shapes := frameTimeConsistencyShapesPerFrame
		if frame%47 == 0 {
			shapes *= 6 // occasional heavier frame, the thing this workload measures tolerance for
		}

		start := rc.Clock.Now()
		for i := 0; i < shapes; i++ {
			x0, y0 := rng.Intn(canvasWidth), rng.Intn(canvasHeight)
			x1, y1 := rng.Intn(canvasWidth), rng.Intn(canvasHeight)
			drawLine(canvas, x0, y0, x1, y1, randomColor(rng))
		}
		elapsed := rc.Clock.Since(start, rc.Clock.Now())

		totalSeconds += elapsed.Seconds()
		sampler.Record(float64(elapsed.Microseconds()))
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 4, WithPercentiles: true, Elapsed: totalSeconds})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	ratio := 1.0
	if details.Median > 0 {
		ratio = details.Percentiles.P99 / details.Median
	}

	score := scoring.FrameTimeConsistency.Evaluate(ratio)
	return workload.Completed(workload.Measurement{
		Value:    ratio,
		Unit:     stats.UnitPercent,
		Score:    score,
		MaxScore: scoring.FrameTimeConsistency.MaxScore,
		Details:  details,
	})
}
