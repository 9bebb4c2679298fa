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
	render2DDuration     = 2.0 // seconds
	render2DShapesPerFrame = 400
)

// Render2D renders frames of randomly placed line segments for at least
// 2 seconds, scoring on mean FPS.
type Render2D struct {
	workload.Base
}

func NewRender2D() Render2D {
	return Render2D{workload.Base{
		IDValue:          "render_2d",
		NameValue:        "2D Vector Rendering",
		DescriptionValue: "Renders frames of randomly placed line segments and measures frames per second.",
		CategoryValue:    workload.Graphics,
		EstimatedSeconds: 3,
	}}
}

func (w Render2D) Run(rc workload.RunContext) workload.Outcome {
	if rc.Capabilities == nil || !rc.Capabilities.HasDisplayAdapter() {
		return workload.Skipped("no usable display adapter")
	}

	duration := scaledDuration(rc, render2DDuration, 0.05)
	canvas := newCanvas()
	rng := rand.New(rand.NewSource(23))
	sampler := clock.NewSampler(rc.Clock, 256)

	var totalSeconds float64
	for frame := 0; totalSeconds < duration; frame++ {
		if frame%32 == 0 && rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		if frame%32 == 0 {
			rc.Progress.Update(min01(totalSeconds/duration), fmt.Sprintf("frame %d", frame))
		}

		start := rc.Clock.Now()
		for i := 0; i < render2DShapesPerFrame; i++ {
			x0, y0 := rng.Intn(canvasWidth), rng.Intn(canvasHeight)
			x1, y1 := rng.Intn(canvasWidth), rng.Intn(canvasHeight)
			drawLine(canvas, x0, y0, x1, y1, randomColor(rng))
		}
		elapsed := rc.Clock.Since(start, rc.Clock.Now())

		totalSeconds += elapsed.Seconds()
		sampler.Record(1.0 / elapsed.Seconds())
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 4, Elapsed: totalSeconds})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.Render2D.Evaluate(details.Mean)
	return workload.Completed(workload.Measurement{
		Value:    details.Mean,
		Unit:     stats.UnitOpsPerSec,
		Score:    score,
		MaxScore: scoring.Render2D.MaxScore,
		Details:  details,
	})
}
