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
	adapterClassificationDuration = 1.0 // seconds
	adapterClassificationBatch    = 2_000
	// adapterClassificationReference is the lines/s throughput treated as
	// index 100; it is a fixed implementation constant, not a measured
	// reference adapter.
	adapterClassificationReference = 4_000_000.0
)

// AdapterClassification runs a short rasterization burst and derives a
// composite 0-100 capability index from lines/s throughput, scoring on
// that index. It is skipped entirely when no display adapter is exposed.
type AdapterClassification struct {
	workload.Base
}

func NewAdapterClassification() AdapterClassification {
	return AdapterClassification{workload.Base{
		IDValue:          "adapter_classification",
		NameValue:        "Adapter Classification",
		DescriptionValue: "Derives a composite 0-100 capability index from a short rasterization burst.",
		CategoryValue:    workload.Graphics,
		EstimatedSeconds: 2,
	}}
}

func (w AdapterClassification) Run(rc workload.RunContext) workload.Outcome {
	if rc.Capabilities == nil || !rc.Capabilities.HasDisplayAdapter() {
		return workload.Skipped("no usable display adapter")
	}

	duration := scaledDuration(rc, adapterClassificationDuration, 0.05)
	canvas := newCanvas()
	rng := rand.New(rand.NewSource(11))
	sampler := clock.NewSampler(rc.Clock, 8)

	var totalSeconds float64
	for round := 0; totalSeconds < duration; round++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		rc.Progress.Update(min01(totalSeconds/duration), fmt.Sprintf("classification burst %d", round+1))

		start := rc.Clock.Now()
		for i := 0; i < adapterClassificationBatch; i++ {
			x0, y0 := rng.Intn(canvasWidth), rng.Intn(canvasHeight)
			x1, y1 := rng.Intn(canvasWidth), rng.Intn(canvasHeight)
			drawLine(canvas, x0, y0, x1, y1, randomColor(rng))
		}
		elapsed := rc.Clock.Since(start, rc.Clock.Now())

		totalSeconds += elapsed.Seconds()
		linesPerSec := float64(adapterClassificationBatch) / elapsed.Seconds()
		sampler.Record(linesPerSec)
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 1, Elapsed: totalSeconds})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	index := 100 * details.Median / adapterClassificationReference
	if index > 100 {
		index = 100
	}

	score := scoring.AdapterClassification.Evaluate(index)
	return workload.Completed(workload.Measurement{
		Value:    index,
		Unit:     stats.UnitPercent,
		Score:    score,
		MaxScore: scoring.AdapterClassification.MaxScore,
		Details:  details,
	})
}

func min01(f float64) float64 {
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}
