package graphics

import (
	"fmt"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	textureUploadSize     = 16 << 20 // 16 MiB per simulated texture
	textureUploadDuration = 2.0      // seconds
)

// TextureUpload repeatedly copies simulated 16 MiB texture data into a
// destination buffer for at least 2 seconds, standing in for a real
// host-to-device texture upload, scoring on GB/s.
type TextureUpload struct {
	workload.Base
}

func NewTextureUpload() TextureUpload {
	return TextureUpload{workload.Base{
		IDValue:          "texture_upload",
		NameValue:        "Texture Upload",
		DescriptionValue: "Repeatedly copies simulated texture buffers and measures upload throughput.",
		CategoryValue:    workload.Graphics,
		EstimatedSeconds: 3,
	}}
}

func (w TextureUpload) Run(rc workload.RunContext) workload.Outcome {
	if rc.Capabilities == nil || !rc.Capabilities.HasDisplayAdapter() {
		return workload.Skipped("no usable display adapter")
	}

	src := make([]byte, textureUploadSize)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, textureUploadSize)

	duration := scaledDuration(rc, textureUploadDuration, 0.05)
	sampler := clock.NewSampler(rc.Clock, 64)
	var totalSeconds float64
	for round := 0; totalSeconds < duration; round++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		if round%4 == 0 {
			rc.Progress.Update(min01(totalSeconds/duration), fmt.Sprintf("upload round %d", round))
		}

		start := rc.Clock.Now()
		copy(dst, src)
		elapsed := rc.Clock.Since(start, rc.Clock.Now())

		totalSeconds += elapsed.Seconds()
		gbps := (float64(textureUploadSize) / (1 << 30)) / elapsed.Seconds()
		sampler.Record(gbps)
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 2, Elapsed: totalSeconds})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.TextureUpload.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:    details.Median,
		Unit:     stats.UnitGBPerSecond,
		Score:    score,
		MaxScore: scoring.TextureUpload.MaxScore,
		Details:  details,
	})
}
