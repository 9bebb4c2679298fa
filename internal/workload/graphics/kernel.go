// Package graphics implements the optional Graphics category. No GPU
// binding library exists anywhere in the retrieval pack, so these five
// workloads are CPU-side software kernels (image, image/color, math) that
// exercise the same FPS/frame-time/throughput measurement contract a
// GPU-backed implementation would, gated behind
// platform.Capabilities.HasDisplayAdapter(). A host wiring a real GPU
// probe and renderer behind the workload.Workload interface can replace
// the kernel without touching the orchestrator, scoring, or report
// model.
package graphics

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/ravenscale/workbench/internal/workload"
)

const (
	canvasWidth  = 960
	canvasHeight = 540
)

// newCanvas allocates a fresh RGBA canvas of the standard size every
// graphics kernel renders into.
func newCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
}

// drawLine rasterizes a line segment into img by stepping along the
// longer axis and interpolating the other (a DDA line), the simplest
// rasterization primitive every kernel below builds on.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Max(math.Abs(float64(dx)), math.Abs(float64(dy))))
	if steps == 0 {
		img.SetRGBA(x0, y0, c)
		return
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := x0 + int(float64(dx)*t)
		y := y0 + int(float64(dy)*t)
		if x >= 0 && x < img.Bounds().Dx() && y >= 0 && y < img.Bounds().Dy() {
			img.SetRGBA(x, y, c)
		}
	}
}

// scaledDuration applies rc.SampleScale to a workload's declared
// minimum-runtime target, floored at floor seconds so a heavily
// scaled-down CI run still renders a handful of frames rather than zero.
func scaledDuration(rc workload.RunContext, seconds, floor float64) float64 {
	if rc.SampleScale > 0 && rc.SampleScale < 1 {
		seconds *= rc.SampleScale
		if seconds < floor {
			seconds = floor
		}
	}
	return seconds
}

// randomColor returns a deterministic pseudo-random opaque color drawn
// from rng.
func randomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}
