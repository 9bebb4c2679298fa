package graphics

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const render3DDuration = 2.0 // seconds

type vec3 struct{ x, y, z float64 }

// cubeVertices are the 8 corners of a unit cube centered at the origin.
var cubeVertices = [8]vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// cubeEdges lists the 12 edges of the cube as vertex index pairs.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Render3D renders a rotating wireframe cube mesh for at least 2 seconds,
// applying a fresh rotation matrix per frame, scoring on mean FPS.
type Render3D struct {
	workload.Base
}

func NewRender3D() Render3D {
	return Render3D{workload.Base{
		IDValue:          "render_3d",
		NameValue:        "3D Mesh Rendering",
		DescriptionValue: "Renders a rotating wireframe mesh with a fresh transform per frame and measures frames per second.",
		CategoryValue:    workload.Graphics,
		EstimatedSeconds: 3,
	}}
}

func (w Render3D) Run(rc workload.RunContext) workload.Outcome {
	if rc.Capabilities == nil || !rc.Capabilities.HasDisplayAdapter() {
		return workload.Skipped("no usable display adapter")
	}

	duration := scaledDuration(rc, render3DDuration, 0.05)
	canvas := newCanvas()
	sampler := clock.NewSampler(rc.Clock, 256)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	var totalSeconds float64
	for frame := 0; totalSeconds < duration; frame++ {
		if frame%32 == 0 && rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		if frame%32 == 0 {
			rc.Progress.Update(min01(totalSeconds/duration), fmt.Sprintf("frame %d", frame))
		}

		angle := float64(frame) * 0.05
		start := rc.Clock.Now()
		projected := projectCube(angle)
		for _, edge := range cubeEdges {
			a, b := projected[edge[0]], projected[edge[1]]
			drawLine(canvas, a[0], a[1], b[0], b[1], white)
		}
		elapsed := rc.Clock.Since(start, rc.Clock.Now())

		totalSeconds += elapsed.Seconds()
		sampler.Record(1.0 / elapsed.Seconds())
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 4, Elapsed: totalSeconds})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.Render3D.Evaluate(details.Mean)
	return workload.Completed(workload.Measurement{
		Value:    details.Mean,
		Unit:     stats.UnitOpsPerSec,
		Score:    score,
		MaxScore: scoring.Render3D.MaxScore,
		Details:  details,
	})
}

// projectCube rotates cubeVertices about the Y and X axes by angle and
// projects them onto the canvas with a simple perspective divide.
func projectCube(angle float64) [8][2]int {
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	cosB, sinB := math.Cos(angle*0.7), math.Sin(angle*0.7)

	var out [8][2]int
	for i, v := range cubeVertices {
		// rotate around Y
		x1 := v.x*cosA + v.z*sinA
		z1 := -v.x*sinA + v.z*cosA
		// rotate around X
		y2 := v.y*cosB - z1*sinB
		z2 := v.y*sinB + z1*cosB

		distance := 4.0
		scale := distance / (distance + z2)
		px := canvasWidth/2 + int(x1*scale*150)
		py := canvasHeight/2 + int(y2*scale*150)
		out[i] = [2]int{px, py}
	}
	return out
}
