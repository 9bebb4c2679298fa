package responsiveness

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	memoryBandwidthBufferSize = 64 << 20 // 64 MiB per buffer per thread
	memoryBandwidthMinSeconds = 2.0
)

// MemoryBandwidth runs one copy loop per hardware thread, each between
// its own pair of >=64 MiB buffers, for at least 2 seconds, and sums the
// per-thread throughputs, scoring on aggregate GB/s.
type MemoryBandwidth struct {
	workload.Base
}

func NewMemoryBandwidth() MemoryBandwidth {
	return MemoryBandwidth{workload.Base{
		IDValue:          "memory_bandwidth",
		NameValue:        "Memory Bandwidth",
		DescriptionValue: "Copies between per-thread 64 MiB buffer pairs for at least 2 seconds and sums throughput across threads.",
		CategoryValue:    workload.Responsiveness,
		EstimatedSeconds: 4,
	}}
}

func (w MemoryBandwidth) Run(rc workload.RunContext) workload.Outcome {
	threads := physicalThreadCountResponsiveness()
	minSeconds := memoryBandwidthMinSeconds
	if rc.SampleScale > 0 && rc.SampleScale < 1 {
		minSeconds *= rc.SampleScale
		if minSeconds < 0.05 {
			minSeconds = 0.05
		}
	}

	if rc.Progress.IsCancelled() {
		return workload.Cancelled()
	}
	rc.Progress.Update(0, fmt.Sprintf("copying across %d threads", threads))

	perThread := make([]float64, threads)
	group := errgroup.Group{}
	start := rc.Clock.Now()
	for t := 0; t < threads; t++ {
		t := t
		group.Go(func() error {
			gbps, err := copyLoop(rc.Clock, memoryBandwidthBufferSize, minSeconds)
			if err != nil {
				return err
			}
			perThread[t] = gbps
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return workload.Failed(fmt.Sprintf("memory bandwidth copy: %v", err), nil)
	}
	elapsed := rc.Clock.Since(start, rc.Clock.Now())

	var total float64
	for _, v := range perThread {
		total += v
	}

	score := scoring.MemoryBandwidth.Evaluate(total)
	return workload.Completed(workload.Measurement{
		Value:    total,
		Unit:     stats.UnitGBPerSecond,
		Score:    score,
		MaxScore: scoring.MemoryBandwidth.MaxScore,
		Details: stats.TestDetails{
			Iterations:   threads,
			DurationSecs: elapsed.Seconds(),
			Min:          minOf(perThread),
			Max:          maxOf(perThread),
			Mean:         total / float64(len(perThread)),
			Median:       total / float64(len(perThread)),
		},
	})
}

func copyLoop(src clock.Source, bufSize int, minSeconds float64) (float64, error) {
	a := make([]byte, bufSize)
	b := make([]byte, bufSize)
	for i := range a {
		a[i] = byte(i)
	}

	var totalSeconds float64
	var totalBytes int64
	for totalSeconds < minSeconds {
		start := src.Now()
		copy(b, a)
		elapsed := src.Since(start, src.Now())
		totalSeconds += elapsed.Seconds()
		totalBytes += int64(bufSize)
		a, b = b, a
	}
	return (float64(totalBytes) / (1 << 30)) / totalSeconds, nil
}

func minOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
