package build

import (
	"fmt"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	singleThreadBufferSize = 256 << 20 // 256 MiB
	singleThreadMinSeconds = 5.0
)

// SingleThread repeatedly LZ4-compresses a 256 MiB random buffer on a
// single thread until the accumulated duration reaches 5 seconds, scoring
// on aggregate MB/s.
type SingleThread struct {
	workload.Base
}

func NewSingleThread() SingleThread {
	return SingleThread{workload.Base{
		IDValue:          "single_thread",
		NameValue:        "Single-Thread Compression",
		DescriptionValue: "Repeatedly LZ4-compresses a 256 MiB random buffer on one thread for at least 5 seconds.",
		CategoryValue:    workload.BuildPerformance,
		EstimatedSeconds: 6,
	}}
}

func (w SingleThread) Run(rc workload.RunContext) workload.Outcome {
	size := int(rc.ScaleBytes(singleThreadBufferSize))
	minSeconds := singleThreadMinSeconds
	if rc.SampleScale > 0 && rc.SampleScale < 1 {
		minSeconds *= rc.SampleScale
		if minSeconds < 0.05 {
			minSeconds = 0.05
		}
	}

	buf := randomBuffer(size, 1)
	sampler := clock.NewSampler(rc.Clock, 32)

	var totalSeconds float64
	for iter := 0; totalSeconds < minSeconds; iter++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		rc.Progress.Update(min01(totalSeconds/minSeconds), fmt.Sprintf("compress pass %d", iter+1))

		start := rc.Clock.Now()
		n, err := compressOnce(buf)
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		if err != nil {
			return workload.Failed(fmt.Sprintf("compress: %v", err), sampler.Samples())
		}

		totalSeconds += elapsed.Seconds()
		mbps := (float64(n) / (1 << 20)) / elapsed.Seconds()
		sampler.Record(mbps)
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 1, Elapsed: totalSeconds})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.SingleThread.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:    details.Median,
		Unit:     stats.UnitMBPerSecond,
		Score:    score,
		MaxScore: scoring.SingleThread.MaxScore,
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
