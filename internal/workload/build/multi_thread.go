package build

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	multiThreadBufferSize  = 256 << 20 // 256 MiB per worker
	multiThreadMinSeconds  = 5.0
	multiThreadBaselineSec = 1.0
)

// MultiThread runs the single-thread compression kernel on every hardware
// thread in parallel for at least 5 seconds, scoring on aggregate MB/s
// and reporting scaling efficiency (multi throughput / (single throughput
// * threads)) as a secondary metric.
type MultiThread struct {
	workload.Base
}

func NewMultiThread() MultiThread {
	return MultiThread{workload.Base{
		IDValue:          "multi_thread",
		NameValue:        "Multi-Thread Compression",
		DescriptionValue: "Runs the single-thread compression kernel on every hardware thread in parallel for at least 5 seconds.",
		CategoryValue:    workload.BuildPerformance,
		EstimatedSeconds: 8,
	}}
}

func (w MultiThread) Run(rc workload.RunContext) workload.Outcome {
	size := int(rc.ScaleBytes(multiThreadBufferSize))
	minSeconds := multiThreadMinSeconds
	baselineSeconds := multiThreadBaselineSec
	if rc.SampleScale > 0 && rc.SampleScale < 1 {
		minSeconds *= rc.SampleScale
		baselineSeconds *= rc.SampleScale
		if minSeconds < 0.05 {
			minSeconds = 0.05
		}
		if baselineSeconds < 0.02 {
			baselineSeconds = 0.02
		}
	}

	threads := physicalThreadCount()

	if rc.Progress.IsCancelled() {
		return workload.Cancelled()
	}
	rc.Progress.Update(0, "measuring single-thread baseline")
	baseline, err := measureBaselineThroughput(rc, size, baselineSeconds)
	if err != nil {
		return workload.Skipped(fmt.Sprintf("baseline measurement: %v", err))
	}

	buffers := make([][]byte, threads)
	for i := range buffers {
		buffers[i] = randomBuffer(size, int64(i+1))
	}

	sampler := clock.NewSampler(rc.Clock, 32)
	var totalSeconds float64
	for round := 0; totalSeconds < minSeconds; round++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		rc.Progress.Update(min01(totalSeconds/minSeconds), fmt.Sprintf("parallel compress round %d (%d threads)", round+1, threads))

		byteCounts := make([]int, threads)
		group := errgroup.Group{}
		start := rc.Clock.Now()
		for t := 0; t < threads; t++ {
			t := t
			group.Go(func() error {
				n, err := compressOnce(buffers[t])
				byteCounts[t] = n
				return err
			})
		}
		if err := group.Wait(); err != nil {
			return workload.Failed(fmt.Sprintf("parallel compress: %v", err), sampler.Samples())
		}
		elapsed := rc.Clock.Since(start, rc.Clock.Now())

		var total int
		for _, n := range byteCounts {
			total += n
		}
		totalSeconds += elapsed.Seconds()
		mbps := (float64(total) / (1 << 20)) / elapsed.Seconds()
		sampler.Record(mbps)
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 1, Elapsed: totalSeconds})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	efficiency := 0.0
	if baseline > 0 && threads > 0 {
		efficiency = details.Median / (baseline * float64(threads))
	}

	score := scoring.MultiThread.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:     details.Median,
		Unit:      stats.UnitMBPerSecond,
		Score:     score,
		MaxScore:  scoring.MultiThread.MaxScore,
		Details:   details,
		Secondary: map[string]float64{"scaling_efficiency": efficiency, "threads": float64(threads)},
	})
}

// measureBaselineThroughput runs the single-thread kernel for a short,
// fixed window to establish the denominator for scaling efficiency,
// without requiring the full single_thread workload to have run first.
func measureBaselineThroughput(rc workload.RunContext, size int, seconds float64) (float64, error) {
	buf := randomBuffer(size, 0)
	var totalSeconds float64
	var totalBytes int64
	for totalSeconds < seconds {
		start := rc.Clock.Now()
		n, err := compressOnce(buf)
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		if err != nil {
			return 0, err
		}
		totalSeconds += elapsed.Seconds()
		totalBytes += int64(n)
	}
	return (float64(totalBytes) / (1 << 20)) / totalSeconds, nil
}

// physicalThreadCount prefers the host's physical core count, falling
// back to Go's logical CPU count when the platform doesn't expose the
// distinction, so multi_thread's worker pool matches hardware threads
// rather than oversubscribing hyperthreaded logical cores.
func physicalThreadCount() int {
	if cpuid.CPU.PhysicalCores > 0 {
		return cpuid.CPU.PhysicalCores
	}
	return runtime.NumCPU()
}
