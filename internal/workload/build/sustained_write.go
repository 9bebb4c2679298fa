package build

import (
	"fmt"
	"os"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/scratch"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	sustainedWriteTotalSize = 4 << 30 // 4 GiB
	sustainedWriteChunk     = 4 << 20 // 4 MiB
	sustainedWriteSyncEvery = 256 << 20
)

// SustainedWrite writes 4 GiB in 4 MiB chunks, calling a durable sync
// every 256 MiB, scoring on the median MB/s measured over each 256 MiB
// window.
type SustainedWrite struct {
	workload.Base
}

func NewSustainedWrite() SustainedWrite {
	return SustainedWrite{workload.Base{
		IDValue:          "sustained_write",
		NameValue:        "Sustained Write",
		DescriptionValue: "Writes 4 GiB in 4 MiB chunks with a durable sync every 256 MiB, scoring on per-window MB/s.",
		CategoryValue:    workload.BuildPerformance,
		EstimatedSeconds: 20,
	}}
}

func (w SustainedWrite) Run(rc workload.RunContext) workload.Outcome {
	totalSize := rc.ScaleBytes(sustainedWriteTotalSize)

	area, err := scratch.Acquire(scratch.Config{Root: rc.ScratchRoot, Name: w.ID(), Logger: rc.Logger, RequiredBytes: totalSize})
	if err != nil {
		return workload.Skipped(fmt.Sprintf("acquire scratch area: %v", err))
	}
	defer area.Release()

	path := area.Path() + "/sustained.bin"
	f, err := os.Create(path)
	if err != nil {
		return workload.Skipped(fmt.Sprintf("create output file: %v", err))
	}
	defer f.Close()

	canSync := rc.Capabilities != nil && rc.Capabilities.DurableSyncSupported()

	buf := randomBuffer(sustainedWriteChunk, 1)
	sampler := clock.NewSampler(rc.Clock, int(totalSize/sustainedWriteSyncEvery)+1)

	var written int64
	var windowStart int64
	var totalElapsed float64
	windowBegin := rc.Clock.Now()

	for written < totalSize {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		rc.Progress.Update(float64(written)/float64(totalSize), "writing")

		n := len(buf)
		if remaining := totalSize - written; remaining < int64(n) {
			n = int(remaining)
		}
		if _, err := f.Write(buf[:n]); err != nil {
			return workload.Failed(fmt.Sprintf("write: %v", err), sampler.Samples())
		}
		written += int64(n)

		if written-windowStart >= sustainedWriteSyncEvery || written >= totalSize {
			if canSync {
				if err := f.Sync(); err != nil {
					return workload.Failed(fmt.Sprintf("sync: %v", err), sampler.Samples())
				}
			}
			elapsed := rc.Clock.Since(windowBegin, rc.Clock.Now())
			totalElapsed += elapsed.Seconds()
			windowBytes := written - windowStart
			mbps := (float64(windowBytes) / (1 << 20)) / elapsed.Seconds()
			sampler.Record(mbps)

			windowStart = written
			windowBegin = rc.Clock.Now()
		}
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 0, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.SustainedWrite.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:    details.Median,
		Unit:     stats.UnitMBPerSecond,
		Score:    score,
		MaxScore: scoring.SustainedWrite.MaxScore,
		Details:  details,
	})
}
