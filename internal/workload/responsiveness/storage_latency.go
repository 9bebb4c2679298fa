// Package responsiveness implements the Responsiveness category:
// storage, memory, and scheduler latency probes (storage_latency,
// memory_latency, process_spawn, thread_wake, memory_bandwidth), in the
// declared table order from spec §4.5.3.
package responsiveness

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/scratch"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	storageLatencyFileSize = 1 << 30 // 1 GiB
	storageLatencyBlock    = 4096
	storageLatencyCount    = 10_000
	storageLatencyWarmup   = 100
)

// StorageLatency issues 10,000 random 4 KiB reads against a freshly
// created 1 GiB file, timing each, scoring on P99 latency in ms. It is
// the Responsiveness-category counterpart to ProjectOperations'
// random_read, sharing the same band table but a separate scratch file
// and category contribution.
type StorageLatency struct {
	workload.Base
}

func NewStorageLatency() StorageLatency {
	return StorageLatency{workload.Base{
		IDValue:          "storage_latency",
		NameValue:        "Storage Latency",
		DescriptionValue: "Issues 10,000 random 4 KiB reads against a 1 GiB file and measures per-read latency.",
		CategoryValue:    workload.Responsiveness,
		EstimatedSeconds: 15,
	}}
}

func (w StorageLatency) Run(rc workload.RunContext) workload.Outcome {
	size := rc.ScaleBytes(storageLatencyFileSize)
	reads := rc.Scale(storageLatencyCount)
	warmup := rc.Scale(storageLatencyWarmup)
	if warmup >= reads {
		warmup = reads / 10
	}

	area, err := scratch.Acquire(scratch.Config{Root: rc.ScratchRoot, Name: w.ID(), Logger: rc.Logger})
	if err != nil {
		return workload.Skipped(fmt.Sprintf("acquire scratch area: %v", err))
	}
	defer area.Release()

	rc.Progress.Update(0, "creating test file")
	if err := area.CreateFile("data.bin", size, scratch.Random, 2); err != nil {
		return workload.Skipped(fmt.Sprintf("create test file: %v", err))
	}
	if rc.Progress.IsCancelled() {
		return workload.Cancelled()
	}

	f, err := os.Open(area.Path() + "/data.bin")
	if err != nil {
		return workload.Skipped(fmt.Sprintf("open test file: %v", err))
	}
	defer f.Close()

	maxOffset := size - storageLatencyBlock
	rng := rand.New(rand.NewSource(3))
	buf := make([]byte, storageLatencyBlock)
	samples := make([]float64, 0, reads)

	var totalElapsed float64
	for i := 0; i < reads; i++ {
		if i%256 == 0 && rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		if i%1000 == 0 {
			rc.Progress.Update(float64(i)/float64(reads), "reading")
		}

		offset := (rng.Int63n(maxOffset+1) / storageLatencyBlock) * storageLatencyBlock
		start := rc.Clock.Now()
		n, err := f.ReadAt(buf, offset)
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		if err != nil || n != storageLatencyBlock {
			return workload.Failed(fmt.Sprintf("read at offset %d: %v", offset, err), samples)
		}
		totalElapsed += elapsed.Seconds()
		samples = append(samples, float64(elapsed.Microseconds())/1000.0)
	}

	details, err := stats.Reduce(samples, stats.Options{Warmup: warmup, TrimOutlier: true, WithPercentiles: true, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), samples)
	}

	score := scoring.StorageLatency.Evaluate(details.Percentiles.P99)
	return workload.Completed(workload.Measurement{
		Value:    details.Percentiles.P99,
		Unit:     stats.UnitMilliseconds,
		Score:    score,
		MaxScore: scoring.StorageLatency.MaxScore,
		Details:  details,
	})
}
