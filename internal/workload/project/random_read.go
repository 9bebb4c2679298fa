package project

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
	randomReadFileSize = 1 << 30 // 1 GiB
	randomReadBlock    = 4096
	randomReadCount    = 10_000
	randomReadWarmup   = 100
)

// RandomRead creates a 1 GiB file of random content and issues 10,000
// 4 KiB reads at uniformly random aligned offsets, timing each, scoring
// on P99 latency in milliseconds.
type RandomRead struct {
	workload.Base
}

func NewRandomRead() RandomRead {
	return RandomRead{workload.Base{
		IDValue:          "random_read",
		NameValue:        "Random Read Latency",
		DescriptionValue: "Issues 10,000 random 4 KiB reads against a 1 GiB file and measures per-read latency.",
		CategoryValue:    workload.ProjectOperations,
		EstimatedSeconds: 15,
	}}
}

func (w RandomRead) Run(rc workload.RunContext) workload.Outcome {
	size := rc.ScaleBytes(randomReadFileSize)
	reads := rc.Scale(randomReadCount)
	warmup := rc.Scale(randomReadWarmup)
	if warmup >= reads {
		warmup = reads / 10
	}

	area, err := scratch.Acquire(scratch.Config{Root: rc.ScratchRoot, Name: w.ID(), Logger: rc.Logger})
	if err != nil {
		return workload.Skipped(fmt.Sprintf("acquire scratch area: %v", err))
	}
	defer area.Release()

	rc.Progress.Update(0, "creating test file")
	if err := area.CreateFile("data.bin", size, scratch.Random, 1); err != nil {
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

	maxOffset := size - randomReadBlock
	rng := rand.New(rand.NewSource(2))
	buf := make([]byte, randomReadBlock)
	samples := make([]float64, 0, reads)

	var totalElapsed float64
	for i := 0; i < reads; i++ {
		if i%256 == 0 && rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		if i%1000 == 0 {
			rc.Progress.Update(float64(i)/float64(reads), "reading")
		}

		offset := alignedOffset(rng, maxOffset, randomReadBlock)
		start := rc.Clock.Now()
		n, err := f.ReadAt(buf, offset)
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		if err != nil || n != randomReadBlock {
			return workload.Failed(fmt.Sprintf("read at offset %d: %v", offset, err), samples)
		}
		totalElapsed += elapsed.Seconds()
		samples = append(samples, float64(elapsed.Microseconds())/1000.0) // ms
	}

	details, err := stats.Reduce(samples, stats.Options{Warmup: warmup, TrimOutlier: true, WithPercentiles: true, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), samples)
	}

	score := scoring.RandomRead.Evaluate(details.Percentiles.P99)
	return workload.Completed(workload.Measurement{
		Value:    details.Percentiles.P99,
		Unit:     stats.UnitMilliseconds,
		Score:    score,
		MaxScore: scoring.RandomRead.MaxScore,
		Details:  details,
	})
}

// alignedOffset returns a uniformly random offset in [0, maxOffset],
// aligned down to a multiple of align.
func alignedOffset(rng *rand.Rand, maxOffset int64, align int64) int64 {
	if maxOffset <= 0 {
		return 0
	}
	raw := rng.Int63n(maxOffset + 1)
	return (raw / align) * align
}
