package project

import (
	"fmt"
	"io"
	"os"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/scratch"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	largeSeqReadFileSize = 2 << 30 // 2 GiB
	largeSeqReadChunk    = 1 << 20 // 1 MiB
	largeSeqReadRepeats  = 4
	// largeSeqReadCacheBustSize sets how many passes bustCache makes over
	// its reused 16 MiB buffer (8 GiB / 16 MiB = 512); it does not
	// allocate or read 8 GiB.
	largeSeqReadCacheBustSize = 8 << 30 // 8 GiB
)

// LargeSeqRead creates a 2 GiB file and reads it sequentially in 1 MiB
// chunks four times, calling bustCache between repeats, scoring on median
// MB/s.
type LargeSeqRead struct {
	workload.Base
}

func NewLargeSeqRead() LargeSeqRead {
	return LargeSeqRead{workload.Base{
		IDValue:          "large_seq_read",
		NameValue:        "Large Sequential Read",
		DescriptionValue: "Reads a 2 GiB file sequentially in 1 MiB chunks, four times.",
		CategoryValue:    workload.ProjectOperations,
		EstimatedSeconds: 25,
	}}
}

func (w LargeSeqRead) Run(rc workload.RunContext) workload.Outcome {
	size := rc.ScaleBytes(largeSeqReadFileSize)

	area, err := scratch.Acquire(scratch.Config{Root: rc.ScratchRoot, Name: w.ID(), Logger: rc.Logger, RequiredBytes: size})
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

	sampler := clock.NewSampler(rc.Clock, largeSeqReadRepeats)
	buf := make([]byte, largeSeqReadChunk)
	path := area.Path() + "/data.bin"

	var totalElapsed float64
	for r := 0; r < largeSeqReadRepeats; r++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		rc.Progress.Update(float64(r)/float64(largeSeqReadRepeats), fmt.Sprintf("sequential read pass %d/%d", r+1, largeSeqReadRepeats))

		if r > 0 {
			w.bustCache(rc)
		}

		f, err := os.Open(path)
		if err != nil {
			return workload.Failed(fmt.Sprintf("open test file: %v", err), sampler.Samples())
		}

		var total int64
		start := rc.Clock.Now()
		for {
			n, rerr := f.Read(buf)
			total += int64(n)
			if rerr == io.EOF {
				break
			}
			if rerr != nil {
				f.Close()
				return workload.Failed(fmt.Sprintf("read test file: %v", rerr), sampler.Samples())
			}
			if total%(64<<20) == 0 && rc.Progress.IsCancelled() {
				f.Close()
				return workload.Cancelled()
			}
		}
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		f.Close()

		totalElapsed += elapsed.Seconds()
		mbps := (float64(total) / (1 << 20)) / elapsed.Seconds()
		sampler.Record(mbps)
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 0, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.LargeSeqRead.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:    details.Median,
		Unit:     stats.UnitMBPerSecond,
		Score:    score,
		MaxScore: scoring.LargeSeqRead.MaxScore,
		Details:  details,
	})
}

// bustCache runs before every repeat after the first. It issues no cache
// drop: when the host reports CanDropFileCache it returns at once, and
// otherwise it strides through one reused 16 MiB buffer 512 times, which
// touches at most 16 MiB of memory and does not evict the test file's
// pages. Later repeats can therefore be served from the page cache.
func (w LargeSeqRead) bustCache(rc workload.RunContext) {
	if rc.Capabilities != nil && rc.Capabilities.CanDropFileCache() {
		return
	}
	const (
		chunkSize = 16 << 20
		stride    = 64 // bytes, matches a typical cache line
	)
	chunks := int(largeSeqReadCacheBustSize / chunkSize)
	junk := make([]byte, chunkSize)
	var sink byte
	for i := 0; i < chunks; i++ {
		for off := 0; off < chunkSize; off += stride {
			junk[off]++
			sink ^= junk[off]
		}
	}
	_ = sink
}
