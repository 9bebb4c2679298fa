package build

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/scratch"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	mixedRCWInputSize   = 256 << 20 // 256 MiB
	mixedRCWChunkSize   = 4 << 20   // 4 MiB
	mixedRCWMaxWorkers  = 8
	mixedRCWRepeats     = 3
)

// MixedRCW reads a 256 MiB input in 4 MiB chunks, LZ4-compresses each
// chunk, and writes it to a distinct scratch file, overlapping the
// pipeline across a worker pool of min(hardware threads, 8), scoring on
// end-to-end MB/s.
type MixedRCW struct {
	workload.Base
}

func NewMixedRCW() MixedRCW {
	return MixedRCW{workload.Base{
		IDValue:          "mixed_rcw",
		NameValue:        "Mixed Read-Compress-Write",
		DescriptionValue: "Reads a 256 MiB input in 4 MiB chunks, compresses each, and writes the result, overlapped across a worker pool.",
		CategoryValue:    workload.BuildPerformance,
		EstimatedSeconds: 8,
	}}
}

func (w MixedRCW) Run(rc workload.RunContext) workload.Outcome {
	size := rc.ScaleBytes(mixedRCWInputSize)
	workers := physicalThreadCount()
	if workers > mixedRCWMaxWorkers {
		workers = mixedRCWMaxWorkers
	}

	area, err := scratch.Acquire(scratch.Config{Root: rc.ScratchRoot, Name: w.ID(), Logger: rc.Logger})
	if err != nil {
		return workload.Skipped(fmt.Sprintf("acquire scratch area: %v", err))
	}
	defer area.Release()

	rc.Progress.Update(0, "creating source file")
	if err := area.CreateFile("source.bin", size, scratch.Random, 1); err != nil {
		return workload.Skipped(fmt.Sprintf("create source file: %v", err))
	}
	if rc.Progress.IsCancelled() {
		return workload.Cancelled()
	}

	chunks := int((size + mixedRCWChunkSize - 1) / mixedRCWChunkSize)
	sampler := clock.NewSampler(rc.Clock, mixedRCWRepeats)

	var totalElapsed float64
	for r := 0; r < mixedRCWRepeats; r++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		rc.Progress.Update(float64(r)/float64(mixedRCWRepeats), fmt.Sprintf("rcw pipeline pass %d/%d", r+1, mixedRCWRepeats))

		start := rc.Clock.Now()
		total, err := w.runPipeline(area, size, chunks, workers, r)
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		if err != nil {
			return workload.Failed(fmt.Sprintf("rcw pipeline: %v", err), sampler.Samples())
		}

		totalElapsed += elapsed.Seconds()
		mbps := (float64(total) / (1 << 20)) / elapsed.Seconds()
		sampler.Record(mbps)

		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 1, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.MixedRCW.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:    details.Median,
		Unit:     stats.UnitMBPerSecond,
		Score:    score,
		MaxScore: scoring.MixedRCW.MaxScore,
		Details:  details,
	})
}

// runPipeline fans out chunks indices across workers; each worker reads
// its chunk from the source file, compresses it, and writes the result to
// its own output file, avoiding any write contention between workers.
func (w MixedRCW) runPipeline(area *scratch.Area, size int64, chunks, workers, pass int) (int64, error) {
	src, err := os.Open(area.Path() + "/source.bin")
	if err != nil {
		return 0, err
	}
	defer src.Close()

	indices := make(chan int, chunks)
	for i := 0; i < chunks; i++ {
		indices <- i
	}
	close(indices)

	var totals = make([]int64, workers)
	group := errgroup.Group{}
	for wk := 0; wk < workers; wk++ {
		wk := wk
		group.Go(func() error {
			buf := make([]byte, mixedRCWChunkSize)
			var workerTotal int64
			outPath := fmt.Sprintf("%s/out-%d-%d.lz4", area.Path(), pass, wk)
			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			for idx := range indices {
				offset := int64(idx) * mixedRCWChunkSize
				n := mixedRCWChunkSize
				if remaining := size - offset; remaining < int64(n) {
					n = int(remaining)
				}
				if n <= 0 {
					continue
				}
				if _, err := src.ReadAt(buf[:n], offset); err != nil {
					return err
				}
				if err := compressStream(out, buf[:n]); err != nil {
					return err
				}
				workerTotal += int64(n)
			}
			totals[wk] = workerTotal
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}

	var grand int64
	for _, t := range totals {
		grand += t
	}
	return grand, nil
}
