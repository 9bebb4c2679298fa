package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/scratch"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	metadataOpsIterations = 5_000
	metadataOpsFileSize   = 4096
	metadataOpsWarmup     = 50
	metadataOpsOpsPerIter = 4 // create, write, close, delete
)

// MetadataOps runs 5,000 iterations of create+write-4KiB+close+delete
// against a single file in a flat scratch directory, scoring on the
// median operations/s across the four metadata operations per iteration.
type MetadataOps struct {
	workload.Base
}

func NewMetadataOps() MetadataOps {
	return MetadataOps{workload.Base{
		IDValue:          "metadata_ops",
		NameValue:        "Metadata Operations",
		DescriptionValue: "Creates, writes 4 KiB to, closes, and deletes a file 5,000 times and measures metadata operation throughput.",
		CategoryValue:    workload.ProjectOperations,
		EstimatedSeconds: 8,
	}}
}

func (w MetadataOps) Run(rc workload.RunContext) workload.Outcome {
	iterations := rc.Scale(metadataOpsIterations)
	warmup := rc.Scale(metadataOpsWarmup)
	if warmup >= iterations {
		warmup = iterations / 10
	}

	area, err := scratch.Acquire(scratch.Config{Root: rc.ScratchRoot, Name: w.ID(), Logger: rc.Logger})
	if err != nil {
		return workload.Skipped(fmt.Sprintf("acquire scratch area: %v", err))
	}
	defer area.Release()

	path := filepath.Join(area.Path(), "probe.bin")
	buf := make([]byte, metadataOpsFileSize)
	samples := make([]float64, 0, iterations)

	var totalElapsed float64
	for i := 0; i < iterations; i++ {
		if i%256 == 0 && rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		if i%1000 == 0 {
			rc.Progress.Update(float64(i)/float64(iterations), "metadata ops")
		}

		start := rc.Clock.Now()
		f, err := os.Create(path)
		if err != nil {
			return workload.Failed(fmt.Sprintf("create: %v", err), samples)
		}
		if _, err := f.Write(buf); err != nil {
			f.Close()
			return workload.Failed(fmt.Sprintf("write: %v", err), samples)
		}
		if err := f.Close(); err != nil {
			return workload.Failed(fmt.Sprintf("close: %v", err), samples)
		}
		if err := os.Remove(path); err != nil {
			return workload.Failed(fmt.Sprintf("delete: %v", err), samples)
		}
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		totalElapsed += elapsed.Seconds()

		samples = append(samples, float64(metadataOpsOpsPerIter)/elapsed.Seconds())
	}

	details, err := stats.Reduce(samples, stats.Options{Warmup: warmup, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), samples)
	}

	score := scoring.MetadataOps.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:    details.Median,
		Unit:     stats.UnitOpsPerSec,
		Score:    score,
		MaxScore: scoring.MetadataOps.MaxScore,
		Details:  details,
	})
}
