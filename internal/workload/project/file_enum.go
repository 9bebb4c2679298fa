// Package project implements the ProjectOperations category: workloads
// that measure project-style filesystem I/O (file_enum, random_read,
// metadata_ops, dir_traversal, large_seq_read), in the declared table
// order from spec §4.5.1.
package project

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/scratch"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	fileEnumDirs        = 500
	fileEnumFilesPerDir = 60 // 500 * 60 = 30,000 files
	fileEnumFileSize    = 256
	fileEnumRepeats     = 5
)

// FileEnum creates a 30,000-file/500-directory tree and enumerates it
// recursively five times, dropping the first run as warmup (cold
// directory-entry cache), scoring on the median files/s.
type FileEnum struct {
	workload.Base
}

// NewFileEnum constructs the file_enum workload.
func NewFileEnum() FileEnum {
	return FileEnum{workload.Base{
		IDValue:          "file_enum",
		NameValue:        "File Enumeration",
		DescriptionValue: "Creates 30,000 small files across 500 directories and enumerates the tree recursively, five times.",
		CategoryValue:    workload.ProjectOperations,
		EstimatedSeconds: 10,
	}}
}

func (w FileEnum) Run(rc workload.RunContext) workload.Outcome {
	dirs := rc.Scale(fileEnumDirs)
	filesPerDir := fileEnumFilesPerDir

	area, err := scratch.Acquire(scratch.Config{Root: rc.ScratchRoot, Name: w.ID(), Logger: rc.Logger})
	if err != nil {
		return workload.Skipped(fmt.Sprintf("acquire scratch area: %v", err))
	}
	defer area.Release()

	rc.Progress.Update(0, "creating file tree")
	if err := area.CreateTree(dirs, filesPerDir, fileEnumFileSize, scratch.Zero, 1); err != nil {
		return workload.Skipped(fmt.Sprintf("create file tree: %v", err))
	}
	if rc.Progress.IsCancelled() {
		return workload.Cancelled()
	}

	sampler := clock.NewSampler(rc.Clock, fileEnumRepeats)
	var totalElapsed float64
	for i := 0; i < fileEnumRepeats; i++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		rc.Progress.Update(float64(i)/float64(fileEnumRepeats), fmt.Sprintf("enumeration pass %d/%d", i+1, fileEnumRepeats))

		start := rc.Clock.Now()
		count := countFiles(area.Path())
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		totalElapsed += elapsed.Seconds()
		sampler.Record(float64(count) / elapsed.Seconds())

		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 1, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.FileEnum.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:    details.Median,
		Unit:     stats.UnitFilesPerSec,
		Score:    score,
		MaxScore: scoring.FileEnum.MaxScore,
		Details:  details,
	})
}

// countFiles recursively counts regular files under root.
func countFiles(root string) int {
	n := 0
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	return n
}
