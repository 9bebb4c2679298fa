package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/scratch"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	// dirTraversalDirs/dirTraversalFilesPerDir match file_enum's tree
	// shape (500 dirs * 60 files = 30,000 files): the workload builds its
	// own independent tree of the same size rather than reusing
	// file_enum's, since the scratch contract removes a workload's
	// file-set before it returns (see internal/scratch) — see DESIGN.md.
	dirTraversalDirs        = 500
	dirTraversalFilesPerDir = 60
	dirTraversalFileSize    = 4096
	dirTraversalReadBytes   = 1024
	dirTraversalRepeats     = 5
)

// DirTraversal creates a 30,000-file/500-directory tree of small text
// files and, five times, walks it reading the first 1 KiB of every file,
// scoring on the median files/s.
type DirTraversal struct {
	workload.Base
}

func NewDirTraversal() DirTraversal {
	return DirTraversal{workload.Base{
		IDValue:          "dir_traversal",
		NameValue:        "Directory Traversal",
		DescriptionValue: "Walks a 30,000-file tree reading the first 1 KiB of every file, five times.",
		CategoryValue:    workload.ProjectOperations,
		EstimatedSeconds: 10,
	}}
}

func (w DirTraversal) Run(rc workload.RunContext) workload.Outcome {
	dirs := rc.Scale(dirTraversalDirs)

	area, err := scratch.Acquire(scratch.Config{Root: rc.ScratchRoot, Name: w.ID(), Logger: rc.Logger})
	if err != nil {
		return workload.Skipped(fmt.Sprintf("acquire scratch area: %v", err))
	}
	defer area.Release()

	rc.Progress.Update(0, "creating file tree")
	if err := area.CreateTree(dirs, dirTraversalFilesPerDir, dirTraversalFileSize, scratch.Text, 1); err != nil {
		return workload.Skipped(fmt.Sprintf("create file tree: %v", err))
	}
	if rc.Progress.IsCancelled() {
		return workload.Cancelled()
	}

	sampler := clock.NewSampler(rc.Clock, dirTraversalRepeats)
	buf := make([]byte, dirTraversalReadBytes)
	var totalElapsed float64
	for r := 0; r < dirTraversalRepeats; r++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		rc.Progress.Update(float64(r)/float64(dirTraversalRepeats), fmt.Sprintf("traversal pass %d/%d", r+1, dirTraversalRepeats))

		count := 0
		start := rc.Clock.Now()
		walkErr := filepath.WalkDir(area.Path(), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				return nil
			}
			f, ferr := os.Open(path)
			if ferr != nil {
				return ferr
			}
			_, ferr = f.Read(buf)
			f.Close()
			if ferr != nil {
				return ferr
			}
			count++
			return nil
		})
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		if walkErr != nil {
			return workload.Failed(fmt.Sprintf("walk tree: %v", walkErr), sampler.Samples())
		}
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

	score := scoring.DirTraversal.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:    details.Median,
		Unit:     stats.UnitFilesPerSec,
		Score:    score,
		MaxScore: scoring.DirTraversal.MaxScore,
		Details:  details,
	})
}
