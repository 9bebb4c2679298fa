package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ravenscale/workbench/internal/catalog"
	"github.com/ravenscale/workbench/internal/config"
	"github.com/ravenscale/workbench/internal/export"
	"github.com/ravenscale/workbench/internal/orchestrator"
	"github.com/ravenscale/workbench/internal/report"
	"github.com/ravenscale/workbench/internal/sysinfo"
)

// loadConfig reads --config if set, layering its SampleScale/ScratchRoot/
// DisableWorkloads/Machine/Notes/Tags defaults under whatever the caller
// passed explicitly on the command line.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Config{SampleScale: 1}, nil
	}
	return config.LoadFile(configPath)
}

func resolveSelection(cfg config.Config) orchestrator.Selection {
	ids := workloadIDs
	if len(ids) == 0 {
		ids = catalog.MandatoryIDs()
		if !skipGraphics {
			ids = append(ids, catalog.GraphicsIDs()...)
		}
	}
	ids = cfg.ApplySelection(ids)
	return orchestrator.Selection{WorkloadIDs: ids}
}

func buildOptions(progress orchestrator.SessionProgress) (orchestrator.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return orchestrator.Options{}, err
	}

	scale := sampleScale
	if scale <= 0 {
		scale = cfg.SampleScale
	}
	root := scratchRoot
	if root == "" {
		root = cfg.ScratchRoot
	}

	return orchestrator.Options{
		Selection:   resolveSelection(cfg),
		Progress:    progress,
		SystemInfo:  sysinfo.Default{Machine: machine},
		ScratchRoot: root,
		SampleScale: scale,
		Logger:      logger,
		Machine:     firstNonEmpty(machine, cfg.Machine),
		Notes:       firstNonEmpty(notes, cfg.Notes),
		Tags:        firstNonEmptySlice(tags, cfg.Tags),
	}, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	progress := &cliProgress{}
	progress.watchInterrupt()

	opts, err := buildOptions(progress)
	if err != nil {
		return err
	}

	run, err := orchestrator.Run(opts)
	if err != nil {
		return fmt.Errorf("run benchmark session: %w", err)
	}

	return writeRun(run)
}

func writeRun(run report.BenchmarkRun) error {
	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := export.WriteJSON(out, run); err != nil {
		return err
	}

	if csvPath != "" {
		csvFile, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("create csv output file: %w", err)
		}
		defer csvFile.Close()
		if err := export.WriteCSV(csvFile, run); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "overall score: %d / %d (%.1f%%, %s)\n",
		run.Scores.Overall, run.Scores.OverallMax, run.Scores.OverallPercent, run.Scores.OverallRating)
	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstNonEmptySlice(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
