package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	scratchRoot string
	sampleScale float64
	outputPath  string
	csvPath     string
	machine     string
	notes       string
	tags        []string
	verbose     bool

	workloadIDs  []string
	skipGraphics bool

	metricsAddr string

	logger = slog.Default()

	rootCmd = &cobra.Command{
		Use:   "workbench",
		Short: "Runs the workstation benchmarking engine and reports a score envelope",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Runs the selected workloads and writes a BenchmarkRun envelope",
		RunE:  runRun,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists every workload the catalog ships, in declared run order",
		RunE:  runList,
	}

	serveMetricsCmd = &cobra.Command{
		Use:   "serve-metrics",
		Short: "Runs the selected workloads while exposing Prometheus metrics over HTTP",
		RunE:  runServeMetrics,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (internal/config.Config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log workload lifecycle at debug level")

	for _, cmd := range []*cobra.Command{runCmd, serveMetricsCmd} {
		cmd.Flags().StringVar(&scratchRoot, "scratch-root", "", "override the platform temp root for scratch areas")
		cmd.Flags().Float64Var(&sampleScale, "sample-scale", 0, "scale every workload's iteration counts by this factor in (0,1] (default: the config's sample_scale, else 1)")
		cmd.Flags().StringVar(&outputPath, "output", "", "write the JSON envelope to this path instead of stdout")
		cmd.Flags().StringVar(&csvPath, "csv", "", "also write a flat CSV summary to this path")
		cmd.Flags().StringVar(&machine, "machine", "", "machine name recorded in the envelope")
		cmd.Flags().StringVar(&notes, "notes", "", "free-text notes recorded in the envelope")
		cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags recorded in the envelope")
		cmd.Flags().StringSliceVar(&workloadIDs, "workloads", nil, "restrict the run to these workload IDs (default: every catalog workload, Graphics included unless --skip-graphics)")
		cmd.Flags().BoolVar(&skipGraphics, "skip-graphics", false, "exclude the optional Graphics category even if a display adapter is detected")
	}

	serveMetricsCmd.Flags().StringVar(&metricsAddr, "addr", ":9090", "address to serve /metrics on")

	rootCmd.AddCommand(runCmd, listCmd, serveMetricsCmd)
}
