package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ravenscale/workbench/internal/catalog"
	"github.com/ravenscale/workbench/internal/metrics"
	"github.com/ravenscale/workbench/internal/orchestrator"
)

// runServeMetrics runs one benchmark session while exposing
// workbench_workload_duration_seconds and workbench_session_score over
// promhttp.Handler() for the duration of the run, per the metrics sink
// design: an optional observability surface, not a core requirement.
func runServeMetrics(cmd *cobra.Command, args []string) error {
	reg := prometheus.NewRegistry()

	categories := make(map[string]string, len(catalog.IDs()))
	for _, w := range catalog.All() {
		categories[w.ID()] = string(w.Category())
	}

	progress := &cliProgress{}
	progress.watchInterrupt()
	recorder := metrics.NewRecorder(reg, progress, categories)

	server := &http.Server{Addr: metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()
	fmt.Printf("serving metrics on %s/metrics\n", metricsAddr)

	opts, err := buildOptions(recorder)
	if err != nil {
		return err
	}

	run, err := orchestrator.Run(opts)
	if err != nil {
		server.Close()
		return err
	}
	recorder.ObserveScore(run.Scores.Overall)

	if err := writeRun(run); err != nil {
		server.Close()
		return err
	}
	return server.Close()
}
