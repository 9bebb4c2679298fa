package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ravenscale/workbench/internal/report"
)

// WriteCSV writes one row per TestResult across every category of run,
// generalized from the teacher's key-type-keyed stats dump to a flat
// per-workload summary suitable for spreadsheet plotting.
func WriteCSV(w io.Writer, run report.BenchmarkRun) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"id", "name", "category", "value", "unit", "score", "max_score",
		"median", "mean", "stddev", "min", "max", "p95", "p99",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}

	for _, results := range [][]report.TestResult{
		run.Results.ProjectOperations,
		run.Results.BuildPerformance,
		run.Results.Responsiveness,
		run.Results.Graphics,
	} {
		for _, r := range results {
			var p95, p99 float64
			if r.Details.Percentiles != nil {
				p95, p99 = r.Details.Percentiles.P95, r.Details.Percentiles.P99
			}
			row := []string{
				r.ID,
				r.Name,
				string(r.Category),
				fmt.Sprintf("%.4f", r.Value),
				string(r.Unit),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.MaxScore),
				fmt.Sprintf("%.4f", r.Details.Median),
				fmt.Sprintf("%.4f", r.Details.Mean),
				fmt.Sprintf("%.4f", r.Details.StdDev),
				fmt.Sprintf("%.4f", r.Details.Min),
				fmt.Sprintf("%.4f", r.Details.Max),
				fmt.Sprintf("%.4f", p95),
				fmt.Sprintf("%.4f", p99),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("export: write csv row: %w", err)
			}
		}
	}

	return nil
}
