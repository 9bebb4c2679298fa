package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/export"
	"github.com/ravenscale/workbench/internal/report"
	"github.com/ravenscale/workbench/internal/stats"
)

func sampleRun() report.BenchmarkRun {
	var results report.CategoryResults
	results.Append(report.TestResult{
		ID:       "file_enum",
		Name:     "File Enumeration",
		Category: report.ProjectOperations,
		Value:    123456.7,
		Unit:     stats.UnitFilesPerSec,
		Score:    400,
		MaxScore: 500,
		Details:  stats.TestDetails{Median: 123456.7, Mean: 120000, Min: 100000, Max: 140000},
	})
	results.Append(report.TestResult{
		ID:       "random_read",
		Name:     "Random Read Latency",
		Category: report.ProjectOperations,
		Value:    0.95,
		Unit:     stats.UnitMilliseconds,
		Score:    550,
		MaxScore: 600,
		Details: stats.TestDetails{
			Median:      0.8,
			Mean:        0.85,
			Min:         0.4,
			Max:         2.1,
			Percentiles: &stats.Percentiles{P95: 0.9, P99: 0.95},
		},
	})
	return report.BenchmarkRun{
		ID:      "01HXYZ",
		Machine: "test-rig",
		Results: results,
		Scores:  report.ComputeScores(results),
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	run := sampleRun()
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, run))

	var decoded report.BenchmarkRun
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, run.ID, decoded.ID)
	require.Equal(t, run.Machine, decoded.Machine)
	require.Len(t, decoded.Results.ProjectOperations, 2)
	require.Equal(t, run.Scores.Overall, decoded.Scores.Overall)
}

func TestWriteCSVHasHeaderAndOneRowPerResult(t *testing.T) {
	run := sampleRun()
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, run))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 results
	require.Equal(t, []string{
		"id", "name", "category", "value", "unit", "score", "max_score",
		"median", "mean", "stddev", "min", "max", "p95", "p99",
	}, records[0])
	require.Equal(t, "file_enum", records[1][0])
	require.Equal(t, "random_read", records[2][0])
}

func TestWriteCSVHandlesMissingPercentilesWithoutPanicking(t *testing.T) {
	var results report.CategoryResults
	results.Append(report.TestResult{
		ID:       "metadata_ops",
		Category: report.ProjectOperations,
		Details:  stats.TestDetails{Median: 1, Mean: 1, Min: 1, Max: 1},
	})
	run := report.BenchmarkRun{Results: results}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, run))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "0.0000", records[1][len(records[1])-1]) // p99 defaults to zero
}
