package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/report"
)

func result(id string, cat report.Category, score, max int) report.TestResult {
	return report.TestResult{ID: id, Category: cat, Score: score, MaxScore: max}
}

func TestNewCategoryScoreEmptyIsZeroPercent(t *testing.T) {
	cs := report.NewCategoryScore(nil)
	require.Equal(t, 0, cs.Score)
	require.Equal(t, 0, cs.MaxScore)
	require.Equal(t, 0.0, cs.Percent)
}

func TestNewCategoryScoreSumsResults(t *testing.T) {
	cs := report.NewCategoryScore([]report.TestResult{
		result("a", report.ProjectOperations, 300, 500),
		result("b", report.ProjectOperations, 400, 600),
	})
	require.Equal(t, 700, cs.Score)
	require.Equal(t, 1100, cs.MaxScore)
	require.InDelta(t, 63.636, cs.Percent, 0.01)
}

func TestCategoryResultsAppendRoutesByCategory(t *testing.T) {
	var results report.CategoryResults
	results.Append(result("file_enum", report.ProjectOperations, 1, 1))
	results.Append(result("single_thread", report.BuildPerformance, 1, 1))
	results.Append(result("storage_latency", report.Responsiveness, 1, 1))
	results.Append(result("render_2d", report.Graphics, 1, 1))

	require.Len(t, results.ProjectOperations, 1)
	require.Len(t, results.BuildPerformance, 1)
	require.Len(t, results.Responsiveness, 1)
	require.Len(t, results.Graphics, 1)
	require.True(t, results.HasGraphics())
	require.Equal(t, results.ProjectOperations, results.ByCategory(report.ProjectOperations))
}

func TestComputeScoresWithoutGraphicsSumsCompletedMaxes(t *testing.T) {
	var results report.CategoryResults
	results.Append(result("file_enum", report.ProjectOperations, 500, 500))
	results.Append(result("single_thread", report.BuildPerformance, 600, 600))
	results.Append(result("storage_latency", report.Responsiveness, 700, 700))

	scores := report.ComputeScores(results)
	require.Nil(t, scores.Graphics)
	require.Equal(t, 1800, scores.Overall)
	require.Equal(t, 1800, scores.OverallMax)
	require.Equal(t, 100.0, scores.OverallPercent)
}

func TestComputeScoresWithGraphicsIncludesItInOverall(t *testing.T) {
	var results report.CategoryResults
	results.Append(result("file_enum", report.ProjectOperations, 500, 500))
	results.Append(result("render_2d", report.Graphics, 250, 500))

	scores := report.ComputeScores(results)
	require.NotNil(t, scores.Graphics)
	require.Equal(t, 750, scores.Overall)
	require.Equal(t, 1000, scores.OverallMax)
}

func TestComputeScoresZeroMaxReportsZeroPercent(t *testing.T) {
	scores := report.ComputeScores(report.CategoryResults{})
	require.Equal(t, 0, scores.OverallMax)
	require.Equal(t, 0.0, scores.OverallPercent)
}

func TestAnalyzeFlagsHDDOnlySystem(t *testing.T) {
	run := report.BenchmarkRun{
		SystemInfo: report.SystemInfo{
			Storage: []report.StorageDevice{{Name: "disk0", Kind: report.StorageHDD}},
			Memory:  report.MemoryInfo{Bytes: 16 << 30},
		},
	}
	analysis := report.Analyze(run)
	var found bool
	for _, rec := range analysis.Recommendations {
		if rec.ID == "upgrade_to_ssd" {
			found = true
			require.Equal(t, report.RecommendationHardware, rec.Category)
			require.Equal(t, report.PriorityHigh, rec.Priority)
		}
	}
	require.True(t, found, "expected upgrade_to_ssd recommendation")
}

func TestAnalyzeFlagsLowMemory(t *testing.T) {
	run := report.BenchmarkRun{
		SystemInfo: report.SystemInfo{Memory: report.MemoryInfo{Bytes: 4 << 30}},
	}
	analysis := report.Analyze(run)
	var rec *report.Recommendation
	for i := range analysis.Recommendations {
		if analysis.Recommendations[i].ID == "add_ram" {
			rec = &analysis.Recommendations[i]
		}
	}
	require.NotNil(t, rec)
	require.Equal(t, report.PriorityHigh, rec.Priority)
}

func TestAnalyzeRecommendationsSortedByPriority(t *testing.T) {
	run := report.BenchmarkRun{
		SystemInfo: report.SystemInfo{
			Storage: []report.StorageDevice{{Kind: report.StorageHDD}},
			Memory:  report.MemoryInfo{Bytes: 4 << 30},
		},
	}
	analysis := report.Analyze(run)
	require.NotEmpty(t, analysis.Recommendations)
	for i := 1; i < len(analysis.Recommendations); i++ {
		require.LessOrEqual(t, analysis.Recommendations[i-1].Priority, analysis.Recommendations[i].Priority)
	}
}

func TestDetectDeviceTypeFromMachineName(t *testing.T) {
	run := report.BenchmarkRun{Machine: "vdi-pool-03"}
	analysis := report.Analyze(run)
	require.Equal(t, report.DeviceVDI, analysis.DeviceType)
}
