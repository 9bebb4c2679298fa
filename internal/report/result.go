// Package report defines the result envelope (component C8): the typed
// results, category roll-ups, overall score, and system-info snapshot an
// orchestrator session produces. It depends only on internal/stats and
// internal/scoring, never on internal/workload, so the envelope stays a
// pure data model the orchestrator assembles from whatever a workload
// handed back.
package report

import (
	"time"

	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
)

// Category mirrors workload.Category as a plain string so this package
// has no import-time dependency on the workload package.
type Category string

const (
	ProjectOperations Category = "ProjectOperations"
	BuildPerformance  Category = "BuildPerformance"
	Responsiveness    Category = "Responsiveness"
	Graphics          Category = "Graphics"
)

// TestResult is one workload's contribution to the envelope: its stable
// identity, the primary metric it measured, the score C3 derived from
// that metric, and the full statistical reduction behind it.
type TestResult struct {
	ID          string             `json:"test_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    Category           `json:"category"`
	Value       float64            `json:"value"`
	Unit        stats.Unit         `json:"unit"`
	Score       int                `json:"score"`
	MaxScore    int                `json:"max_score"`
	Details     stats.TestDetails  `json:"details"`
	Secondary   map[string]float64 `json:"secondary,omitempty"`
}

// CategoryScore rolls a category's TestResults up into a sum, a maximum,
// a percentage, and a Rating.
type CategoryScore struct {
	Score    int            `json:"score"`
	MaxScore int            `json:"max_score"`
	Percent  float64        `json:"percent"`
	Rating   scoring.Rating `json:"rating"`
}

// NewCategoryScore computes a CategoryScore from completed test results.
// A category with max_score 0 (no completed workloads) reports 0%
// rather than dividing by zero, so it never depresses the overall score
// through spurious completion noise.
func NewCategoryScore(results []TestResult) CategoryScore {
	var score, max int
	for _, r := range results {
		score += r.Score
		max += r.MaxScore
	}
	pct := 0.0
	if max > 0 {
		pct = 100 * float64(score) / float64(max)
	}
	return CategoryScore{
		Score:    score,
		MaxScore: max,
		Percent:  pct,
		Rating:   scoring.RatingFromPercentage(pct),
	}
}

// CategoryResults bags TestResults by category. Graphics is omitted from
// the JSON when empty; an empty Graphics bag means no Graphics workload
// completed (for example, no usable display adapter).
type CategoryResults struct {
	ProjectOperations []TestResult `json:"project_operations"`
	BuildPerformance   []TestResult `json:"build_performance"`
	Responsiveness     []TestResult `json:"responsiveness"`
	Graphics           []TestResult `json:"graphics,omitempty"`
}

// ByCategory returns the bag for cat, or nil if the category is unknown.
func (c *CategoryResults) ByCategory(cat Category) []TestResult {
	switch cat {
	case ProjectOperations:
		return c.ProjectOperations
	case BuildPerformance:
		return c.BuildPerformance
	case Responsiveness:
		return c.Responsiveness
	case Graphics:
		return c.Graphics
	default:
		return nil
	}
}

// Append adds result to the bag matching its Category.
func (c *CategoryResults) Append(result TestResult) {
	switch result.Category {
	case ProjectOperations:
		c.ProjectOperations = append(c.ProjectOperations, result)
	case BuildPerformance:
		c.BuildPerformance = append(c.BuildPerformance, result)
	case Responsiveness:
		c.Responsiveness = append(c.Responsiveness, result)
	case Graphics:
		c.Graphics = append(c.Graphics, result)
	}
}

// HasGraphics reports whether any Graphics workload completed in this
// session — the envelope's overall max_score depends on this.
func (c *CategoryResults) HasGraphics() bool {
	return len(c.Graphics) > 0
}

// Scores is the overall roll-up: the sum/max over the four category
// aggregates (Graphics contributing 0/0 when absent), the overall
// rating, and each category's own CategoryScore.
type Scores struct {
	Overall            int            `json:"overall"`
	OverallMax         int            `json:"overall_max"`
	OverallPercent     float64        `json:"overall_percent"`
	OverallRating      scoring.Rating `json:"overall_rating"`
	ProjectOperations  CategoryScore  `json:"project_operations"`
	BuildPerformance   CategoryScore  `json:"build_performance"`
	Responsiveness     CategoryScore  `json:"responsiveness"`
	Graphics           *CategoryScore `json:"graphics,omitempty"`
}

// ComputeScores derives Scores from a populated CategoryResults. Overall
// and OverallMax are sums over the completed workloads of every category,
// Graphics included only when at least one Graphics workload completed.
// When every workload completes, the declared maxima add up to 10,000
// (7,500 without Graphics); a partial session's OverallMax is smaller.
func ComputeScores(results CategoryResults) Scores {
	proj := NewCategoryScore(results.ProjectOperations)
	build := NewCategoryScore(results.BuildPerformance)
	resp := NewCategoryScore(results.Responsiveness)

	overall := proj.Score + build.Score + resp.Score
	overallMax := proj.MaxScore + build.MaxScore + resp.MaxScore

	s := Scores{
		ProjectOperations: proj,
		BuildPerformance:  build,
		Responsiveness:    resp,
	}

	if results.HasGraphics() {
		gfx := NewCategoryScore(results.Graphics)
		s.Graphics = &gfx
		overall += gfx.Score
		overallMax += gfx.MaxScore
	}

	s.Overall = overall
	s.OverallMax = overallMax
	if overallMax > 0 {
		s.OverallPercent = 100 * float64(overall) / float64(overallMax)
	}
	s.OverallRating = scoring.RatingFromPercentage(s.OverallPercent)
	return s
}

// StorageKind enumerates the broad classes of storage device SystemInfo
// can report.
type StorageKind string

const (
	StorageNVMe    StorageKind = "NVMe"
	StorageSSD     StorageKind = "SSD"
	StorageHDD     StorageKind = "HDD"
	StorageUnknown StorageKind = "Unknown"
)

// CPUInfo is the CPU facet of a SystemInfo snapshot.
type CPUInfo struct {
	Name          string  `json:"name"`
	Vendor        string  `json:"vendor"`
	PhysicalCores int     `json:"physical_cores"`
	LogicalCores  int     `json:"logical_cores"`
	BaseFreqMHz   float64 `json:"base_freq_mhz"`
	MaxFreqMHz    float64 `json:"max_freq_mhz"`
	L3Bytes       int64   `json:"l3_bytes"`
}

// MemoryInfo is the memory facet of a SystemInfo snapshot.
type MemoryInfo struct {
	Bytes    int64  `json:"bytes"`
	SpeedMTs int    `json:"speed_mts"`
	Type     string `json:"type"`
}

// StorageDevice describes one storage device found during discovery.
type StorageDevice struct {
	Name          string      `json:"name"`
	Kind          StorageKind `json:"kind"`
	CapacityBytes int64       `json:"capacity_bytes"`
}

// GPUInfo is the optional GPU facet of a SystemInfo snapshot.
type GPUInfo struct {
	Name        string `json:"name"`
	VendorID    string `json:"vendor_id"`
	MemoryBytes int64  `json:"memory_bytes"`
}

// OSInfo is the operating system facet of a SystemInfo snapshot.
type OSInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Build   string `json:"build"`
}

// SystemInfo is a snapshot of the host hardware and OS, produced once per
// report by an external collaborator (component boundary, §6) and
// treated by the core as an opaque value object.
type SystemInfo struct {
	CPU     CPUInfo         `json:"cpu"`
	Memory  MemoryInfo      `json:"memory"`
	Storage []StorageDevice `json:"storage"`
	GPU     *GPUInfo        `json:"gpu,omitempty"`
	OS      OSInfo          `json:"os"`
}

// BenchmarkRun is the full, immutable envelope an orchestrator session
// produces.
type BenchmarkRun struct {
	ID         string            `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	Machine    string            `json:"machine"`
	Notes      string            `json:"notes,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	SystemInfo SystemInfo        `json:"system_info"`
	Results    CategoryResults   `json:"results"`
	Scores     Scores            `json:"scores"`
}
