package report

import (
	"fmt"
	"sort"
	"strings"
)

// RecommendationCategory classifies a Recommendation as a configuration
// change or a hardware upgrade.
type RecommendationCategory string

const (
	RecommendationSoftware RecommendationCategory = "Software"
	RecommendationHardware RecommendationCategory = "Hardware"
)

// RecommendationPriority orders recommendations for display, High first.
type RecommendationPriority int

const (
	PriorityHigh RecommendationPriority = iota
	PriorityMedium
	PriorityLow
)

func (p RecommendationPriority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// DeviceType is a coarse classification of the benchmarked machine,
// inferred from its hostname and CPU name.
type DeviceType string

const (
	DeviceDesktop DeviceType = "Desktop"
	DeviceLaptop  DeviceType = "Laptop"
	DeviceVDI     DeviceType = "VDI"
	DeviceUnknown DeviceType = "Unknown"
)

// Recommendation is a single optimization or upgrade suggestion produced
// by analyzing a completed BenchmarkRun.
type Recommendation struct {
	ID                  string
	Title               string
	Description         string
	Category            RecommendationCategory
	Priority            RecommendationPriority
	ExpectedImprovement string
	HowToApply          []string
	AffectedTests       []string
}

// RecommendationsReport is the complete output of analyzing a
// BenchmarkRun: the inferred device type and a priority-sorted list of
// recommendations.
type RecommendationsReport struct {
	DeviceType      DeviceType
	Recommendations []Recommendation
}

// Analyze inspects a completed BenchmarkRun and produces optimization and
// upgrade recommendations. It never looks at community comparison data
// (out of scope, §6); every recommendation is derived solely from this
// run's own results and SystemInfo.
func Analyze(run BenchmarkRun) RecommendationsReport {
	var recs []Recommendation

	deviceType := detectDeviceType(run)

	recs = append(recs, analyzeStorage(run)...)
	recs = append(recs, analyzeCPU(run)...)
	recs = append(recs, analyzeMemory(run)...)
	recs = append(recs, generalRecommendations()...)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})

	return RecommendationsReport{DeviceType: deviceType, Recommendations: recs}
}

func detectDeviceType(run BenchmarkRun) DeviceType {
	machine := strings.ToLower(run.Machine)
	if strings.Contains(machine, "vdi") || strings.Contains(machine, "virtual") ||
		strings.Contains(machine, "citrix") || strings.Contains(machine, "vmware") {
		return DeviceVDI
	}

	cpuName := strings.ToLower(run.SystemInfo.CPU.Name)
	if strings.Contains(cpuName, "mobile") || strings.Contains(cpuName, "laptop") ||
		strings.HasSuffix(cpuName, "u") || strings.HasSuffix(cpuName, "p") {
		return DeviceLaptop
	}
	if run.SystemInfo.CPU.PhysicalCores >= 6 &&
		(strings.Contains(cpuName, "ryzen 9") || strings.Contains(cpuName, "ryzen 7") ||
			strings.Contains(cpuName, "-k") || strings.Contains(cpuName, "-x")) {
		return DeviceDesktop
	}
	return DeviceUnknown
}

func findResult(results []TestResult, id string) *TestResult {
	for i := range results {
		if results[i].ID == id {
			return &results[i]
		}
	}
	return nil
}

func analyzeStorage(run BenchmarkRun) []Recommendation {
	var recs []Recommendation

	hasSSD := false
	hasOnlyHDD := false
	for _, dev := range run.SystemInfo.Storage {
		if dev.Kind == StorageSSD || dev.Kind == StorageNVMe {
			hasSSD = true
		}
	}
	for _, dev := range run.SystemInfo.Storage {
		if dev.Kind == StorageHDD {
			hasOnlyHDD = true
		}
	}
	hasOnlyHDD = hasOnlyHDD && !hasSSD

	if hasOnlyHDD {
		recs = append(recs, Recommendation{
			ID:          "upgrade_to_ssd",
			Title:       "Upgrade to SSD",
			Description: "This system is using a traditional hard drive. SSDs provide dramatically faster random access times and are the single most impactful storage upgrade for developer workstations.",
			Category:    RecommendationHardware,
			Priority:    PriorityHigh,
			ExpectedImprovement: "10-50x faster file operations, 2-5x faster builds",
			HowToApply: []string{
				"Consider a SATA SSD for budget builds or NVMe for best performance",
				"500GB-1TB is recommended for development work",
				"Migrate the existing install or start fresh on the new drive",
			},
			AffectedTests: []string{"random_read", "file_enum", "dir_traversal", "large_seq_read", "storage_latency"},
		})
	}

	randomRead := findResult(run.Results.ProjectOperations, "random_read")
	if randomRead != nil && randomRead.Value > 5.0 && hasSSD {
		recs = append(recs, Recommendation{
			ID:          "optimize_storage",
			Title:       "Investigate Storage Latency",
			Description: fmt.Sprintf("Random read P99 latency is %.1f ms, higher than expected for an SSD. This could be due to drive wear, firmware, or contention from background processes.", randomRead.Value),
			Category:    RecommendationSoftware,
			Priority:    PriorityMedium,
			ExpectedImprovement: "20-40% faster random file access",
			HowToApply: []string{
				"Check drive health and SMART attributes with the manufacturer's tooling",
				"Update SSD firmware",
				"Close background processes that may be competing for I/O",
			},
			AffectedTests: []string{"random_read", "storage_latency"},
		})
	}

	fileEnum := findResult(run.Results.ProjectOperations, "file_enum")
	if fileEnum != nil && fileEnum.Value < 50_000 {
		recs = append(recs, Recommendation{
			ID:          "optimize_file_system",
			Title:       "Investigate File System Overhead",
			Description: "File enumeration throughput is below what modern storage typically sustains. Background indexing or antivirus scanning of development folders is a common cause.",
			Category:    RecommendationSoftware,
			Priority:    PriorityMedium,
			ExpectedImprovement: "10-30% faster directory listings",
			HowToApply: []string{
				"Exclude source/build directories from on-access antivirus scanning",
				"Disable filesystem indexing on development volumes",
			},
			AffectedTests: []string{"file_enum", "dir_traversal", "metadata_ops"},
		})
	}

	return recs
}

func analyzeCPU(run BenchmarkRun) []Recommendation {
	var recs []Recommendation

	single := findResult(run.Results.BuildPerformance, "single_thread")
	multi := findResult(run.Results.BuildPerformance, "multi_thread")

	if single != nil && multi != nil && run.SystemInfo.CPU.LogicalCores > 0 {
		expected := single.Value * float64(run.SystemInfo.CPU.LogicalCores) * 0.7
		if multi.Value < expected*0.5 {
			recs = append(recs, Recommendation{
				ID:          "check_thermal",
				Title:       "Check CPU Cooling",
				Description: "Multi-threaded throughput is well below what single-threaded results predict. This often indicates thermal throttling under sustained load.",
				Category:    RecommendationHardware,
				Priority:    PriorityHigh,
				ExpectedImprovement: "20-50% faster multi-threaded performance",
				HowToApply: []string{
					"Monitor CPU temperature under sustained load",
					"Clean dust from the cooler and case fans",
					"Reapply thermal paste if temperatures exceed 90C under load",
				},
				AffectedTests: []string{"single_thread", "multi_thread", "mixed_rcw"},
			})
		}
	}

	return recs
}

func analyzeMemory(run BenchmarkRun) []Recommendation {
	var recs []Recommendation

	totalGB := float64(run.SystemInfo.Memory.Bytes) / (1 << 30)
	if totalGB > 0 && totalGB < 16.0 {
		priority := PriorityMedium
		if totalGB < 8.0 {
			priority = PriorityHigh
		}
		recs = append(recs, Recommendation{
			ID:          "add_ram",
			Title:       "Add More Memory",
			Description: fmt.Sprintf("This system has %.0f GB of RAM. Modern development workflows (IDEs, containers, browsers, build tools) benefit from 16 GB or more.", totalGB),
			Category:    RecommendationHardware,
			Priority:    priority,
			ExpectedImprovement: "Reduced swapping, faster context switching under load",
			HowToApply: []string{
				"Check current memory configuration and available slots",
				"Match existing module speed and timings for best compatibility",
				"16 GB minimum recommended, 32 GB for heavy container/VM usage",
			},
			AffectedTests: []string{"memory_bandwidth", "process_spawn"},
		})
	}

	bandwidth := findResult(run.Results.Responsiveness, "memory_bandwidth")
	if bandwidth != nil && bandwidth.Value < 20.0 {
		recs = append(recs, Recommendation{
			ID:          "optimize_memory_config",
			Title:       "Review Memory Channel Configuration",
			Description: "Aggregate memory bandwidth is below what modern systems typically sustain. A single-channel configuration or a conservative memory clock is a common cause.",
			Category:    RecommendationHardware,
			Priority:    PriorityMedium,
			ExpectedImprovement: "20-50% faster memory-bound operations",
			HowToApply: []string{
				"Verify memory modules are installed for dual- or quad-channel operation",
				"Enable the memory's rated XMP/EXPO profile in firmware",
			},
			AffectedTests: []string{"memory_bandwidth", "memory_latency"},
		})
	}

	return recs
}

func generalRecommendations() []Recommendation {
	return []Recommendation{
		{
			ID:          "power_management",
			Title:       "Use a High-Performance Power Profile",
			Description: "OS power management can limit CPU frequency under light load, adding latency to bursty interactive and build workloads.",
			Category:    RecommendationSoftware,
			Priority:    PriorityLow,
			ExpectedImprovement: "5-15% faster CPU-intensive tasks",
			HowToApply: []string{
				"Select the high-performance (or equivalent) power profile while benchmarking or building",
				"On battery-powered devices, balance this against battery life when not actively working",
			},
			AffectedTests: []string{"single_thread", "multi_thread"},
		},
	}
}
