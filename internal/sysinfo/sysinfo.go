// Package sysinfo provides the external SystemInfo collaborator named in
// spec §6: a snapshot of the host's CPU, memory, storage, optional GPU,
// and OS, queried once per orchestrator session and embedded verbatim
// into the resulting BenchmarkRun. The core treats Provider as an opaque
// boundary; this package's Default implementation is a best-effort,
// cross-platform probe built on the one detection library present in
// the retrieval pack (github.com/klauspost/cpuid/v2) plus Go's runtime
// package for what cpuid doesn't cover — it is not a substitute for a
// full hardware inventory tool.
package sysinfo

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"

	"github.com/ravenscale/workbench/internal/report"
)

// Provider is the external SystemInfo collaborator. A host embedding
// this core may supply a richer implementation (WMI on Windows, sysfs on
// Linux, IOKit on macOS); Default is the best-effort fallback.
type Provider interface {
	Snapshot() (report.SystemInfo, error)
}

// Default is a best-effort Provider built only from what Go's runtime and
// klauspost/cpuid/v2 can report without platform-specific privileged
// probing. Storage devices and GPU are left empty since neither library
// in the retrieval pack exposes them; a host wanting that detail should
// supply its own Provider.
type Default struct {
	// Machine overrides the reported machine name. Empty means the
	// Default provider leaves the OS snapshot's identity fields zero and
	// lets the caller set BenchmarkRun.Machine separately.
	Machine string
}

func (d Default) Snapshot() (report.SystemInfo, error) {
	return report.SystemInfo{
		CPU:    d.cpuInfo(),
		Memory: report.MemoryInfo{},
		OS:     d.osInfo(),
	}, nil
}

func (d Default) cpuInfo() report.CPUInfo {
	c := cpuid.CPU
	return report.CPUInfo{
		Name:          c.BrandName,
		Vendor:        c.VendorID.String(),
		PhysicalCores: c.PhysicalCores,
		LogicalCores:  c.LogicalCores,
		BaseFreqMHz:   float64(c.Hz) / 1e6,
		L3Bytes:       int64(c.Cache.L3),
	}
}

func (d Default) osInfo() report.OSInfo {
	return report.OSInfo{
		Name: runtime.GOOS,
	}
}
