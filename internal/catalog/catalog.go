// Package catalog assembles the fixed, declared-order registry of every
// workload the core ships: the 14 mandatory workloads across
// ProjectOperations, BuildPerformance, and Responsiveness, plus the 5
// optional Graphics workloads. The order here is the orchestrator's
// iteration order (spec §4.7.2) — a package-level slice literal, never a
// map, so it is stable across runs.
package catalog

import (
	"github.com/ravenscale/workbench/internal/workload"
	"github.com/ravenscale/workbench/internal/workload/build"
	"github.com/ravenscale/workbench/internal/workload/graphics"
	"github.com/ravenscale/workbench/internal/workload/project"
	"github.com/ravenscale/workbench/internal/workload/responsiveness"
)

// All returns every workload the core ships, in declared table order:
// ProjectOperations, then BuildPerformance, then Responsiveness, then the
// optional Graphics workloads last.
func All() []workload.Workload {
	return []workload.Workload{
		project.NewFileEnum(),
		project.NewRandomRead(),
		project.NewMetadataOps(),
		project.NewDirTraversal(),
		project.NewLargeSeqRead(),

		build.NewSingleThread(),
		build.NewMultiThread(),
		build.NewMixedRCW(),
		build.NewSustainedWrite(),

		responsiveness.NewStorageLatency(),
		responsiveness.NewMemoryLatency(),
		responsiveness.NewProcessSpawn(),
		responsiveness.NewThreadWake(),
		responsiveness.NewMemoryBandwidth(),

		graphics.NewAdapterClassification(),
		graphics.NewRender2D(),
		graphics.NewRender3D(),
		graphics.NewFrameTimeConsistency(),
		graphics.NewTextureUpload(),
	}
}

// Lookup returns the catalog entries whose ID appears in ids, preserving
// the catalog's declared order rather than the order of ids — this is
// what makes orchestrator iteration order independent of how a caller
// built their selection.
func Lookup(ids []string) []workload.Workload {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []workload.Workload
	for _, w := range All() {
		if wanted[w.ID()] {
			out = append(out, w)
		}
	}
	return out
}

// IDs returns the stable IDs of every catalog workload, in declared
// order.
func IDs() []string {
	all := All()
	ids := make([]string, len(all))
	for i, w := range all {
		ids[i] = w.ID()
	}
	return ids
}

// MandatoryIDs returns the IDs of the 14 workloads that are not gated on
// an optional capability.
func MandatoryIDs() []string {
	var ids []string
	for _, w := range All() {
		if w.Category() != workload.Graphics {
			ids = append(ids, w.ID())
		}
	}
	return ids
}

// GraphicsIDs returns the IDs of the 5 optional Graphics workloads.
func GraphicsIDs() []string {
	var ids []string
	for _, w := range All() {
		if w.Category() == workload.Graphics {
			ids = append(ids, w.ID())
		}
	}
	return ids
}
