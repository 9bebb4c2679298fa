// Package config lets a host tune workload sample counts and the scratch
// root without recompiling, via a small YAML file loaded with
// gopkg.in/yaml.v3 — the pack's own config format (mslinn-git-lfs-test,
// jinterlante1206-AleutianLocal). It has no bearing on scoring bands or
// invariants; it only shrinks or enlarges the sample series a workload
// gathers before scoring.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-loaded tuning surface.
type Config struct {
	// ScratchRoot overrides the platform temp root used by the scratch
	// area component. Empty means "use the platform default."
	ScratchRoot string `yaml:"scratch_root"`
	// SampleScale is a float in (0, 1] that scales every workload's
	// declared repetition/iteration counts down together, for fast CI
	// smoke runs. Zero or unset means the full contract (1.0).
	SampleScale float64 `yaml:"sample_scale"`
	// DisableWorkloads is an ID blocklist, layered under the caller's
	// Selection: a workload ID present here is dropped from the run
	// regardless of what the Selection asked for.
	DisableWorkloads []string `yaml:"disable_workloads"`
	// Machine optionally overrides the reported machine name.
	Machine string `yaml:"machine"`
	// Notes is carried verbatim into the resulting BenchmarkRun.
	Notes string `yaml:"notes"`
	// Tags is carried verbatim into the resulting BenchmarkRun.
	Tags []string `yaml:"tags"`
}

// Load reads and parses a Config from r.
func Load(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadFile reads and parses a Config from the file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func (c Config) withDefaults() Config {
	if c.SampleScale <= 0 {
		c.SampleScale = 1
	}
	if c.SampleScale > 1 {
		c.SampleScale = 1
	}
	return c
}

// ApplySelection filters ids, dropping any ID present in
// Config.DisableWorkloads. The declared order of ids is preserved; the
// orchestrator's catalog lookup re-orders by its own fixed table anyway.
func (c Config) ApplySelection(ids []string) []string {
	if len(c.DisableWorkloads) == 0 {
		return ids
	}
	blocked := make(map[string]bool, len(c.DisableWorkloads))
	for _, id := range c.DisableWorkloads {
		blocked[id] = true
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !blocked[id] {
			out = append(out, id)
		}
	}
	return out
}
