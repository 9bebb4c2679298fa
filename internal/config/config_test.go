package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/config"
)

func TestLoadParsesYAML(t *testing.T) {
	yaml := `
scratch_root: /tmp/bench
sample_scale: 0.25
disable_workloads:
  - render_3d
  - texture_upload
machine: bench-rig-1
notes: nightly smoke run
tags:
  - ci
  - smoke
`
	cfg, err := config.Load(strings.NewReader(yaml))
	require.NoError(t, err)
	require.Equal(t, "/tmp/bench", cfg.ScratchRoot)
	require.Equal(t, 0.25, cfg.SampleScale)
	require.Equal(t, []string{"render_3d", "texture_upload"}, cfg.DisableWorkloads)
	require.Equal(t, "bench-rig-1", cfg.Machine)
	require.Equal(t, "nightly smoke run", cfg.Notes)
	require.Equal(t, []string{"ci", "smoke"}, cfg.Tags)
}

func TestLoadDefaultsSampleScaleWhenUnset(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 1.0, cfg.SampleScale)
}

func TestLoadClampsSampleScaleAboveOne(t *testing.T) {
	cfg, err := config.Load(strings.NewReader("sample_scale: 3.5\n"))
	require.NoError(t, err)
	require.Equal(t, 1.0, cfg.SampleScale)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := config.Load(strings.NewReader("not: [valid"))
	require.Error(t, err)
}

func TestLoadFileMissingReturnsError(t *testing.T) {
	_, err := config.LoadFile("/nonexistent/path/workbench.yaml")
	require.Error(t, err)
}

func TestApplySelectionFiltersBlocklist(t *testing.T) {
	cfg := config.Config{DisableWorkloads: []string{"render_3d"}}
	got := cfg.ApplySelection([]string{"file_enum", "render_3d", "single_thread"})
	require.Equal(t, []string{"file_enum", "single_thread"}, got)
}

func TestApplySelectionNoopWhenNoBlocklist(t *testing.T) {
	cfg := config.Config{}
	ids := []string{"file_enum", "single_thread"}
	got := cfg.ApplySelection(ids)
	require.Equal(t, ids, got)
}
