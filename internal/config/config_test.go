package config

import (
	"os"
	"path/filepath"
	"testing"
)

// #region load-tests
func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntrospectAddr != "localhost:50051" {
		t.Errorf("expected default addr, got %q", cfg.IntrospectAddr)
	}
	if cfg.Probe.ThresholdPercentile != 90 {
		t.Errorf("expected default threshold percentile 90, got %f", cfg.Probe.ThresholdPercentile)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	body := `
introspect_addr: "inference:9000"
probe:
  threshold_percentile: 95
  ensemble_layers: [2, 6]
pipeline:
  pair_count: 50
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntrospectAddr != "inference:9000" {
		t.Errorf("expected overridden addr, got %q", cfg.IntrospectAddr)
	}
	if cfg.Probe.ThresholdPercentile != 95 {
		t.Errorf("expected threshold percentile 95, got %f", cfg.Probe.ThresholdPercentile)
	}
	if len(cfg.Probe.EnsembleLayers) != 2 || cfg.Probe.EnsembleLayers[0] != 2 {
		t.Errorf("expected ensemble layers [2 6], got %v", cfg.Probe.EnsembleLayers)
	}
	// Untouched keys keep their defaults.
	if cfg.DBPath != "probes.db" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Pipeline.PairCount != 50 {
		t.Errorf("expected pair count 50, got %d", cfg.Pipeline.PairCount)
	}
	if cfg.Pipeline.ValidationFraction != 0.2 {
		t.Errorf("expected default validation fraction, got %f", cfg.Pipeline.ValidationFraction)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// #endregion load-tests
