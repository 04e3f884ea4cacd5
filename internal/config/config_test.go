package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "soul" {
		t.Errorf("expected scenario soul, got %s", cfg.Scenario)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Cutoff <= 0 || cfg.Cutoff > 1 {
		t.Errorf("cutoff should sit in (0,1], got %f", cfg.Cutoff)
	}

	circ := cfg.CircuitParams()
	if circ.Steps() < 2 {
		t.Error("default grid must carry at least two samples")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("ego", "burnout")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Circuit.VEgo != 3.0 {
		t.Errorf("expected v_ego 3.0, got %f", cfg.Circuit.VEgo)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("ego", "nonexistent"); cfg != nil {
		t.Error("expected nil for unknown preset")
	}
	if cfg := GetPreset("nonexistent", "burnout"); cfg != nil {
		t.Error("expected nil for unknown scenario")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("soul")) == 0 {
		t.Error("expected presets for soul")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for unknown scenario")
	}
}

func TestNormalizeFillsGaps(t *testing.T) {
	cfg := GetPreset("soul", "patient")
	if cfg == nil {
		t.Fatal("preset missing")
	}

	c := *cfg // presets are shared, normalize a copy
	c.Normalize()

	if c.Circuit.Inductance != circuitDefault() {
		t.Errorf("expected inductance filled from defaults, got %f", c.Circuit.Inductance)
	}
	if c.Circuit.TauR != 90.0 {
		t.Errorf("preset value must survive normalization, got %f", c.Circuit.TauR)
	}
	if c.Force.K != 100.0 {
		t.Errorf("expected force constants filled, got %f", c.Force.K)
	}
}

func circuitDefault() float64 {
	return DefaultConfig().Circuit.Inductance
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loveos.yaml")

	cfg := DefaultConfig()
	cfg.Scenario = "ego"
	cfg.Duration = 42.0
	cfg.Circuit.RHigh = 1.75

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Scenario != "ego" {
		t.Errorf("expected scenario ego, got %s", loaded.Scenario)
	}
	if loaded.Duration != 42.0 {
		t.Errorf("expected duration 42, got %f", loaded.Duration)
	}
	if loaded.Circuit.RHigh != 1.75 {
		t.Errorf("expected r_high 1.75, got %f", loaded.Circuit.RHigh)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
