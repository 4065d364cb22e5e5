package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadConfig_PartialOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, "vision_range: 300\ndetection_threshold: 0.5\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VisionRange != 300 {
		t.Fatalf("vision_range = %g, want 300", cfg.VisionRange)
	}
	if cfg.DetectionThreshold != 0.5 {
		t.Fatalf("detection_threshold = %g, want 0.5", cfg.DetectionThreshold)
	}
	// Untouched keys keep their defaults.
	if cfg.VisionFOV != DefaultConfig().VisionFOV {
		t.Fatalf("vision_fov should stay at default, got %g", cfg.VisionFOV)
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero tile", "tile_size: 0\n"},
		{"negative threshold", "detection_threshold: -1\n"},
		{"fov too wide", "vision_fov: 400\n"},
		{"zero replan", "replan_interval: 0\n"},
	}
	for _, tc := range cases {
		path := writeTempConfig(t, tc.body)
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("%s: expected a validation error", tc.name)
		}
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestConfig_GridDimensions(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.GridCols() != 32 || cfg.GridRows() != 18 {
		t.Fatalf("1280x720 at tile 40 should be 32x18, got %dx%d", cfg.GridCols(), cfg.GridRows())
	}
}

func TestConfigSchema_ContainsKeys(t *testing.T) {
	data, err := ConfigSchema()
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, key := range []string{"vision_range", "detection_threshold", "tile_size", "guard_chase_speed"} {
		if !strings.Contains(s, key) {
			t.Fatalf("schema missing %q", key)
		}
	}
}
