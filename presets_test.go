package inkwash

import (
	"os"
	"path/filepath"
	"testing"
)

const presetTOML = `
[preset.mountain-mist]
size = 40
density = 35
wetness = 90
feibai = 10
color = "#1a1a2e"

[preset.dry-branch]
size = 12
density = 90
flow = 80
feibai = 70
wetness = 10
shape = "flat"
angle_mode = "direction"

[preset.overdrive]
size = -4
density = 900
`

// TestParsePresets verifies TOML preset tables decode into clamped
// settings with defaults for missing keys.
func TestParsePresets(t *testing.T) {
	presets, err := ParsePresets(presetTOML)
	if err != nil {
		t.Fatalf("ParsePresets failed: %v", err)
	}
	if len(presets) != 3 {
		t.Fatalf("got %d presets, want 3", len(presets))
	}

	mist, ok := presets["mountain-mist"]
	if !ok {
		t.Fatal("mountain-mist missing")
	}
	if mist.Size != 40 || mist.Density != 35 || mist.Wetness != 90 || mist.Feibai != 10 {
		t.Errorf("mountain-mist = %+v", mist)
	}
	if mist.Color != (Color{0x1a, 0x1a, 0x2e}) {
		t.Errorf("mountain-mist color = %v", mist.Color)
	}
	// Keys absent from the table keep the defaults.
	if mist.Flow != 100 || mist.Shape != DefaultShape {
		t.Errorf("mountain-mist defaults wrong: %+v", mist)
	}

	dry := presets["dry-branch"]
	if dry.Shape != "flat" || dry.Feibai != 70 || dry.AngleMode != AngleDirection {
		t.Errorf("dry-branch = %+v", dry)
	}

	// Out-of-range values clamp at the boundary.
	over := presets["overdrive"]
	if over.Size != 1 || over.Density != 100 {
		t.Errorf("overdrive not clamped: %+v", over)
	}
}

// TestParsePresetsInvalid verifies malformed TOML yields an error.
func TestParsePresetsInvalid(t *testing.T) {
	if _, err := ParsePresets("[preset.broken\nsize = 1"); err == nil {
		t.Error("expected parse error for malformed TOML")
	}
}

// TestParsePresetsEmpty verifies a file without preset tables is not an
// error.
func TestParsePresetsEmpty(t *testing.T) {
	presets, err := ParsePresets("")
	if err != nil {
		t.Fatalf("ParsePresets(\"\") failed: %v", err)
	}
	if len(presets) != 0 {
		t.Errorf("got %d presets, want 0", len(presets))
	}
}

// TestLoadPresets verifies the file path round trip.
func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brushes.toml")
	if err := os.WriteFile(path, []byte(presetTOML), 0o600); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if presets["dry-branch"].Size != 12 {
		t.Errorf("dry-branch size = %d, want 12", presets["dry-branch"].Size)
	}

	if _, err := LoadPresets(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
