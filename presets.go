package inkwash

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Brush presets are named settings bundles in a TOML file, one table per
// preset under [preset.<name>]:
//
//	[preset.mountain-mist]
//	size = 40
//	density = 35
//	wetness = 90
//	feibai = 10
//	color = "#1a1a2e"
//
//	[preset.dry-branch]
//	size = 12
//	density = 90
//	flow = 80
//	feibai = 70
//	wetness = 10
//	shape = "flat"
//	angle_mode = "direction"
//
// Preset tables use the same keys as SettingsFromMap; missing keys fall
// back to the engine defaults and every value is clamped.

// presetFile mirrors the TOML layout. Values decode into loose maps so
// the same boundary validation as the UI parameter bag applies.
type presetFile struct {
	Preset map[string]map[string]any `toml:"preset"`
}

// ParsePresets decodes brush presets from TOML source text.
func ParsePresets(data string) (map[string]Settings, error) {
	var raw presetFile
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("inkwash: parse presets: %w", err)
	}

	presets := make(map[string]Settings, len(raw.Preset))
	for name, table := range raw.Preset {
		presets[name] = SettingsFromMap(table)
	}
	return presets, nil
}

// LoadPresets reads brush presets from a TOML file.
func LoadPresets(path string) (map[string]Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("inkwash: read presets: %w", err)
	}
	return ParsePresets(string(data))
}
