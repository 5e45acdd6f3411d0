package inkwash

import "math"

// Mode selects what a stroke deposits.
type Mode uint8

const (
	// ModeInk deposits pigment: pixels only ever darken.
	ModeInk Mode = iota

	// ModeEraser lifts pigment back toward white: pixels only ever lighten.
	ModeEraser
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeInk:
		return "ink"
	case ModeEraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// AngleMode selects how each stamp's rotation angle is resolved.
type AngleMode uint8

const (
	// AngleDirection follows the stroke direction.
	AngleDirection AngleMode = iota

	// AngleFixed uses the configured Angle.
	AngleFixed

	// AngleRandom draws a fresh uniform angle per stamp.
	AngleRandom

	// AngleDirectionJitter follows the stroke direction with a random
	// perturbation of up to ±AngleJitter degrees.
	AngleDirectionJitter

	// AngleFixedJitter uses the configured Angle with a random
	// perturbation of up to ±AngleJitter degrees.
	AngleFixedJitter
)

// String returns a string representation of the angle mode.
func (m AngleMode) String() string {
	switch m {
	case AngleDirection:
		return "direction"
	case AngleFixed:
		return "fixed"
	case AngleRandom:
		return "random"
	case AngleDirectionJitter:
		return "direction+jitter"
	case AngleFixedJitter:
		return "fixed+jitter"
	default:
		return "unknown"
	}
}

// Settings holds the brush parameters for one stroke. It is a plain value:
// build it once per stroke, pass it by value, and the engine clamps every
// field to its domain before use, so out-of-range input degrades instead
// of failing.
type Settings struct {
	// Size is the brush diameter in canvas pixels, at least 1.
	Size int

	// Density is the base ink opacity, 0-100.
	Density float64

	// Flow is the per-stamp opacity multiplier, 0-100. Distinct from
	// Density: overlapping stamps at low flow build up gradually.
	Flow float64

	// Hardness controls edge sharpness, 0-100. Higher values steepen the
	// mask falloff for a crisper edge.
	Hardness float64

	// Wetness controls post-stroke diffusion strength and extent, 0-100.
	Wetness float64

	// Feibai controls dry-brush "flying white" gaps, 0-100.
	Feibai float64

	// Shape names the brush mask; unknown names fall back to DefaultShape.
	Shape string

	// Color is the ink color for ModeInk strokes.
	Color Color

	// Mode selects ink or eraser.
	Mode Mode

	// AngleMode selects how stamp rotation is resolved.
	AngleMode AngleMode

	// Angle is the fixed rotation in degrees for the fixed angle modes.
	Angle float64

	// PosJitter randomizes stamp centers, 0-100. At 100 a stamp can
	// displace by up to one brush radius.
	PosJitter float64

	// SizeJitter randomizes stamp size, 0-100.
	SizeJitter float64

	// AngleJitter is the maximum random rotation perturbation in degrees,
	// 0-180, for the +jitter angle modes.
	AngleJitter float64
}

// DefaultSettings returns the engine's documented defaults: a medium
// round ink brush with some dry-brush texture and wet diffusion.
func DefaultSettings() Settings {
	return Settings{
		Size:      15,
		Density:   60,
		Flow:      100,
		Hardness:  50,
		Wetness:   70,
		Feibai:    20,
		Shape:     DefaultShape,
		Color:     Black,
		Mode:      ModeInk,
		AngleMode: AngleDirection,
	}
}

// Clamped returns a copy with every field forced into its domain.
// The engine calls this at its boundary; settings are never trusted.
func (s Settings) Clamped() Settings {
	if s.Size < 1 {
		s.Size = 1
	}
	s.Density = clampF(s.Density, 0, 100)
	s.Flow = clampF(s.Flow, 0, 100)
	s.Hardness = clampF(s.Hardness, 0, 100)
	s.Wetness = clampF(s.Wetness, 0, 100)
	s.Feibai = clampF(s.Feibai, 0, 100)
	if s.Shape == "" {
		s.Shape = DefaultShape
	}
	if s.Mode > ModeEraser {
		s.Mode = ModeInk
	}
	if s.AngleMode > AngleFixedJitter {
		s.AngleMode = AngleDirection
	}
	s.Angle = normalizeDeg(s.Angle)
	s.PosJitter = clampF(s.PosJitter, 0, 100)
	s.SizeJitter = clampF(s.SizeJitter, 0, 100)
	s.AngleJitter = clampF(s.AngleJitter, 0, 180)
	return s
}

// normalizeDeg wraps an angle into [0, 360).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SettingsFromMap decodes the UI layer's loosely-typed parameter bag into
// validated Settings. Missing keys keep their defaults, unknown keys are
// ignored, numeric values may arrive as int, int64 or float64, and the
// result is clamped. Recognized keys:
//
//	size, density, flow, hardness, wetness, feibai,
//	shape, color, mode, angle_mode, angle,
//	pos_jitter, size_jitter, angle_jitter
//
// color accepts a hex string ("#334455") or a 3-element numeric slice.
// mode accepts "ink" or "eraser"; angle_mode accepts "direction", "fixed",
// "random", "direction+jitter", "fixed+jitter".
func SettingsFromMap(m map[string]any) Settings {
	s := DefaultSettings()

	if v, ok := numValue(m["size"]); ok {
		s.Size = int(math.Round(v))
	}
	if v, ok := numValue(m["density"]); ok {
		s.Density = v
	}
	if v, ok := numValue(m["flow"]); ok {
		s.Flow = v
	}
	if v, ok := numValue(m["hardness"]); ok {
		s.Hardness = v
	}
	if v, ok := numValue(m["wetness"]); ok {
		s.Wetness = v
	}
	if v, ok := numValue(m["feibai"]); ok {
		s.Feibai = v
	}
	if v, ok := m["shape"].(string); ok && v != "" {
		s.Shape = v
	}
	if c, ok := colorValue(m["color"]); ok {
		s.Color = c
	}
	if v, ok := m["mode"].(string); ok {
		switch v {
		case "eraser":
			s.Mode = ModeEraser
		case "ink":
			s.Mode = ModeInk
		}
	}
	if v, ok := m["angle_mode"].(string); ok {
		switch v {
		case "direction":
			s.AngleMode = AngleDirection
		case "fixed":
			s.AngleMode = AngleFixed
		case "random":
			s.AngleMode = AngleRandom
		case "direction+jitter":
			s.AngleMode = AngleDirectionJitter
		case "fixed+jitter":
			s.AngleMode = AngleFixedJitter
		}
	}
	if v, ok := numValue(m["angle"]); ok {
		s.Angle = v
	}
	if v, ok := numValue(m["pos_jitter"]); ok {
		s.PosJitter = v
	}
	if v, ok := numValue(m["size_jitter"]); ok {
		s.SizeJitter = v
	}
	if v, ok := numValue(m["angle_jitter"]); ok {
		s.AngleJitter = v
	}

	return s.Clamped()
}

// numValue coerces the numeric types a settings bag may carry.
func numValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// colorValue coerces a color entry: hex string or 3-element numeric slice.
func colorValue(v any) (Color, bool) {
	switch c := v.(type) {
	case string:
		if c == "" {
			return Color{}, false
		}
		return Hex(c), true
	case []any:
		if len(c) != 3 {
			return Color{}, false
		}
		var rgb [3]uint8
		for i, e := range c {
			n, ok := numValue(e)
			if !ok {
				return Color{}, false
			}
			rgb[i] = uint8(clampF(n, 0, 255))
		}
		return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, true
	default:
		return Color{}, false
	}
}
