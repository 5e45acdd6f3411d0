package inkwash

import "image/color"

// Color is a 3-channel 8-bit RGB color, the canvas's pixel format.
// The canvas carries no alpha; ink opacity is resolved at blend time.
type Color struct {
	R, G, B uint8
}

// Common paper and pigment colors.
var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// RGB creates a Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NRGBA converts the color to the standard library's color.NRGBA,
// fully opaque.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex creates a Color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with optional '#' prefix.
// Invalid input yields black, matching the engine's clamp-don't-reject
// policy for untrusted settings.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// parseHex parses a hex substring into an integer value.
// Invalid characters leave the value at 0.
func parseHex(s string, v *uint32) {
	var result uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		var digit uint32
		switch {
		case c >= '0' && c <= '9':
			digit = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			digit = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			digit = uint32(c-'A') + 10
		default:
			*v = 0
			return
		}
		result = result*16 + digit
	}
	*v = result
}
