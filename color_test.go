package inkwash

import "testing"

// TestHex verifies 3- and 6-digit hex parsing, with and without the '#'
// prefix, and the black fallback for invalid input.
func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#336699", Color{0x33, 0x66, 0x99}},
		{"336699", Color{0x33, 0x66, 0x99}},
		{"#fff", Color{255, 255, 255}},
		{"f00", Color{255, 0, 0}},
		{"#1A1A2E", Color{0x1a, 0x1a, 0x2e}},
		{"", Black},
		{"#", Black},
		{"12345", Black},
		{"#zzzzzz", Black},
		{"not a color", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestNRGBA verifies conversion to the stdlib color type is fully opaque.
func TestNRGBA(t *testing.T) {
	c := RGB(10, 20, 30).NRGBA()
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("NRGBA = %v, want {10 20 30 255}", c)
	}
}
