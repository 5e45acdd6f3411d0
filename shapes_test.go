package inkwash

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

// encodePNG is a test helper that PNG-encodes an image.
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test asset: %v", err)
	}
	return buf.Bytes()
}

// TestLoadSynthesizesDefaults verifies an empty asset source still yields
// the required round and flat shapes.
func TestLoadSynthesizesDefaults(t *testing.T) {
	l := NewShapeLibrary(nil)
	l.Load()

	names := l.Names()
	if len(names) != 2 || names[0] != "round" || names[1] != "flat" {
		t.Fatalf("Names() = %v, want [round flat]", names)
	}

	round := l.ScaledRotated("round", 64, 0)
	if round.Side() != 64 {
		t.Fatalf("round side = %d, want 64", round.Side())
	}
	// The synthesized disc is opaque in the middle, transparent at the
	// corners.
	if c := round.At(32, 32); c < 0.5 {
		t.Errorf("round center opacity = %v, want > 0.5", c)
	}
	if c := round.At(0, 0); c > 0.2 {
		t.Errorf("round corner opacity = %v, want near 0", c)
	}

	// The flat ellipse is wider than tall.
	flat := l.ScaledRotated("flat", 64, 0)
	if e := flat.At(56, 32); e < 0.3 {
		t.Errorf("flat horizontal extreme = %v, want inked", e)
	}
	if e := flat.At(32, 4); e > 0.2 {
		t.Errorf("flat vertical extreme = %v, want near 0", e)
	}
}

// TestLoadFromAssets verifies PNG assets are decoded: opaque grayscale
// uses inverted luminance, alpha images use the alpha channel.
func TestLoadFromAssets(t *testing.T) {
	// Opaque grayscale: dark center square on white paper.
	gray := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range gray.Pix {
		gray.Pix[i] = 255
	}
	for y := 6; y < 10; y++ {
		for x := 6; x < 10; x++ {
			gray.SetGray(x, y, color.Gray{Y: 0})
		}
	}

	// Alpha asset: opaque center, transparent border.
	alpha := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 6; y < 10; y++ {
		for x := 6; x < 10; x++ {
			alpha.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}

	fsys := fstest.MapFS{
		"brush_round.png": &fstest.MapFile{Data: encodePNG(t, gray)},
		"brush_flat.png":  &fstest.MapFile{Data: encodePNG(t, alpha)},
	}
	l := NewShapeLibrary(fsys)
	l.Load()

	round := l.ScaledRotated("round", 16, 0)
	if c := round.At(8, 8); c < 0.9 {
		t.Errorf("gray asset center opacity = %v, want near 1", c)
	}
	if c := round.At(0, 0); c > 0.1 {
		t.Errorf("gray asset border opacity = %v, want near 0", c)
	}

	flat := l.ScaledRotated("flat", 16, 0)
	if c := flat.At(8, 8); c < 0.9 {
		t.Errorf("alpha asset center opacity = %v, want near 1", c)
	}
	if c := flat.At(0, 0); c > 0.1 {
		t.Errorf("alpha asset border opacity = %v, want near 0", c)
	}
}

// TestLoadBadAssetFallsBack verifies undecodable assets are replaced by
// synthesized shapes instead of failing.
func TestLoadBadAssetFallsBack(t *testing.T) {
	fsys := fstest.MapFS{
		"brush_round.png": &fstest.MapFile{Data: []byte("not a png")},
	}
	l := NewShapeLibrary(fsys)
	l.Load()

	if names := l.Names(); len(names) != 2 {
		t.Fatalf("Names() = %v, want both defaults", names)
	}
	if m := l.ScaledRotated("round", 32, 0); m.At(16, 16) < 0.5 {
		t.Errorf("fallback round center = %v, want opaque", m.At(16, 16))
	}
}

// TestScaledRotatedShapeContract verifies the output is exactly
// size×size for any name, size and angle.
func TestScaledRotatedShapeContract(t *testing.T) {
	l := NewShapeLibrary(nil)
	l.Load()

	sizes := []int{1, 3, 10, 33, 128, 300}
	angles := []float64{0, 30, 45, 90, 215.7, -60, 720}
	names := []string{"round", "flat", "no-such-shape", ""}

	for _, name := range names {
		for _, size := range sizes {
			for _, angle := range angles {
				m := l.ScaledRotated(name, size, angle)
				if m.Side() != size {
					t.Fatalf("ScaledRotated(%q, %d, %v).Side() = %d",
						name, size, angle, m.Side())
				}
			}
		}
	}

	// Size below 1 clamps to 1.
	if m := l.ScaledRotated("round", 0, 0); m.Side() != 1 {
		t.Errorf("ScaledRotated size 0 → side %d, want 1", m.Side())
	}
}

// TestScaledRotatedUnknownFallsBack verifies unknown names resolve to the
// default shape rather than an empty mask.
func TestScaledRotatedUnknownFallsBack(t *testing.T) {
	l := NewShapeLibrary(nil)
	l.Load()

	unknown := l.ScaledRotated("splatter", 40, 0)
	round := l.ScaledRotated("round", 40, 0)
	for i, v := range unknown.Data() {
		if v != round.Data()[i] {
			t.Fatalf("unknown shape differs from fallback at %d", i)
		}
	}
}

// TestScaledRotatedCached verifies repeated lookups return the cached
// variant.
func TestScaledRotatedCached(t *testing.T) {
	l := NewShapeLibrary(nil)
	l.Load()

	a := l.ScaledRotated("round", 24, 33)
	b := l.ScaledRotated("round", 24, 33)
	if a != b {
		t.Errorf("expected cached mask pointer on second lookup")
	}

	// Reloading invalidates the variant cache.
	l.Load()
	c := l.ScaledRotated("round", 24, 33)
	if c == a {
		t.Errorf("expected fresh mask after reload")
	}
}
