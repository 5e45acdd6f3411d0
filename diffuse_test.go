package inkwash

import (
	"image"
	"testing"
)

// TestFinalizeDryStroke verifies zero wetness skips diffusion entirely.
func TestFinalizeDryStroke(t *testing.T) {
	st := newTestStroker(t)
	c := NewCanvas(60, 60, White)

	s := plainSettings()
	touched := st.ProcessSegment(c, Pt(30, 30), Pt(30, 30), s)
	before := c.Clone()

	if got := st.Finalize(c, touched, s); !got.Empty() {
		t.Errorf("Finalize with wetness 0 = %v, want zero rectangle", got)
	}
	for i, v := range c.data {
		if v != before.data[i] {
			t.Fatal("dry Finalize mutated the canvas")
		}
	}
}

// TestFinalizeEraser verifies eraser strokes pass touched through
// untouched and never diffuse.
func TestFinalizeEraser(t *testing.T) {
	st := newTestStroker(t)
	c := NewCanvas(60, 60, Black)

	s := plainSettings()
	s.Mode = ModeEraser
	s.Wetness = 90
	touched := st.ProcessSegment(c, Pt(30, 30), Pt(30, 30), s)
	before := c.Clone()

	if got := st.Finalize(c, touched, s); got != touched {
		t.Errorf("eraser Finalize = %v, want %v", got, touched)
	}
	for i, v := range c.data {
		if v != before.data[i] {
			t.Fatal("eraser Finalize mutated the canvas")
		}
	}
}

// TestFinalizeSpreadsInk verifies wet diffusion bleeds ink outward and
// reports a rectangle strictly larger than the stroke footprint.
func TestFinalizeSpreadsInk(t *testing.T) {
	st := newTestStroker(t)
	c := NewCanvas(100, 100, White)

	s := plainSettings()
	s.Wetness = 80
	touched := st.ProcessSegment(c, Pt(50, 50), Pt(50, 50), s)
	if touched.Empty() {
		t.Fatal("tap returned empty rectangle")
	}
	before := c.Clone()

	updated := st.Finalize(c, touched, s)
	if updated.Empty() {
		t.Fatal("wet Finalize returned zero rectangle")
	}
	if !touched.In(updated) || updated == touched {
		t.Errorf("updated %v should strictly contain touched %v", updated, touched)
	}

	// Diffusion may only darken.
	for i, v := range c.data {
		if v > before.data[i] {
			t.Fatalf("Finalize brightened byte %d: %d > %d", i, v, before.data[i])
		}
	}

	// Some pixel just outside the stamp footprint received bled ink.
	bled := false
	for y := 0; y < 100 && !bled; y++ {
		for x := 0; x < 100; x++ {
			if !image.Pt(x, y).In(touched) && c.At(x, y) != White {
				bled = true
				break
			}
		}
	}
	if !bled {
		t.Error("no ink bled outside the stroke footprint")
	}
}

// TestFinalizeNilAndEmpty verifies degenerate inputs are safe no-ops.
func TestFinalizeNilAndEmpty(t *testing.T) {
	st := newTestStroker(t)
	s := plainSettings()
	s.Wetness = 80

	if got := st.Finalize(nil, image.Rect(0, 0, 10, 10), s); !got.Empty() {
		t.Errorf("nil canvas Finalize = %v, want zero rectangle", got)
	}

	c := NewCanvas(20, 20, White)
	if got := st.Finalize(c, image.Rectangle{}, s); !got.Empty() {
		t.Errorf("empty touched Finalize = %v, want zero rectangle", got)
	}
}

// TestFinalizeClipsToCanvas verifies the expanded working rectangle is
// clipped to the canvas bounds.
func TestFinalizeClipsToCanvas(t *testing.T) {
	st := newTestStroker(t)
	c := NewCanvas(40, 40, White)

	s := plainSettings()
	s.Wetness = 100
	touched := st.ProcessSegment(c, Pt(2, 2), Pt(2, 2), s)
	if touched.Empty() {
		t.Fatal("corner tap returned empty rectangle")
	}

	updated := st.Finalize(c, touched, s)
	if !updated.In(c.Bounds()) {
		t.Errorf("updated %v exceeds canvas bounds %v", updated, c.Bounds())
	}
}
