package inkwash

import (
	"image"
	"math"

	"github.com/gogpu/inkwash/internal/filter"
)

// Finalize simulates ink diffusing into the paper after a stroke ends.
// touched is the union of the rectangles returned by the stroke's
// ProcessSegment calls; the return value is the (larger) rectangle the
// diffusion actually updated, for the caller to repaint.
//
// Eraser strokes do not diffuse: the canvas is untouched and touched is
// returned as-is. Ink strokes with zero wetness return a zero rectangle
// with no mutation. Otherwise the touched area, expanded by the
// wetness-derived diffusion radius, is cropped, blurred with an
// edge-preserving bilateral filter, and blended back with a
// component-wise minimum — diffusion spreads ink into lighter paper but
// can never lighten existing ink.
func (st *Stroker) Finalize(c *Canvas, touched image.Rectangle, s Settings) image.Rectangle {
	s = s.Clamped()
	if s.Mode == ModeEraser {
		return touched
	}
	if c == nil || s.Wetness <= 0 || touched.Empty() {
		return image.Rectangle{}
	}

	// Wetness drives both how far ink creeps (spatial sigma) and how
	// readily it crosses tonal boundaries (color sigma).
	sigmaSpace := math.Max(1, s.Wetness/100*20)
	sigmaColor := math.Max(1, s.Wetness/100*150)

	radius := int(sigmaSpace * 3)
	radius = max(radius, s.Size/2)
	radius = max(radius, 5)

	working := touched.Inset(-radius).Intersect(c.Bounds())
	if working.Empty() {
		return image.Rectangle{}
	}

	reg := c.Crop(working)
	if reg.Empty() {
		return image.Rectangle{}
	}

	blurred := filter.Bilateral(reg.Pix, reg.Width(), reg.Height(), sigmaColor, sigmaSpace)
	for i, v := range blurred {
		if v < reg.Pix[i] {
			reg.Pix[i] = v
		}
	}

	if err := c.Paste(reg); err != nil {
		Logger().Warn("diffusion commit abandoned", "error", err)
		return image.Rectangle{}
	}
	return working
}
