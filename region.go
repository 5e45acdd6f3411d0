package inkwash

import "image"

// Region is an independently owned copy of a rectangular canvas area.
// Pix holds Dx*Dy pixels in the canvas's 3-channel 8-bit layout, row-major.
// Rect records where on the canvas the copy came from, so a mutated region
// can be pasted back in place.
//
// Regions are the only way pixel data crosses the canvas boundary: Crop
// copies out, Paste copies in, and nothing ever aliases the live buffer.
type Region struct {
	Rect image.Rectangle
	Pix  []uint8
}

// emptyRegion is returned whenever a requested rectangle clips to nothing.
var emptyRegion = &Region{}

// Empty reports whether the region holds no pixels.
func (r *Region) Empty() bool {
	return r == nil || r.Rect.Dx() <= 0 || r.Rect.Dy() <= 0 || len(r.Pix) == 0
}

// Width returns the region width in pixels.
func (r *Region) Width() int { return r.Rect.Dx() }

// Height returns the region height in pixels.
func (r *Region) Height() int { return r.Rect.Dy() }

// Clone returns a deep copy of the region.
func (r *Region) Clone() *Region {
	if r.Empty() {
		return emptyRegion
	}
	pix := make([]uint8, len(r.Pix))
	copy(pix, r.Pix)
	return &Region{Rect: r.Rect, Pix: pix}
}

// index returns the offset of the pixel at region-local (x, y).
// The caller is responsible for bounds.
func (r *Region) index(x, y int) int {
	return (y*r.Rect.Dx() + x) * 3
}
