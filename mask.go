package inkwash

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Mask is a square opacity raster for a brush shape.
// Values range from 0 (no deposit) to 1 (fully opaque deposit).
type Mask struct {
	side int
	data []float32
}

// NewMask creates a mask of the given side length with all values 0.
// Side lengths below 1 are clamped to 1.
func NewMask(side int) *Mask {
	if side < 1 {
		side = 1
	}
	return &Mask{
		side: side,
		data: make([]float32, side*side),
	}
}

// Side returns the mask's side length in pixels.
func (m *Mask) Side() int { return m.side }

// At returns the opacity at (x, y).
// Coordinates outside the mask return 0.
func (m *Mask) At(x, y int) float32 {
	if x < 0 || x >= m.side || y < 0 || y >= m.side {
		return 0
	}
	return m.data[y*m.side+x]
}

// Set sets the opacity at (x, y), clamped to [0, 1].
// Coordinates outside the mask are ignored.
func (m *Mask) Set(x, y int, v float32) {
	if x < 0 || x >= m.side || y < 0 || y >= m.side {
		return
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	m.data[y*m.side+x] = v
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.side)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying opacity slice, row-major.
func (m *Mask) Data() []float32 {
	return m.data
}

// maskFromGray builds a mask from an 8-bit grayscale image, mapping
// 255 to full opacity. The image must be square; the caller normalizes.
func maskFromGray(img *image.Gray) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx())
	for y := 0; y < m.side; y++ {
		for x := 0; x < m.side; x++ {
			m.data[y*m.side+x] = float32(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y) / 255
		}
	}
	return m
}

// toGray converts the mask to an 8-bit grayscale image, full opacity
// mapping to 255.
func (m *Mask) toGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.side, m.side))
	for i, v := range m.data {
		img.Pix[i] = uint8(clampF(float64(v)*255, 0, 255) + 0.5)
	}
	return img
}

// scaled returns the mask resampled to the given side length.
// Reduction uses Catmull-Rom filtering, enlargement bilinear interpolation.
func (m *Mask) scaled(side int) *Mask {
	if side < 1 {
		side = 1
	}
	if side == m.side {
		return m.Clone()
	}

	src := m.toGray()
	dst := image.NewGray(image.Rect(0, 0, side, side))
	scaler := xdraw.Scaler(xdraw.BiLinear)
	if side < m.side {
		scaler = xdraw.CatmullRom
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return maskFromGray(dst)
}

// rotated returns the mask rotated about its center by angleDeg degrees,
// positive counter-clockwise. The output has the same side length; area
// exposed by the rotation is filled with 0 opacity.
//
// Implemented by inverse mapping: each destination pixel samples the
// source at the back-rotated position with bilinear interpolation.
func (m *Mask) rotated(angleDeg float64) *Mask {
	if angleDeg == 0 || m.side < 2 {
		return m.Clone()
	}

	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	center := float64(m.side-1) / 2

	out := NewMask(m.side)
	for y := 0; y < m.side; y++ {
		dy := float64(y) - center
		for x := 0; x < m.side; x++ {
			dx := float64(x) - center
			// Screen coordinates have Y down, so the inverse of a visual
			// counter-clockwise rotation is [cos -sin; sin cos].
			sx := cos*dx - sin*dy + center
			sy := sin*dx + cos*dy + center
			out.data[y*m.side+x] = m.sampleBilinear(sx, sy)
		}
	}
	return out
}

// sampleBilinear samples the mask at a continuous position, interpolating
// between the four neighboring cells. Positions outside the mask
// contribute 0, so rotation edges fade out instead of wrapping.
func (m *Mask) sampleBilinear(x, y float64) float32 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := float32(x - float64(x0))
	ty := float32(y - float64(y0))

	v00 := m.At(x0, y0)
	v10 := m.At(x0+1, y0)
	v01 := m.At(x0, y0+1)
	v11 := m.At(x0+1, y0+1)

	top := v00*(1-tx) + v10*tx
	bot := v01*(1-tx) + v11*tx
	return top*(1-ty) + bot*ty
}

// clampF clamps a float64 value to [minVal, maxVal].
func clampF(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
