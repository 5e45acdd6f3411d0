package inkwash

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Canvas is the painting surface: a fixed-size buffer of 3-channel 8-bit
// RGB pixels. The buffer is exclusively owned by the canvas; callers read
// and write it through Crop/Paste region copies or whole-buffer operations
// (Fill, SetImage), never through a live alias.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGB, 3 bytes per pixel, row-major
}

// NewCanvas creates a canvas filled with the given background color.
// Non-positive dimensions are clamped to 1.
func NewCanvas(width, height int, bg Color) *Canvas {
	if width <= 0 || height <= 0 {
		Logger().Warn("canvas created with invalid size, clamping to 1x1",
			"width", width, "height", height)
		if width <= 0 {
			width = 1
		}
		if height <= 0 {
			height = 1
		}
	}
	c := &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
	c.Fill(bg)
	return c
}

// Size returns the canvas dimensions (width, height).
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas rectangle (0, 0, width, height).
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Fill sets every pixel to the given color.
func (c *Canvas) Fill(bg Color) {
	for i := 0; i < len(c.data); i += 3 {
		c.data[i+0] = bg.R
		c.data[i+1] = bg.G
		c.data[i+2] = bg.B
	}
}

// Crop returns an independent copy of the given rectangle, clipped to the
// canvas bounds. Out-of-range rectangles are absorbed by clipping; a
// rectangle that clips to nothing yields an empty region, never an error.
func (c *Canvas) Crop(r image.Rectangle) *Region {
	clipped := r.Intersect(c.Bounds())
	if clipped.Empty() {
		return emptyRegion
	}

	w, h := clipped.Dx(), clipped.Dy()
	pix := make([]uint8, w*h*3)
	for y := 0; y < h; y++ {
		srcOff := ((clipped.Min.Y+y)*c.width + clipped.Min.X) * 3
		copy(pix[y*w*3:(y+1)*w*3], c.data[srcOff:srcOff+w*3])
	}
	return &Region{Rect: clipped, Pix: pix}
}

// Paste writes a region back into the canvas at reg.Rect.
// The rectangle is clipped to the canvas bounds; if the clipped rectangle
// does not exactly match the region's pixel extent the paste is skipped
// and ErrShapeMismatch is returned, leaving the canvas untouched.
func (c *Canvas) Paste(reg *Region) error {
	if reg.Empty() {
		return nil
	}

	clipped := reg.Rect.Intersect(c.Bounds())
	w, h := clipped.Dx(), clipped.Dy()
	if clipped != reg.Rect || len(reg.Pix) != w*h*3 {
		Logger().Warn("paste skipped: region does not match target rectangle",
			"rect", reg.Rect.String(), "clipped", clipped.String(), "pixels", len(reg.Pix))
		return fmt.Errorf("%w: region %v has %d bytes, target %v needs %d",
			ErrShapeMismatch, reg.Rect, len(reg.Pix), clipped, w*h*3)
	}

	for y := 0; y < h; y++ {
		dstOff := ((clipped.Min.Y+y)*c.width + clipped.Min.X) * 3
		copy(c.data[dstOff:dstOff+w*3], reg.Pix[y*w*3:(y+1)*w*3])
	}
	return nil
}

// SetImage replaces the canvas contents with an arbitrary image.
// The source is normalized to the canvas's fixed shape: gray sources are
// duplicated across channels, alpha is dropped, and mismatched dimensions
// are resampled (Catmull-Rom when reducing, bilinear when enlarging).
// The buffer is swapped atomically; on error the canvas is unchanged.
func (c *Canvas) SetImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil source image", ErrShapeMismatch)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: empty source image %v", ErrShapeMismatch, b)
	}

	// NRGBA keeps channels un-premultiplied so dropping alpha does not
	// darken translucent source pixels.
	dst := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	if b.Dx() == c.width && b.Dy() == c.height {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		Logger().Debug("resampling source image to canvas size",
			"from", b.String(), "to", dst.Bounds().String())
		scaler := xdraw.Scaler(xdraw.BiLinear)
		if b.Dx() > c.width || b.Dy() > c.height {
			scaler = xdraw.CatmullRom
		}
		scaler.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}

	data := make([]uint8, c.width*c.height*3)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			src := dst.PixOffset(x, y)
			d := (y*c.width + x) * 3
			data[d+0] = dst.Pix[src+0]
			data[d+1] = dst.Pix[src+1]
			data[d+2] = dst.Pix[src+2]
		}
	}
	c.data = data
	return nil
}

// Image returns a copy of the canvas as an image.RGBA for display.
// Mutating the returned image does not affect the canvas.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, j := 0, 0; i < len(c.data); i, j = i+3, j+4 {
		img.Pix[j+0] = c.data[i+0]
		img.Pix[j+1] = c.data[i+1]
		img.Pix[j+2] = c.data[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	clone := &Canvas{
		width:  c.width,
		height: c.height,
		data:   make([]uint8, len(c.data)),
	}
	copy(clone.data, c.data)
	return clone
}

// At returns the color of the pixel at (x, y).
// Out-of-bounds coordinates return white (bare paper).
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return White
	}
	i := (y*c.width + x) * 3
	return Color{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2]}
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c.Image())
}
