package filter

import (
	"math"
	"sync"
)

// Bilateral applies an edge-preserving bilateral filter to a 3-channel
// 8-bit buffer and returns a new buffer of the same size; src is not
// modified.
//
// Each output pixel averages its neighbors weighted by both spatial
// distance (Gaussian of sigmaSpace) and tonal distance (Gaussian of
// sigmaColor over the summed absolute channel differences). Neighbors on
// the far side of a sharp ink/paper boundary get near-zero tonal weight,
// so edges survive while same-tone areas smooth out — the behavior that
// lets diffusion spread ink into paper without smearing stroke outlines.
//
// The kernel radius is round(1.5 * sigmaSpace), floored at 1. Borders
// use edge extension. Invalid input (empty buffer, mismatched length,
// non-positive sigmas) returns a copy of src.
func Bilateral(src []uint8, width, height int, sigmaColor, sigmaSpace float64) []uint8 {
	out := make([]uint8, len(src))
	copy(out, src)
	if width <= 0 || height <= 0 || len(src) != width*height*3 || sigmaColor <= 0 || sigmaSpace <= 0 {
		return out
	}

	radius := int(math.Round(1.5 * sigmaSpace))
	if radius < 1 {
		radius = 1
	}

	spatial := spatialKernel(radius, sigmaSpace)
	tonal := tonalLUT(sigmaColor)
	defer putTonalLUT(tonal)

	side := 2*radius + 1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			center := (y*width + x) * 3
			cr := int(src[center+0])
			cg := int(src[center+1])
			cb := int(src[center+2])

			var sumR, sumG, sumB, sumW float64
			for ky := -radius; ky <= radius; ky++ {
				ny := clampInt(y+ky, 0, height-1)
				rowOff := ny * width
				kernRow := (ky + radius) * side
				for kx := -radius; kx <= radius; kx++ {
					nx := clampInt(x+kx, 0, width-1)
					n := (rowOff + nx) * 3

					diff := absInt(int(src[n+0])-cr) +
						absInt(int(src[n+1])-cg) +
						absInt(int(src[n+2])-cb)

					w := spatial[kernRow+kx+radius] * tonal[diff]
					sumR += float64(src[n+0]) * w
					sumG += float64(src[n+1]) * w
					sumB += float64(src[n+2]) * w
					sumW += w
				}
			}

			// The center pixel always contributes, so sumW > 0.
			out[center+0] = clampUint8(sumR / sumW)
			out[center+1] = clampUint8(sumG / sumW)
			out[center+2] = clampUint8(sumB / sumW)
		}
	}
	return out
}

// spatialKernel precomputes the Gaussian spatial weights for a
// (2r+1)×(2r+1) neighborhood.
func spatialKernel(radius int, sigma float64) []float64 {
	side := 2*radius + 1
	k := make([]float64, side*side)
	inv := -1 / (2 * sigma * sigma)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			k[(dy+radius)*side+dx+radius] = math.Exp(float64(dy*dy+dx*dx) * inv)
		}
	}
	return k
}

// maxTonalDiff is the largest summed absolute channel difference between
// two 3-channel 8-bit pixels.
const maxTonalDiff = 3 * 255

// tonalLUTPool recycles the tonal weight tables; finalize runs once per
// stroke and the table size is fixed.
var tonalLUTPool = sync.Pool{
	New: func() any {
		lut := make([]float64, maxTonalDiff+1)
		return &lut
	},
}

// tonalLUT returns the Gaussian tonal weight for every possible summed
// channel difference.
func tonalLUT(sigma float64) []float64 {
	lut := *tonalLUTPool.Get().(*[]float64)
	inv := -1 / (2 * sigma * sigma)
	for d := range lut {
		lut[d] = math.Exp(float64(d*d) * inv)
	}
	return lut
}

// putTonalLUT returns a tonal table to the pool.
func putTonalLUT(lut []float64) {
	tonalLUTPool.Put(&lut)
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// absInt returns the absolute value of an int.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // round to nearest
}
