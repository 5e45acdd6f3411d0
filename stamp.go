package inkwash

import (
	"math"
	"math/rand/v2"
)

// sizeJitterScale bounds the size multiplier drawn at full SizeJitter:
// the effective stamp size stays within ±75% of the configured size.
const sizeJitterScale = 0.75

// applyStamp composites one brush deposit onto reg, centered at a point
// in region-local coordinates. noise is the segment-wide feibai field,
// one value per region pixel; pathAngle is the segment direction in
// degrees for the direction angle modes.
//
// The footprint is clipped to the region; a stamp with no overlap, or
// whose mask comes back with an unexpected side length, is skipped
// without touching any pixel.
func applyStamp(reg *Region, center Point, s Settings, shapes *ShapeLibrary, noise []float32, pathAngle float64, rng *rand.Rand) {
	if reg.Empty() {
		return
	}
	w, h := reg.Width(), reg.Height()

	// Jitter resolution: size multiplier, center displacement, rotation.
	sizeMul := 1.0
	if s.SizeJitter > 0 {
		j := s.SizeJitter / 100 * sizeJitterScale
		sizeMul = 1 - j + rng.Float64()*2*j
	}
	effSize := int(math.Round(float64(s.Size) * sizeMul))
	if effSize < 1 {
		effSize = 1
	}
	radius := effSize / 2

	cx, cy := center.X, center.Y
	if s.PosJitter > 0 {
		offset := rng.Float64() * s.PosJitter / 100 * float64(s.Size) / 2
		theta := rng.Float64() * 2 * math.Pi
		cx += offset * math.Cos(theta)
		cy += offset * math.Sin(theta)
	}
	px := int(math.Round(cx))
	py := int(math.Round(cy))

	mask := shapes.ScaledRotated(s.Shape, effSize, resolveAngle(s, pathAngle, rng))
	if mask.Side() != effSize {
		Logger().Debug("stamp skipped: mask side mismatch",
			"want", effSize, "got", mask.Side())
		return
	}

	// Clip the footprint to the region.
	x0 := px - radius
	y0 := py - radius
	ox1 := max(0, x0)
	oy1 := max(0, y0)
	ox2 := min(w, x0+effSize)
	oy2 := min(h, y0+effSize)
	if ox2 <= ox1 || oy2 <= oy1 {
		return
	}

	hardExp := 1 + 2*s.Hardness/100
	baseOpacity := (s.Density / 100) * (s.Flow / 100)
	feibai := s.Feibai / 100
	ink := [3]float64{float64(s.Color.R), float64(s.Color.G), float64(s.Color.B)}

	for y := oy1; y < oy2; y++ {
		my := y - y0
		for x := ox1; x < ox2; x++ {
			mv := float64(mask.At(x-x0, my))
			if mv <= 0 {
				continue
			}
			if hardExp != 1 {
				mv = math.Pow(mv, hardExp)
			}

			fb := 1.0
			if feibai > 0 {
				fb = clampF(1-feibai*(1-noiseAt(noise, y*w+x)), 0, 1)
			}

			alpha := clampF(baseOpacity*mv*fb, 0, 1)
			if alpha <= 0 {
				continue
			}

			i := reg.index(x, y)
			if s.Mode == ModeEraser {
				// Lighten toward white; the eraser can never darken.
				for c := 0; c < 3; c++ {
					v := float64(reg.Pix[i+c])*(1-alpha) + 255*alpha
					reg.Pix[i+c] = uint8(clampF(v, 0, 255))
				}
			} else {
				// Candidate shade is paper blended toward the ink color;
				// the component-wise minimum makes pigment accumulate
				// without ever brightening existing ink.
				for c := 0; c < 3; c++ {
					cand := 255*(1-alpha) + ink[c]*alpha
					if v := uint8(clampF(cand, 0, 255)); v < reg.Pix[i+c] {
						reg.Pix[i+c] = v
					}
				}
			}
		}
	}
}

// resolveAngle picks the stamp rotation in degrees for the configured
// angle mode.
func resolveAngle(s Settings, pathAngle float64, rng *rand.Rand) float64 {
	jitter := func() float64 {
		if s.AngleJitter <= 0 {
			return 0
		}
		return (rng.Float64()*2 - 1) * s.AngleJitter
	}

	switch s.AngleMode {
	case AngleFixed:
		return s.Angle
	case AngleRandom:
		return rng.Float64() * 360
	case AngleDirectionJitter:
		return pathAngle + jitter()
	case AngleFixedJitter:
		return s.Angle + jitter()
	default: // AngleDirection
		return pathAngle
	}
}

// noiseAt reads the shared noise field, substituting a neutral value when
// the field is missing or mis-sized so feibai degrades instead of
// corrupting the stamp.
func noiseAt(noise []float32, i int) float64 {
	if i < 0 || i >= len(noise) {
		return 0.5
	}
	return float64(noise[i])
}
