package inkwash

import (
	"image"
	"math"
	"math/rand/v2"
)

// Stroker turns path segments into stamp sequences on a canvas. It holds
// the shape library and the random source shared by jitter and feibai
// noise. A Stroker is intended for single-threaded use by the event loop:
// each ProcessSegment call completes before the next begins, stamps are
// applied in strict path order, and Finalize runs after the last segment
// of a stroke.
type Stroker struct {
	shapes *ShapeLibrary
	rng    *rand.Rand
}

// StrokerOption configures a Stroker during creation.
type StrokerOption func(*Stroker)

// WithRand sets the random source used for jitter and feibai noise.
// Useful for reproducible output in tests and batch rendering.
func WithRand(r *rand.Rand) StrokerOption {
	return func(st *Stroker) {
		st.rng = r
	}
}

// NewStroker creates a stroke processor using the given shape library.
func NewStroker(shapes *ShapeLibrary, opts ...StrokerOption) *Stroker {
	st := &Stroker{
		shapes: shapes,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// ProcessSegment applies one path segment p1→p2 as a sequence of
// overlapping stamps and returns the canvas rectangle it touched.
// A zero rectangle means nothing was applied (segment entirely outside
// the canvas, or a commit that had to be abandoned).
//
// The segment works on a single rectangle cropped from the canvas: the
// segment's bounding box padded so that no jittered stamp can fall
// outside it. One feibai noise field is generated for that rectangle and
// shared by every stamp of the segment.
func (st *Stroker) ProcessSegment(c *Canvas, p1, p2 Point, s Settings) image.Rectangle {
	if c == nil {
		return image.Rectangle{}
	}
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	s = s.Clamped()

	// Stamp spacing of a quarter brush guarantees overlap regardless of
	// pointer sampling rate.
	spacing := math.Max(1, float64(s.Size)/4)
	dist := p1.Distance(p2)
	steps := int(math.Round(dist / spacing))
	if steps < 1 {
		steps = 1
	}

	working := segmentRect(p1, p2, s).Intersect(c.Bounds())
	if working.Empty() {
		Logger().Debug("segment outside canvas, nothing to do",
			"p1", p1, "p2", p2)
		return image.Rectangle{}
	}

	reg := c.Crop(working)
	if reg.Empty() {
		return image.Rectangle{}
	}

	noise := noiseField(reg.Width()*reg.Height(), st.rng)
	dir := p1.AngleTo(p2)
	origin := Pt(float64(working.Min.X), float64(working.Min.Y))
	local1 := p1.Sub(origin)
	local2 := p2.Sub(origin)

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		applyStamp(reg, local1.Lerp(local2, t), s, st.shapes, noise, dir, st.rng)
	}

	if err := c.Paste(reg); err != nil {
		Logger().Warn("segment commit abandoned", "error", err)
		return image.Rectangle{}
	}
	return working
}

// segmentRect computes the working rectangle for a segment: the bounding
// box of its endpoints, padded by the worst-case jittered stamp radius
// plus the worst-case position jitter offset.
func segmentRect(p1, p2 Point, s Settings) image.Rectangle {
	maxRadius := float64(s.Size) * (1 + s.SizeJitter/100*sizeJitterScale) / 2
	maxOffset := s.PosJitter / 100 * float64(s.Size) / 2
	margin := int(math.Ceil(maxRadius+maxOffset)) + 1

	minX := int(math.Floor(math.Min(p1.X, p2.X))) - margin
	minY := int(math.Floor(math.Min(p1.Y, p2.Y))) - margin
	maxX := int(math.Ceil(math.Max(p1.X, p2.X))) + margin
	maxY := int(math.Ceil(math.Max(p1.Y, p2.Y))) + margin

	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// noiseField generates n independent uniform values in [0, 1) for feibai.
func noiseField(n int, rng *rand.Rand) []float32 {
	field := make([]float32, n)
	for i := range field {
		field[i] = float32(rng.Float64())
	}
	return field
}
