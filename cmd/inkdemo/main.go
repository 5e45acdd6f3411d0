// Command inkdemo paints a few ink-wash strokes and saves the result.
package main

import (
	"flag"
	"image"
	"log"
	"math"
	"math/rand/v2"

	"github.com/gogpu/inkwash"
)

func main() {
	var (
		width   = flag.Int("width", 800, "canvas width")
		height  = flag.Int("height", 600, "canvas height")
		output  = flag.String("output", "inkdemo.png", "output file")
		seed    = flag.Uint64("seed", 0, "random seed (0 = nondeterministic)")
		presets = flag.String("presets", "", "optional TOML preset file")
		preset  = flag.String("preset", "", "preset name to paint with")
		shapes  = flag.String("shapes", "", "optional brush shape directory")
	)
	flag.Parse()

	var lib *inkwash.ShapeLibrary
	if *shapes != "" {
		lib = inkwash.NewShapeLibraryDir(*shapes)
	} else {
		lib = inkwash.NewShapeLibrary(nil)
	}
	lib.Load()
	log.Printf("brush shapes: %v", lib.Names())

	opts := []inkwash.StrokerOption{}
	if *seed != 0 {
		opts = append(opts, inkwash.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	}
	stroker := inkwash.NewStroker(lib, opts...)

	canvas := inkwash.NewCanvas(*width, *height, inkwash.White)

	s := inkwash.DefaultSettings()
	if *presets != "" {
		loaded, err := inkwash.LoadPresets(*presets)
		if err != nil {
			log.Fatalf("Failed to load presets: %v", err)
		}
		if p, ok := loaded[*preset]; ok {
			s = p
		} else {
			log.Fatalf("Preset %q not found in %s", *preset, *presets)
		}
	}

	paintWash(canvas, stroker, s, *width, *height)
	paintDrySweep(canvas, stroker, *width, *height)
	paintTaps(canvas, stroker, *width, *height)

	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)", *output, *width, *height)
}

// paintWash draws a wet S-curve across the canvas with the given settings.
func paintWash(canvas *inkwash.Canvas, stroker *inkwash.Stroker, s inkwash.Settings, w, h int) {
	s.Size = max(s.Size, 24)

	var touched image.Rectangle
	steps := 60
	prev := curvePoint(0, w, h)
	for i := 1; i <= steps; i++ {
		next := curvePoint(float64(i)/float64(steps), w, h)
		touched = touched.Union(stroker.ProcessSegment(canvas, prev, next, s))
		prev = next
	}
	stroker.Finalize(canvas, touched, s)
}

// paintDrySweep draws a fast dry-brush diagonal with heavy feibai.
func paintDrySweep(canvas *inkwash.Canvas, stroker *inkwash.Stroker, w, h int) {
	s := inkwash.DefaultSettings()
	s.Size = 18
	s.Density = 90
	s.Feibai = 70
	s.Wetness = 10
	s.Shape = "flat"

	p1 := inkwash.Pt(float64(w)*0.15, float64(h)*0.8)
	p2 := inkwash.Pt(float64(w)*0.85, float64(h)*0.55)
	touched := stroker.ProcessSegment(canvas, p1, p2, s)
	stroker.Finalize(canvas, touched, s)
}

// paintTaps dots a few wet taps along the bottom.
func paintTaps(canvas *inkwash.Canvas, stroker *inkwash.Stroker, w, h int) {
	s := inkwash.DefaultSettings()
	s.Size = 10
	s.Density = 80
	s.Wetness = 90
	s.PosJitter = 40
	s.SizeJitter = 50

	for i := 0; i < 5; i++ {
		p := inkwash.Pt(float64(w)*(0.3+0.1*float64(i)), float64(h)*0.9)
		touched := stroker.ProcessSegment(canvas, p, p, s)
		stroker.Finalize(canvas, touched, s)
	}
}

// curvePoint parameterizes a gentle S-curve across the canvas.
func curvePoint(t float64, w, h int) inkwash.Point {
	x := float64(w) * (0.1 + 0.8*t)
	y := float64(h) * (0.35 + 0.15*math.Sin(t*2*math.Pi))
	return inkwash.Pt(x, y)
}
