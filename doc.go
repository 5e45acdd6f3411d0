// Package inkwash provides a raster ink-wash (sumi-e) painting engine.
//
// # Overview
//
// inkwash simulates traditional ink painting on a fixed-size pixel canvas.
// Pointer strokes deposit translucent pigment that accumulates (ink never
// un-darkens), breaks up into dry-brush "flying white" gaps, and diffuses
// into the paper after the stroke ends. The engine is deliberately small:
// it consumes path segments and brush settings produced by a UI layer and
// mutates the canvas; windowing, undo history and viewport mapping live
// outside this module.
//
// # Quick Start
//
//	import "github.com/gogpu/inkwash"
//
//	shapes := inkwash.NewShapeLibrary(nil) // synthesized brush shapes
//	shapes.Load()
//
//	canvas := inkwash.NewCanvas(800, 600, inkwash.White)
//	stroker := inkwash.NewStroker(shapes)
//
//	s := inkwash.DefaultSettings()
//	touched := stroker.ProcessSegment(canvas, inkwash.Pt(100, 100), inkwash.Pt(300, 200), s)
//	touched = touched.Union(stroker.ProcessSegment(canvas, inkwash.Pt(300, 200), inkwash.Pt(500, 150), s))
//	stroker.Finalize(canvas, touched, s)
//
//	canvas.SavePNG("stroke.png")
//
// # Architecture
//
// The engine is organized around five pieces:
//   - Canvas: the pixel store, accessed through a strict crop/paste
//     discipline (Region copies, never live aliases)
//   - ShapeLibrary: named square opacity masks with cached scaled/rotated
//     lookups and procedural fallbacks
//   - Settings: validated, range-clamped brush parameters
//   - Stroker.ProcessSegment: interpolates stamps along a path segment
//     inside a bounded working rectangle
//   - Stroker.Finalize: wetness-driven edge-aware diffusion after a stroke
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Brush angles are in degrees; positive rotates counter-clockwise.
//
// # Performance
//
// Every segment and every finalize call works on one bounded rectangle
// cropped from the canvas, so the peak working set depends on the brush
// size and stroke extent, not on the canvas size.
package inkwash

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
