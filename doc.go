// Package ink is the shared canvas drawing core used by the drawing-style
// mini-games (coloring, tracing, connect-the-dots).
//
// # Overview
//
// ink owns exactly four concerns: a density-correct raster surface, pointer
// event mapping with pressure, pressure-sensitive smoothed stroke rendering,
// and scanline flood fill over the raw pixel buffer. Game rules, scoring,
// achievements, and persistence live in the calling layer and exchange only
// plain values (coordinates, colors, pixel snapshots) with this package.
//
// # Quick Start
//
//	import "github.com/gopaint/ink"
//
//	// Configure a 400x300 logical surface on a 2x display.
//	s, err := ink.Configure(400, 300, ink.WithDeviceScale(2))
//	if err != nil {
//		return err // no drawable surface; skip drawing this frame
//	}
//	s.Clear(ink.White)
//
//	// Map a raw pointer event and draw.
//	sample := ink.MapEvent(s, ev)
//	path := ink.NewStrokePath()
//	path.Append(sample)
//	...
//	s.RenderStroke(path, ink.Brush{Color: ink.Black, BaseWidth: 4, PressureSensitive: true})
//
//	// Paint-bucket tool.
//	s.FloodFill(120, 80, ink.RGBA8{R: 255, A: 255}, 32)
//
// # Coordinate System
//
// All public entry points take logical (CSS) coordinates with the origin at
// the top-left, X increasing right and Y increasing down. The surface scales
// to physical pixels internally using its device scale (DPR), so callers
// never see device density.
//
// # Concurrency
//
// All operations are synchronous and complete before returning. A Surface is
// not safe for concurrent use; drive it from a single goroutine, which is the
// natural shape of an input-event pipeline.
package ink

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
