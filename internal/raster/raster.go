// Package raster paints round-capped line segments directly into a pixel
// target. It is the painting backend for pressure-sensitive strokes: each
// segment of a smoothed stroke is rendered as a "capsule" (a thick line with
// hemispherical ends), so consecutive segments of differing width meet in
// seamless round joins.
//
// Coverage is hard-edged: a pixel is painted when its center lies within the
// capsule. Deterministic byte-exact output keeps flood-fill region matching
// predictable, which matters more to the drawing games than edge smoothing.
package raster

import "math"

// Color is an 8-bit RGBA quadruple in buffer byte order.
type Color struct {
	R, G, B, A uint8
}

// Point is a position in the target's pixel space.
type Point struct {
	X, Y float64
}

// Target is the minimal pixel sink the painter needs. SetPixel8 must ignore
// out-of-bounds coordinates.
type Target interface {
	Width() int
	Height() int
	SetPixel8(x, y int, c Color)
}

// Capsule paints the set of pixels whose centers lie within width/2 of the
// segment p0-p1. A zero-length segment degenerates to a filled disc, which
// is how isolated round caps are produced.
func Capsule(dst Target, p0, p1 Point, width float64, c Color) {
	if width <= 0 {
		return
	}
	r := width / 2

	x0 := int(math.Floor(math.Min(p0.X, p1.X) - r))
	x1 := int(math.Ceil(math.Max(p0.X, p1.X) + r))
	y0 := int(math.Floor(math.Min(p0.Y, p1.Y) - r))
	y1 := int(math.Ceil(math.Max(p0.Y, p1.Y) + r))

	// Clip the scan window to the target up front so huge off-surface
	// segments cost nothing.
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= dst.Width() {
		x1 = dst.Width() - 1
	}
	if y1 >= dst.Height() {
		y1 = dst.Height() - 1
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	lenSq := dx*dx + dy*dy
	rSq := r * r

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// Pixel center.
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			if distSqToSegment(px, py, p0, p1, dx, dy, lenSq) <= rSq {
				dst.SetPixel8(x, y, c)
			}
		}
	}
}

// distSqToSegment returns the squared distance from (px, py) to the segment
// p0-p1. dx, dy and lenSq are precomputed from the segment.
func distSqToSegment(px, py float64, p0, p1 Point, dx, dy, lenSq float64) float64 {
	if lenSq == 0 {
		ex := px - p0.X
		ey := py - p0.Y
		return ex*ex + ey*ey
	}
	t := ((px-p0.X)*dx + (py-p0.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	ex := px - (p0.X + t*dx)
	ey := py - (p0.Y + t*dy)
	return ex*ex + ey*ey
}

// Polyline paints consecutive capsules through the given points with a
// single width. Overlapping capsules at shared endpoints give round joins
// for free.
func Polyline(dst Target, pts []Point, width float64, c Color) {
	for i := 1; i < len(pts); i++ {
		Capsule(dst, pts[i-1], pts[i], width, c)
	}
}
