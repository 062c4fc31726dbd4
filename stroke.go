package ink

import (
	"github.com/gopaint/ink/internal/raster"
)

// Brush defines the style for rendering a stroke. Caps and joins are always
// round: variable-width segments meet without visible seams, which a butt
// cap cannot guarantee.
type Brush struct {
	// Color is the stroke color.
	Color RGBA

	// BaseWidth is the stroke width in logical pixels at default pressure.
	BaseWidth float64

	// PressureSensitive scales segment width with recorded pressure. When
	// false, every segment uses BaseWidth regardless of pressure.
	PressureSensitive bool
}

// DefaultBrush returns an opaque black 4-pixel pressure-sensitive brush,
// the starting tool in the drawing games.
func DefaultBrush() Brush {
	return Brush{
		Color:             Black,
		BaseWidth:         4,
		PressureSensitive: true,
	}
}

// WidthFor returns the rendered segment width for a pressure value.
// The formula BaseWidth * (pressure*1.5 + 0.25) keeps a floor of
// 0.25*BaseWidth even at zero pressure, so no segment becomes invisible,
// and reaches 1.75*BaseWidth at full pressure.
func (b Brush) WidthFor(pressure float64) float64 {
	if !b.PressureSensitive {
		return b.BaseWidth
	}
	return b.BaseWidth * (pressure*1.5 + 0.25)
}

// flattenTol is the maximum deviation, in physical pixels, of the painted
// polyline from the true quadratic segment.
const flattenTol = 0.25

// RenderStroke paints a smoothed, pressure-varying line through the path's
// samples.
//
// Paths with fewer than two samples are a no-op: a single tap draws nothing
// here, and dot-stamping is the caller's concern. The first segment is a
// straight line between the first two samples. Every later segment is a
// quadratic curve whose control point is the previous raw sample and whose
// endpoints are the midpoints of the surrounding samples — chordal
// smoothing, which removes pointer-jitter faceting without a spline fit.
func (s *Surface) RenderStroke(path *StrokePath, b Brush) {
	n := path.Len()
	if n < 2 {
		return
	}

	dst := &pixmapTarget{s.pix}
	col := brushColor(b.Color)
	dpr := s.scale

	// First segment: no prior point exists to curve from.
	s0, s1 := path.At(0), path.At(1)
	raster.Capsule(dst,
		physPoint(s0, dpr), physPoint(s1, dpr),
		b.WidthFor(s1.Pressure)*dpr, col)

	var flat []raster.Point
	for i := 2; i < n; i++ {
		prev2 := samplePoint(path.At(i - 2))
		prev := samplePoint(path.At(i - 1))
		cur := samplePoint(path.At(i))

		q := QuadBez{
			P0: prev2.Midpoint(prev),
			P1: prev,
			P2: prev.Midpoint(cur),
		}
		flat = flattenPhys(q, dpr, flat[:0])
		raster.Polyline(dst, flat, b.WidthFor(path.At(i).Pressure)*dpr, col)
	}
}

// pixmapTarget adapts Pixmap to the raster.Target interface.
type pixmapTarget struct {
	pix *Pixmap
}

func (t *pixmapTarget) Width() int  { return t.pix.Width() }
func (t *pixmapTarget) Height() int { return t.pix.Height() }

func (t *pixmapTarget) SetPixel8(x, y int, c raster.Color) {
	t.pix.SetPixel8(x, y, RGBA8{R: c.R, G: c.G, B: c.B, A: c.A})
}

func brushColor(c RGBA) raster.Color {
	b := c.Bytes()
	return raster.Color{R: b.R, G: b.G, B: b.B, A: b.A}
}

func samplePoint(s Sample) Point {
	return Point{X: s.X, Y: s.Y}
}

func physPoint(s Sample, dpr float64) raster.Point {
	return raster.Point{X: s.X * dpr, Y: s.Y * dpr}
}

// flattenPhys flattens a logical-space quadratic into physical-space
// polyline points, reusing dst's capacity.
func flattenPhys(q QuadBez, dpr float64, dst []raster.Point) []raster.Point {
	pts := q.Flatten(flattenTol/dpr, nil)
	for _, p := range pts {
		dst = append(dst, raster.Point{X: p.X * dpr, Y: p.Y * dpr})
	}
	return dst
}
