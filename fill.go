package ink

import (
	"math"

	"github.com/gopaint/ink/internal/bitset"
)

// refillEpsilon is the fixed per-channel threshold of the "already filled"
// check: when the seed pixel is this close to the fill color the fill is a
// no-op. Deliberately kept independent from the caller's tolerance — the
// two thresholds answer different questions (is there anything to do vs.
// what counts as the same region).
const refillEpsilon = 5

// FloodFill repaints the contiguous region around the seed point with the
// fill color — the paint-bucket tool. The seed is given in logical surface
// coordinates; tolerance is the per-channel absolute difference (for each of
// R, G, B and A independently) within which a pixel still counts as part of
// the seed's region.
//
// Degenerate inputs are silent no-ops rather than errors: a seed outside
// the buffer (clicking just off a drawable region is ordinary user
// behavior) and a region already within refillEpsilon of the fill color
// both leave the buffer untouched.
//
// The traversal is a scanline fill over an explicit stack with a visited
// bitmask sized to the pixel count, so each pixel is processed at most once
// and no recursion depth limits apply. The buffer is snapshotted once,
// mutated in memory, and written back in a single pass when the stack
// empties — a partially applied fill is never observable.
func (s *Surface) FloodFill(seedX, seedY float64, fill RGBA8, tolerance uint8) {
	w := s.pix.Width()
	h := s.pix.Height()

	px := int(math.Floor(seedX * s.scale))
	py := int(math.Floor(seedY * s.scale))
	if px < 0 || px >= w || py < 0 || py >= h {
		return
	}

	snapshot := s.pix.Clone()
	data := snapshot.Data()

	match := snapshot.Pixel8(px, py)
	if match.WithinTolerance(fill, refillEpsilon) {
		return
	}

	matches := func(x, y int) bool {
		i := (y*w + x) * 4
		return RGBA8{
			R: data[i], G: data[i+1], B: data[i+2], A: data[i+3],
		}.WithinTolerance(match, tolerance)
	}
	paint := func(x, y int) {
		i := (y*w + x) * 4
		data[i+0] = fill.R
		data[i+1] = fill.G
		data[i+2] = fill.B
		data[i+3] = fill.A
	}

	visited := bitset.New(w * h)
	stack := make([][2]int, 0, 64)
	stack = append(stack, [2]int{px, py})
	spans := 0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := p[0], p[1]

		if visited.Has(y*w+x) || !matches(x, y) {
			continue
		}

		// Extend to the maximal contiguous unvisited matching span on
		// this row.
		xl := x
		for xl > 0 && !visited.Has(y*w+xl-1) && matches(xl-1, y) {
			xl--
		}
		xr := x
		for xr < w-1 && !visited.Has(y*w+xr+1) && matches(xr+1, y) {
			xr++
		}

		for sx := xl; sx <= xr; sx++ {
			visited.Add(y*w + sx)
			paint(sx, y)
		}
		for sx := xl; sx <= xr; sx++ {
			if y > 0 && !visited.Has((y-1)*w+sx) && matches(sx, y-1) {
				stack = append(stack, [2]int{sx, y - 1})
			}
			if y < h-1 && !visited.Has((y+1)*w+sx) && matches(sx, y+1) {
				stack = append(stack, [2]int{sx, y + 1})
			}
		}
		spans++
	}

	// Single-pass writeback.
	copy(s.pix.Data(), data)

	Logger().Debug("flood fill complete",
		"seed_x", px, "seed_y", py, "spans", spans, "visited", visited.Count())
}
