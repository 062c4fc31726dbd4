package ink

import "testing"

var (
	white8 = RGBA8{R: 255, G: 255, B: 255, A: 255}
	red8   = RGBA8{R: 255, A: 255}
	blue8  = RGBA8{B: 255, A: 255}
	black8 = RGBA8{A: 255}
)

func whiteSurface(t *testing.T, w, h int, opts ...SurfaceOption) *Surface {
	t.Helper()
	opts = append(opts, WithBackground(white8))
	return mustConfigure(t, w, h, opts...)
}

// TestFloodFill_FillsWholeUniformBuffer verifies a uniform buffer is one
// region: a single seed repaints everything.
func TestFloodFill_FillsWholeUniformBuffer(t *testing.T) {
	s := whiteSurface(t, 20, 20)

	s.FloodFill(10, 10, red8, 32)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if got := s.Pixmap().Pixel8(x, y); got != red8 {
				t.Fatalf("pixel (%d,%d) = %v, want red", x, y, got)
			}
		}
	}
}

// TestFloodFill_Containment verifies the fill changes exactly the
// 4-connected region inside a closed boundary and nothing outside it.
func TestFloodFill_Containment(t *testing.T) {
	s := whiteSurface(t, 20, 20)
	pm := s.Pixmap()

	// Closed black rectangle border: (5,5)-(14,14).
	for i := 5; i <= 14; i++ {
		pm.SetPixel8(i, 5, black8)
		pm.SetPixel8(i, 14, black8)
		pm.SetPixel8(5, i, black8)
		pm.SetPixel8(14, i, black8)
	}

	s.FloodFill(10, 10, blue8, 0)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			got := pm.Pixel8(x, y)
			onBorder := (x == 5 || x == 14) && y >= 5 && y <= 14 ||
				(y == 5 || y == 14) && x >= 5 && x <= 14
			inside := x > 5 && x < 14 && y > 5 && y < 14

			switch {
			case onBorder:
				if got != black8 {
					t.Fatalf("border pixel (%d,%d) = %v, want black", x, y, got)
				}
			case inside:
				if got != blue8 {
					t.Fatalf("interior pixel (%d,%d) = %v, want blue", x, y, got)
				}
			default:
				if got != white8 {
					t.Fatalf("exterior pixel (%d,%d) = %v, want white", x, y, got)
				}
			}
		}
	}
}

// TestFloodFill_Idempotent verifies filling twice with the same color gives
// the same buffer as filling once.
func TestFloodFill_Idempotent(t *testing.T) {
	s := whiteSurface(t, 30, 30)

	s.FloodFill(15, 15, red8, 32)
	once := s.Pixmap().Clone()

	s.FloodFill(15, 15, red8, 32)
	if !s.Pixmap().Equal(once) {
		t.Error("second identical fill changed the buffer")
	}
}

// TestFloodFill_AlreadyFilledNoOp verifies the fixed 5-unit per-channel
// check: a region already within 5 of the fill color is left alone, even
// when the caller tolerance is 0.
func TestFloodFill_AlreadyFilledNoOp(t *testing.T) {
	nearRed := RGBA8{R: 250, A: 255}
	s := mustConfigure(t, 10, 10, WithBackground(nearRed))

	before := s.Pixmap().Clone()
	s.FloodFill(5, 5, red8, 0)

	if !s.Pixmap().Equal(before) {
		t.Error("fill of an already-matching region changed the buffer")
	}
}

// TestFloodFill_OutOfBoundsSeed verifies out-of-range seeds leave the
// buffer byte-for-byte unchanged.
func TestFloodFill_OutOfBoundsSeed(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"negative x", -1, 5},
		{"negative y", 5, -0.5},
		{"past width", 10, 5},
		{"past height", 5, 10},
		{"far outside", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := whiteSurface(t, 10, 10)
			before := s.Pixmap().Clone()

			s.FloodFill(tt.x, tt.y, red8, 32)

			if !s.Pixmap().Equal(before) {
				t.Error("out-of-bounds seed modified the buffer")
			}
		})
	}
}

// TestFloodFill_SinglePixelRegion verifies a fully disconnected single-pixel
// region fills exactly that pixel.
func TestFloodFill_SinglePixelRegion(t *testing.T) {
	s := whiteSurface(t, 9, 9)
	pm := s.Pixmap()

	// One black pixel surrounded by white; seed it with tolerance 0.
	pm.SetPixel8(4, 4, black8)

	s.FloodFill(4, 4, blue8, 0)

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			want := white8
			if x == 4 && y == 4 {
				want = blue8
			}
			if got := pm.Pixel8(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestFloodFill_PerChannelTolerance verifies tolerance is applied per
// channel independently, not as a combined distance: each channel may drift
// by up to the tolerance on its own.
func TestFloodFill_PerChannelTolerance(t *testing.T) {
	seed := RGBA8{R: 100, G: 100, B: 100, A: 255}
	near := RGBA8{R: 132, G: 68, B: 100, A: 255} // +32, -32, 0: every channel within 32
	far := RGBA8{R: 133, G: 100, B: 100, A: 255} // one channel off by 33

	s := mustConfigure(t, 3, 1, WithBackground(seed))
	pm := s.Pixmap()
	pm.SetPixel8(1, 0, near)
	pm.SetPixel8(2, 0, far)

	s.FloodFill(0, 0, blue8, 32)

	if got := pm.Pixel8(0, 0); got != blue8 {
		t.Errorf("seed pixel = %v, want blue", got)
	}
	if got := pm.Pixel8(1, 0); got != blue8 {
		t.Errorf("within-tolerance pixel = %v, want blue", got)
	}
	if got := pm.Pixel8(2, 0); got != far {
		t.Errorf("out-of-tolerance pixel = %v, want unchanged", got)
	}
}

// TestFloodFill_DoesNotLeakDiagonally verifies connectivity is 4-way: a
// diagonal gap does not admit the fill.
func TestFloodFill_DoesNotLeakDiagonally(t *testing.T) {
	s := whiteSurface(t, 4, 4)
	pm := s.Pixmap()

	// Black diagonal wall.
	pm.SetPixel8(0, 1, black8)
	pm.SetPixel8(1, 0, black8)

	s.FloodFill(0, 0, red8, 0)

	if got := pm.Pixel8(0, 0); got != red8 {
		t.Errorf("seed corner = %v, want red", got)
	}
	// (1,1) touches (0,0) only diagonally; it must stay white.
	if got := pm.Pixel8(1, 1); got != white8 {
		t.Errorf("diagonal neighbor = %v, want white", got)
	}
}

// TestFloodFill_SeedScalesWithDPR verifies the logical seed converts to
// physical coordinates through the device scale.
func TestFloodFill_SeedScalesWithDPR(t *testing.T) {
	s := mustConfigure(t, 10, 10, WithDeviceScale(2), WithBackground(white8))
	pm := s.Pixmap()

	// Wall splitting the 20x20 physical buffer at x=10 (logical 5).
	for y := 0; y < 20; y++ {
		pm.SetPixel8(10, y, black8)
	}

	// Logical seed (2, 2) lands in the left half.
	s.FloodFill(2, 2, red8, 0)

	if got := pm.Pixel8(4, 4); got != red8 {
		t.Errorf("left half = %v, want red", got)
	}
	if got := pm.Pixel8(15, 4); got != white8 {
		t.Errorf("right half = %v, want white", got)
	}
}
