package ink

import (
	"errors"
	"fmt"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ErrNoSurface indicates that no drawable surface could be produced for the
// requested configuration. Callers must treat this as fatal for the current
// operation only: skip drawing, never panic into the render path.
var ErrNoSurface = errors.New("ink: no drawable surface")

// Surface is a raster drawing target with a logical (CSS) size, a device
// scale (DPR), and a physical pixel buffer of round(logical * DPR) pixels
// per axis. All drawing entry points take logical units; the surface applies
// the device scale internally, so stroke and fill coordinates always line up
// with the pointer regardless of display density.
//
// A Surface is NOT thread-safe. Use it from a single goroutine, or apply
// external synchronization.
type Surface struct {
	logicalW int
	logicalH int
	scale    float64 // device pixel ratio
	pix      *Pixmap // physical pixels
}

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	scale      float64
	background *RGBA8
}

func defaultSurfaceOptions() surfaceOptions {
	// Device pixel ratio defaults to 1 when the environment reports none.
	return surfaceOptions{scale: 1}
}

// WithDeviceScale sets the device pixel ratio for the surface. Values at or
// below zero fall back to 1.
func WithDeviceScale(dpr float64) SurfaceOption {
	return func(o *surfaceOptions) {
		o.scale = dpr
	}
}

// WithBackground clears the new surface to the given color instead of
// leaving it transparent.
func WithBackground(c RGBA8) SurfaceOption {
	return func(o *surfaceOptions) {
		o.background = &c
	}
}

// Configure allocates a drawing surface for the given logical size.
// The physical buffer is sized to round(logical * DPR) per axis so one
// logical unit always covers DPR physical pixels.
//
// Configure must be called again (via Reconfigure) whenever the logical size
// or the device scale changes — a stale scale offsets strokes from the
// pointer, which is a correctness failure, not a cosmetic one.
func Configure(logicalW, logicalH int, opts ...SurfaceOption) (*Surface, error) {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		o.scale = 1
	}
	if logicalW <= 0 || logicalH <= 0 {
		return nil, fmt.Errorf("%w: logical size %dx%d", ErrNoSurface, logicalW, logicalH)
	}

	physW := int(math.Round(float64(logicalW) * o.scale))
	physH := int(math.Round(float64(logicalH) * o.scale))
	if physW <= 0 || physH <= 0 {
		return nil, fmt.Errorf("%w: physical size %dx%d at scale %v", ErrNoSurface, physW, physH, o.scale)
	}

	s := &Surface{
		logicalW: logicalW,
		logicalH: logicalH,
		scale:    o.scale,
		pix:      NewPixmap(physW, physH),
	}
	if o.background != nil {
		s.pix.Clear(*o.background)
	}

	Logger().Debug("surface configured",
		"logical_w", logicalW, "logical_h", logicalH,
		"scale", o.scale, "phys_w", physW, "phys_h", physH)
	return s, nil
}

// Reconfigure resizes the surface for a new logical size and device scale,
// preserving existing content by rescaling it into the new buffer. Call this
// on responsive resize or when the window moves to a different-density
// display.
func (s *Surface) Reconfigure(logicalW, logicalH int, dpr float64) error {
	if dpr <= 0 {
		dpr = 1
	}
	if logicalW <= 0 || logicalH <= 0 {
		return fmt.Errorf("%w: logical size %dx%d", ErrNoSurface, logicalW, logicalH)
	}

	physW := int(math.Round(float64(logicalW) * dpr))
	physH := int(math.Round(float64(logicalH) * dpr))
	if physW <= 0 || physH <= 0 {
		return fmt.Errorf("%w: physical size %dx%d at scale %v", ErrNoSurface, physW, physH, dpr)
	}

	next := NewPixmap(physW, physH)
	if s.pix.Width() > 0 && s.pix.Height() > 0 {
		src := s.pix.ToImage()
		dst := next.ToImage()
		xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		copy(next.data, dst.Pix)
	}

	s.logicalW = logicalW
	s.logicalH = logicalH
	s.scale = dpr
	s.pix = next

	Logger().Debug("surface reconfigured",
		"logical_w", logicalW, "logical_h", logicalH, "scale", dpr)
	return nil
}

// LogicalWidth returns the logical width in CSS pixels.
func (s *Surface) LogicalWidth() int {
	return s.logicalW
}

// LogicalHeight returns the logical height in CSS pixels.
func (s *Surface) LogicalHeight() int {
	return s.logicalH
}

// DeviceScale returns the device pixel ratio the surface was configured with.
func (s *Surface) DeviceScale() float64 {
	return s.scale
}

// PhysicalWidth returns the pixel buffer width in physical pixels.
func (s *Surface) PhysicalWidth() int {
	return s.pix.Width()
}

// PhysicalHeight returns the pixel buffer height in physical pixels.
func (s *Surface) PhysicalHeight() int {
	return s.pix.Height()
}

// Pixmap returns the surface's physical pixel buffer. The surface owns the
// buffer; callers must not retain the reference across drawing operations.
func (s *Surface) Pixmap() *Pixmap {
	return s.pix
}

// Clear fills the whole surface with a color.
func (s *Surface) Clear(c RGBA) {
	s.pix.Clear(c.Bytes())
}

// PixelAt samples the buffer color under a logical coordinate — the
// eyedropper for coloring games. The second return value is false when the
// coordinate is outside the surface.
func (s *Surface) PixelAt(logicalX, logicalY float64) (RGBA8, bool) {
	px := int(math.Floor(logicalX * s.scale))
	py := int(math.Floor(logicalY * s.scale))
	if px < 0 || px >= s.pix.Width() || py < 0 || py >= s.pix.Height() {
		return RGBA8{}, false
	}
	return s.pix.Pixel8(px, py), true
}
