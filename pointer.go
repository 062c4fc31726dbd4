package ink

// DeviceKind identifies the input device that produced a pointer event.
type DeviceKind int

const (
	// DeviceMouse is a conventional mouse (no hardware pressure).
	DeviceMouse DeviceKind = iota
	// DeviceTouch is a finger on a touch screen (no hardware pressure).
	DeviceTouch
	// DevicePen is a pressure-reporting stylus.
	DevicePen
)

// DefaultPressure is substituted when the device reports no pressure
// (mouse, finger). 0.5 is the midpoint of the pressure range, so default
// strokes render at their base width.
const DefaultPressure = 0.5

// PointerEvent is a raw platform pointer event: viewport-relative
// coordinates, the surface's on-screen bounding rectangle at event time,
// and the hardware pressure if the device reports one.
type PointerEvent struct {
	// ClientX, ClientY are viewport-relative event coordinates.
	ClientX, ClientY float64

	// Bounds is the on-screen rectangle the surface is displayed in, in
	// viewport coordinates. Its size may differ from the surface's logical
	// size when layout stretches the element.
	Bounds Rect

	// Pressure is the hardware pressure in [0, 1]; zero means the device
	// reported none.
	Pressure float64

	// Kind identifies the producing device.
	Kind DeviceKind
}

// Sample is one mapped pointer sample in logical surface coordinates.
// Pressure is always in [0, 1]. Samples are ephemeral: produced per event,
// consumed immediately or buffered in a StrokePath for the current gesture.
type Sample struct {
	X, Y     float64
	Pressure float64
}

// MapEvent converts a raw pointer event into a sample in the surface's
// logical coordinate space.
//
// The per-axis scale factor is physical/DPR/displayed, which compensates for
// layout-driven stretching of the displayed element independently of the
// device pixel ratio. When the element is displayed at its logical size the
// factor is exactly 1.
//
// MapEvent never fails: events outside the surface bounds map to
// out-of-range coordinates (possibly negative), and callers clip or ignore
// them as appropriate. No clipping happens here.
func MapEvent(s *Surface, ev PointerEvent) Sample {
	displayedW := ev.Bounds.Width()
	displayedH := ev.Bounds.Height()

	scaleX := 1.0
	scaleY := 1.0
	if displayedW > 0 {
		scaleX = float64(s.PhysicalWidth()) / s.DeviceScale() / displayedW
	}
	if displayedH > 0 {
		scaleY = float64(s.PhysicalHeight()) / s.DeviceScale() / displayedH
	}

	pressure := ev.Pressure
	if pressure <= 0 {
		pressure = DefaultPressure
	} else if pressure > 1 {
		pressure = 1
	}

	return Sample{
		X:        (ev.ClientX - ev.Bounds.Min.X) * scaleX,
		Y:        (ev.ClientY - ev.Bounds.Min.Y) * scaleY,
		Pressure: pressure,
	}
}
