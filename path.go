package ink

// StrokePath buffers the mapped samples of the current gesture, in arrival
// order. It is append-only while the gesture is live and reset when the
// gesture ends (pointer-up); there is no mid-gesture editing.
type StrokePath struct {
	samples []Sample
}

// NewStrokePath creates an empty gesture buffer.
func NewStrokePath() *StrokePath {
	return &StrokePath{}
}

// Append adds a sample to the end of the path.
func (p *StrokePath) Append(s Sample) {
	p.samples = append(p.samples, s)
}

// Len returns the number of buffered samples.
func (p *StrokePath) Len() int {
	return len(p.samples)
}

// At returns the i-th sample. The index must be in [0, Len).
func (p *StrokePath) At(i int) Sample {
	return p.samples[i]
}

// Last returns the most recent sample and true, or a zero sample and false
// when the path is empty.
func (p *StrokePath) Last() (Sample, bool) {
	if len(p.samples) == 0 {
		return Sample{}, false
	}
	return p.samples[len(p.samples)-1], true
}

// Reset clears the path for the next gesture, retaining capacity.
func (p *StrokePath) Reset() {
	p.samples = p.samples[:0]
}

// BoundingBox returns the logical bounding box of the raw samples, expanded
// by pad on every side. Callers use it for dirty-region redraw after a
// stroke. The second return value is false for an empty path.
func (p *StrokePath) BoundingBox(pad float64) (Rect, bool) {
	if len(p.samples) == 0 {
		return Rect{}, false
	}
	first := Pt(p.samples[0].X, p.samples[0].Y)
	box := NewRect(first, first)
	for _, s := range p.samples[1:] {
		box = box.Union(NewRect(Pt(s.X, s.Y), Pt(s.X, s.Y)))
	}
	return box.Expand(pad), true
}
