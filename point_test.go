package ink

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(q); got != Pt(2, 2) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.Distance(q); math.Abs(got-math.Sqrt(8)) > 1e-12 {
		t.Errorf("Distance = %v", got)
	}
}

func TestPoint_LerpMidpoint(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 20)

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got := p.Midpoint(q); got != Pt(5, 10) {
		t.Errorf("Midpoint = %v, want (5, 10)", got)
	}
}
