package bitset

import "testing"

func TestSet_AddHas(t *testing.T) {
	s := New(200)

	indices := []int{0, 1, 63, 64, 65, 127, 128, 199}
	for _, i := range indices {
		if s.Has(i) {
			t.Errorf("Has(%d) = true before Add", i)
		}
		s.Add(i)
		if !s.Has(i) {
			t.Errorf("Has(%d) = false after Add", i)
		}
	}

	if got := s.Count(); got != len(indices) {
		t.Errorf("Count = %d, want %d", got, len(indices))
	}
}

func TestSet_AddIdempotent(t *testing.T) {
	s := New(10)
	s.Add(3)
	s.Add(3)
	s.Add(3)
	if got := s.Count(); got != 1 {
		t.Errorf("Count after repeated Add = %d, want 1", got)
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := New(64)

	// Neither should panic nor affect state.
	s.Add(-1)
	s.Add(64)
	s.Add(1 << 20)

	if s.Has(-1) || s.Has(64) || s.Has(1<<20) {
		t.Error("out-of-range Has should report false")
	}
	if got := s.Count(); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
}

func TestSet_ZeroAndNegativeSize(t *testing.T) {
	for _, n := range []int{0, -5} {
		s := New(n)
		if s.Len() != 0 {
			t.Errorf("New(%d).Len() = %d, want 0", n, s.Len())
		}
		s.Add(0) // must not panic
		if s.Has(0) {
			t.Errorf("New(%d): Has(0) = true, want false", n)
		}
	}
}
