// Package bitset provides a fixed-size bitset used as the visited mask
// during a single flood-fill traversal. One bit per pixel keeps the mask at
// 1/32nd of the pixel count in memory, so even large surfaces stay cheap to
// mark.
package bitset

// Set is a fixed-capacity bitset. The zero value is not usable; create one
// with New.
type Set struct {
	words []uint64
	n     int
}

// New creates a bitset holding n bits, all unset.
func New(n int) *Set {
	if n < 0 {
		n = 0
	}
	return &Set{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

// Len returns the capacity of the set in bits.
func (s *Set) Len() int {
	return s.n
}

// Has reports whether bit i is set. Out-of-range indices report false.
func (s *Set) Has(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	return s.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// Add sets bit i. Out-of-range indices are ignored.
func (s *Set) Add(i int) {
	if i < 0 || i >= s.n {
		return
	}
	s.words[i>>6] |= 1 << (uint(i) & 63)
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	total := 0
	for _, w := range s.words {
		for ; w != 0; w &= w - 1 {
			total++
		}
	}
	return total
}
