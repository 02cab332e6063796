package grid

import "math/bits"

// DigitSet is a set of Sudoku digits 1-9 stored as a bitmask.
// Bit v represents digit v (bit 0 is unused).
type DigitSet uint16

const fullSet DigitSet = 0x3FE // bits 1..9

// FullSet returns the set containing every digit 1-9.
func FullSet() DigitSet { return fullSet }

// Add inserts v into the set. Zero is ignored.
func (s *DigitSet) Add(v uint8) {
	if v == 0 {
		return
	}
	*s |= 1 << v
}

// Discard removes v from the set. Removing an absent digit or zero is a no-op.
func (s *DigitSet) Discard(v uint8) {
	if v == 0 {
		return
	}
	*s &^= 1 << v
}

// Contains reports whether v is in the set.
func (s DigitSet) Contains(v uint8) bool {
	return v >= 1 && v <= 9 && s&(1<<v) != 0
}

// Len returns the number of digits in the set.
func (s DigitSet) Len() int { return bits.OnesCount16(uint16(s)) }

// Diff returns s with every digit of the given sets removed.
func (s DigitSet) Diff(others ...DigitSet) DigitSet {
	for _, o := range others {
		s &^= o
	}
	return s
}

// Values returns the digits in ascending order.
func (s DigitSet) Values() []uint8 {
	out := make([]uint8, 0, s.Len())
	for v := uint8(1); v <= 9; v++ {
		if s.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}
