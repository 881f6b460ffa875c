package longnum

import "math/bits"

// Word is a single limb of a significand: 32 bits, big-endian within a
// significand's limb slice (index 0 holds the most significant bits).
type Word = uint32

const wordBits = 32

// addLimbs adds rhs and the incoming carry (0 or 1) into *lhs in place and
// returns the carry out (0 or 1), mirroring longnum.cpp's add_limbs: the
// C++ version widens to uint64_t to catch the overflow bit; bits.Add32 gives
// the same 33rd bit without the intermediate widening.
func addLimbs(lhs *Word, rhs Word, carry uint32) uint32 {
	sum, c := bits.Add32(*lhs, rhs, carry)
	*lhs = sum
	return c
}

// subLimbs subtracts rhs and the incoming borrow (0 or 1) from *lhs in
// place and returns the borrow out (0 or 1), mirroring longnum.cpp's
// sub_limbs (lhs < rhs || (lhs <= rhs && carry)).
func subLimbs(lhs *Word, rhs Word, borrow uint32) uint32 {
	diff, b := bits.Sub32(*lhs, rhs, borrow)
	*lhs = diff
	return b
}
