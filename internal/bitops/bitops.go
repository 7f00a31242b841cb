// Package bitops provides the word-level primitives shared by the block coder,
// the rank/select paths and the set-bit iterator.
package bitops

import "math/bits"

// ClearLowest returns x with its lowest set bit cleared. ClearLowest(0) is 0.
//
// The implementation is chosen once at startup from the detected CPU features;
// see capability_amd64.go. Both strategies return identical results for every input.
var ClearLowest = clearLowestArith

// clearLowestArith is the portable form. Compilers targeting BMI1 lower it to BLSR.
func clearLowestArith(x uint64) uint64 {
	return x & (x - 1)
}

// clearLowestTZ clears the bit found by TZCNT. A shift by 64 yields 0 in Go,
// so the zero word stays zero.
func clearLowestTZ(x uint64) uint64 {
	return x ^ (1 << uint(bits.TrailingZeros64(x)))
}

// LowMask returns a word with the low n bits set. n must be <= 64.
func LowMask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << n) - 1
}

// ClearBelow clears every bit of x below position n.
func ClearBelow(x uint64, n uint) uint64 {
	return x &^ LowMask(n)
}

// SelectInWord returns the position of the r-th (zero-based) set bit of x.
// The caller guarantees r < bits.OnesCount64(x).
func SelectInWord(x uint64, r uint) uint {
	for ; r > 0; r-- {
		x = ClearLowest(x)
	}

	return uint(bits.TrailingZeros64(x))
}
