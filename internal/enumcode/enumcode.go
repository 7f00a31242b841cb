// Package enumcode implements the enumerative (combinatorial number system) coder
// used to compress 64-bit small blocks.
//
// A word with popcount k is identified by its class k and by its rank among all
// C(64, k) words of that popcount. The rank needs CodeLength[k] = ceil(log2(C(64, k)))
// bits, so a block costs close to its information-theoretic size instead of 64 bits.
//
// Set bit positions c1 < c2 < ... < ck map to the code sum(C(ci, i)) for i = 1..k.
// This is a bijection from the words of class k onto [0, C(64, k)).
package enumcode

import "math/bits"

// WordSize is the number of bits in a coded word.
const WordSize = 64

// binomial[n][k] holds C(n, k) for 0 <= k <= n <= 64. C(64, 32) < 2^61, so every
// entry fits in a uint64.
var binomial [WordSize + 1][WordSize + 1]uint64

// CodeLength[k] is the number of bits needed to store the code of a class-k word.
// CodeLength[0] and CodeLength[64] are zero since those classes hold a single word.
var CodeLength [WordSize + 1]uint8

func init() {
	for n := 0; n <= WordSize; n++ {
		binomial[n][0] = 1
		for k := 1; k <= n; k++ {
			binomial[n][k] = binomial[n-1][k-1] + binomial[n-1][k]
		}
	}

	for k := 0; k <= WordSize; k++ {
		CodeLength[k] = uint8(bits.Len64(binomial[WordSize][k] - 1))
	}
}

// Binomial returns C(n, k) for n, k <= 64, and 0 when k > n.
func Binomial(n, k uint) uint64 {
	if k > n || n > WordSize {
		return 0
	}

	return binomial[n][k]
}

// Encode returns the class (popcount) of word and its offset code.
// The code is always smaller than 2^CodeLength[class].
func Encode(word uint64) (class uint8, code uint64) {
	class = uint8(bits.OnesCount64(word))
	if class == 0 || class == WordSize {
		return class, 0
	}

	i := 1
	for word != 0 {
		pos := bits.TrailingZeros64(word)
		code += binomial[pos][i]
		word &= word - 1
		i++
	}

	return class, code
}

// Decode is the inverse of Encode. The result for a code outside [0, C(64, class))
// is unspecified.
func Decode(code uint64, class uint8) uint64 {
	switch class {
	case 0:
		return 0
	case WordSize:
		return ^uint64(0)
	}

	var word uint64
	k := int(class)
	for pos := WordSize - 1; k > 0; pos-- {
		if c := binomial[pos][k]; c <= code {
			word |= 1 << uint(pos)
			code -= c
			k--
		}
	}

	return word
}
