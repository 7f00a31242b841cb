package rsdict

import (
	"bytes"
	"slices"

	"github.com/arloliu/rsdict/internal/hash"
)

// Equal reports whether d and other hold the same bit sequence.
//
// Every block is coded canonically, so equal sequences have identical classes,
// code streams and tails whatever capacity hints or push batching built them.
// Comparing those arrays is therefore a comparison of logical content.
func (d *RsDict) Equal(other *RsDict) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}

	return d.len == other.len &&
		d.numOnes == other.numOnes &&
		d.last.bits == other.last.bits &&
		d.sbIndices.Len() == other.sbIndices.Len() &&
		bytes.Equal(d.sbClasses, other.sbClasses) &&
		slices.Equal(d.sbIndices.Words(), other.sbIndices.Words())
}

// Hash returns an xxHash64 of the logical content. Dictionaries for which Equal
// reports true hash to the same value.
func (d *RsDict) Hash() uint64 {
	h := hash.NewDigest()
	h.WriteUint64(d.len)
	h.WriteBytes(d.sbClasses)
	h.WriteUint64s(d.sbIndices.Words())
	h.WriteUint64(d.last.bits)

	return h.Sum64()
}
