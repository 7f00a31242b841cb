package rsdict

import (
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/rsdict/internal/bitops"
	"github.com/arloliu/rsdict/internal/enumcode"
)

// Iterator yields the positions of set bits in ascending order.
//
// Blocks are decoded only when the iterator reaches them. The tail block is
// handled as one extra block after the last committed one. An Iterator reads
// its dictionary without copying it, so the dictionary must not be pushed to
// while the iterator is in use.
type Iterator struct {
	d *RsDict

	code     uint64 // undelivered bits of the current block
	ptr      uint64 // bit offset of the next block's code
	index    uint64 // current small block
	maxIndex uint64 // number of committed blocks; index == maxIndex is the tail
	end      uint64 // exclusive bound on yielded positions
	done     bool
}

// Iter returns an iterator over all set bit positions.
func (d *RsDict) Iter() *Iterator {
	return d.newIterator(0, math.MaxUint64)
}

// IterInRange returns an iterator over the set bit positions in [start, end).
//
// The iterator is positioned with one large block jump and a scan of at most one
// large block, regardless of start.
func (d *RsDict) IterInRange(start, end uint64) *Iterator {
	return d.newIterator(start, end)
}

// All returns a sequence of all set bit positions, for use with range.
func (d *RsDict) All() iter.Seq[uint64] {
	return d.Iter().All()
}

// Range returns a sequence of the set bit positions in [start, end).
func (d *RsDict) Range(start, end uint64) iter.Seq[uint64] {
	return d.IterInRange(start, end).All()
}

func (d *RsDict) newIterator(start, end uint64) *Iterator {
	it := &Iterator{
		d:        d,
		maxIndex: d.numBlocks(),
		end:      end,
	}
	if start >= d.len || start >= end {
		it.done = true
		return it
	}

	it.seek(start)

	return it
}

// seek loads the block holding start with the bits below start cleared, which
// is the state Next would reach after yielding every position before start.
func (it *Iterator) seek(start uint64) {
	d := it.d
	it.index = start / SmallBlockSize
	offset := uint(start % SmallBlockSize)

	if it.index == it.maxIndex {
		it.code = bitops.ClearBelow(d.last.bits, offset)
		it.ptr = d.sbIndices.Len()

		return
	}

	pointer, _ := d.scanBlocks(it.index)
	it.code = bitops.ClearBelow(d.decodeBlock(it.index, pointer), offset)
	it.ptr = pointer + uint64(enumcode.CodeLength[d.sbClasses[it.index]])
}

// Next returns the next set bit position, or false once the sequence is exhausted.
func (it *Iterator) Next() (uint64, bool) {
	if it.done {
		return 0, false
	}

	for it.code == 0 {
		it.index++
		if it.index > it.maxIndex {
			it.done = true
			return 0, false
		}
		if it.index == it.maxIndex {
			it.code = it.d.last.bits
			continue
		}

		class := it.d.sbClasses[it.index]
		if class == 0 {
			continue
		}
		width := enumcode.CodeLength[class]
		it.code = enumcode.Decode(it.d.sbIndices.Read(it.ptr, width), class)
		it.ptr += uint64(width)
	}

	t := uint64(bits.TrailingZeros64(it.code))
	it.code = bitops.ClearLowest(it.code)

	pos := it.index*SmallBlockSize + t
	if pos >= it.end {
		it.done = true
		return 0, false
	}

	return pos, true
}

// All adapts the remaining positions to a range-over-func sequence. Breaking out
// of the loop leaves the iterator positioned after the last yielded value.
func (it *Iterator) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			pos, ok := it.Next()
			if !ok || !yield(pos) {
				return
			}
		}
	}
}
