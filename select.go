package rsdict

import (
	"fmt"

	"github.com/arloliu/rsdict/errs"
	"github.com/arloliu/rsdict/internal/bitops"
	"github.com/arloliu/rsdict/internal/enumcode"
)

// Select returns the position of the k-th (zero-based) occurrence of bit.
//
// Returns errs.ErrNotFound when k >= CountOnes() (resp. CountZeros()).
func (d *RsDict) Select(k uint64, bit bool) (uint64, error) {
	var (
		pos uint64
		ok  bool
	)
	if bit {
		pos, ok = d.Select1(k)
	} else {
		pos, ok = d.Select0(k)
	}
	if !ok {
		return 0, fmt.Errorf("select %v #%d: %w", bit, k, errs.ErrNotFound)
	}

	return pos, nil
}

// Select1 returns the position of the k-th (zero-based) one bit, or false when
// k >= CountOnes().
func (d *RsDict) Select1(k uint64) (uint64, bool) {
	if k >= d.numOnes {
		return 0, false
	}
	if committed := d.committedOnes(); k >= committed {
		return d.tailStart() + uint64(bitops.SelectInWord(d.last.bits, uint(k-committed))), true
	}

	lblock := d.findLargeBlock(k, d.selectOneInds, d.onesBefore)
	lb := d.largeBlocks[lblock]
	sblock := lblock * SmallBlockPerLargeBlock
	pointer := lb.pointer
	remain := k - lb.rank

	for {
		class := d.sbClasses[sblock]
		if remain < uint64(class) {
			break
		}
		remain -= uint64(class)
		pointer += uint64(enumcode.CodeLength[class])
		sblock++
	}

	word := d.decodeBlock(sblock, pointer)

	return sblock*SmallBlockSize + uint64(bitops.SelectInWord(word, uint(remain))), true
}

// Select0 returns the position of the k-th (zero-based) zero bit, or false when
// k >= CountZeros().
func (d *RsDict) Select0(k uint64) (uint64, bool) {
	if k >= d.numZeros {
		return 0, false
	}
	if committed := d.numZeros - d.last.numZeros; k >= committed {
		// bits past Len() are zero in last.bits, so its complement has spare
		// ones above the tail; the k-th zero is found before reaching them
		return d.tailStart() + uint64(bitops.SelectInWord(^d.last.bits, uint(k-committed))), true
	}

	lblock := d.findLargeBlock(k, d.selectZeroInds, d.zerosBefore)
	sblock := lblock * SmallBlockPerLargeBlock
	pointer := d.largeBlocks[lblock].pointer
	remain := k - d.zerosBefore(lblock)

	for {
		class := d.sbClasses[sblock]
		zeros := SmallBlockSize - uint64(class)
		if remain < zeros {
			break
		}
		remain -= zeros
		pointer += uint64(enumcode.CodeLength[class])
		sblock++
	}

	word := d.decodeBlock(sblock, pointer)

	return sblock*SmallBlockSize + uint64(bitops.SelectInWord(^word, uint(remain))), true
}

func (d *RsDict) onesBefore(lblock uint64) uint64 {
	return d.largeBlocks[lblock].rank
}

func (d *RsDict) zerosBefore(lblock uint64) uint64 {
	return lblock*LargeBlockSize - d.largeBlocks[lblock].rank
}

// findLargeBlock returns the last large block whose count before it is <= k.
//
// Sample i holds the large block containing occurrence i*SelectBlockSize, which
// bounds the answer from below, and sample i+1 bounds it from above. The k-th
// occurrence must lie in a committed block.
func (d *RsDict) findLargeBlock(k uint64, samples []uint64, countBefore func(uint64) uint64) uint64 {
	i := k / SelectBlockSize
	lo := samples[i]
	hi := uint64(len(d.largeBlocks))
	if i+1 < uint64(len(samples)) {
		hi = min(hi, samples[i+1]+1)
	}

	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if countBefore(mid) <= k {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}
