package rsdict

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/rsdict/errs"
	"github.com/arloliu/rsdict/internal/bitops"
)

// Rank returns the number of occurrences of bit among the first pos positions.
//
// Returns errs.ErrOutOfRange when pos > Len().
func (d *RsDict) Rank(pos uint64, bit bool) (uint64, error) {
	if pos > d.len {
		return 0, fmt.Errorf("rank at %d, length %d: %w", pos, d.len, errs.ErrOutOfRange)
	}

	return bitCount(d.rankOnes(pos), pos, bit), nil
}

// Get returns the bit at pos.
//
// Returns errs.ErrOutOfRange when pos >= Len().
func (d *RsDict) Get(pos uint64) (bool, error) {
	if pos >= d.len {
		return false, fmt.Errorf("get at %d, length %d: %w", pos, d.len, errs.ErrOutOfRange)
	}

	sblock := pos / SmallBlockSize
	offset := pos % SmallBlockSize
	if sblock >= d.numBlocks() {
		return d.last.bits>>offset&1 == 1, nil
	}

	pointer, _ := d.scanBlocks(sblock)

	return d.decodeBlock(sblock, pointer)>>offset&1 == 1, nil
}

// BitAndRank returns the bit at pos together with Rank(pos, bit), decoding the
// containing block only once.
func (d *RsDict) BitAndRank(pos uint64) (bool, uint64, error) {
	if pos >= d.len {
		return false, 0, fmt.Errorf("bit and rank at %d, length %d: %w", pos, d.len, errs.ErrOutOfRange)
	}

	sblock := pos / SmallBlockSize
	offset := uint(pos % SmallBlockSize)

	var word, rank uint64
	if sblock >= d.numBlocks() {
		word, rank = d.last.bits, d.committedOnes()
	} else {
		var pointer uint64
		pointer, rank = d.scanBlocks(sblock)
		word = d.decodeBlock(sblock, pointer)
	}

	rank += uint64(bits.OnesCount64(word & bitops.LowMask(offset)))
	bit := word>>offset&1 == 1

	return bit, bitCount(rank, pos, bit), nil
}

// rankOnes counts ones in [0, pos). pos <= Len().
func (d *RsDict) rankOnes(pos uint64) uint64 {
	sblock := pos / SmallBlockSize
	offset := uint(pos % SmallBlockSize)

	if sblock >= d.numBlocks() {
		return d.committedOnes() + uint64(bits.OnesCount64(d.last.bits&bitops.LowMask(offset)))
	}

	pointer, rank := d.scanBlocks(sblock)
	if offset == 0 {
		return rank
	}

	return rank + uint64(bits.OnesCount64(d.decodeBlock(sblock, pointer)&bitops.LowMask(offset)))
}

// bitCount converts a one count over [0, pos) into the count of bit.
func bitCount(ones, pos uint64, bit bool) uint64 {
	if bit {
		return ones
	}

	return pos - ones
}
