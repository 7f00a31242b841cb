package rsdict

import (
	"math/bits"

	"github.com/arloliu/rsdict/internal/bitpack"
	"github.com/arloliu/rsdict/internal/enumcode"
)

// largeBlock is the checkpoint taken before the first small block of a large block.
type largeBlock struct {
	pointer uint64 // bit offset of the first small block's code in sbIndices
	rank    uint64 // ones in all committed blocks before this large block
}

// lastBlock is the raw, not yet committed tail of the sequence.
type lastBlock struct {
	bits     uint64 // only the low Len()%64 bits are meaningful
	numOnes  uint64
	numZeros uint64
}

// RsDict is a compressed rank/select dictionary. The zero value is an empty
// dictionary ready to use.
type RsDict struct {
	len      uint64
	numOnes  uint64
	numZeros uint64

	// one class per committed small block, and the codes at CodeLength[class] bits each
	sbClasses []uint8
	sbIndices bitpack.Buffer

	largeBlocks    []largeBlock
	selectOneInds  []uint64 // large block holding the ones numbered 0, 4096, 8192, ...
	selectZeroInds []uint64 // same for zeros

	last lastBlock
}

// New returns an empty dictionary.
func New() *RsDict {
	return &RsDict{}
}

// NewWithCapacity returns an empty dictionary with storage reserved for about
// hint bits. The hint only avoids reallocations; the dictionary grows past it.
func NewWithCapacity(hint uint64) *RsDict {
	return &RsDict{
		sbClasses:      make([]uint8, 0, hint/SmallBlockSize),
		sbIndices:      *bitpack.NewBuffer(hint),
		largeBlocks:    make([]largeBlock, 0, hint/LargeBlockSize+1),
		selectOneInds:  make([]uint64, 0, hint/SelectBlockSize+1),
		selectZeroInds: make([]uint64, 0, hint/SelectBlockSize+1),
	}
}

// Len returns the number of bits pushed.
func (d *RsDict) Len() uint64 {
	return d.len
}

// CountOnes returns the number of one bits.
func (d *RsDict) CountOnes() uint64 {
	return d.numOnes
}

// CountZeros returns the number of zero bits.
func (d *RsDict) CountZeros() uint64 {
	return d.numZeros
}

// Push appends bit to the end of the sequence.
func (d *RsDict) Push(bit bool) {
	if bit {
		if d.numOnes%SelectBlockSize == 0 {
			d.selectOneInds = append(d.selectOneInds, d.len/LargeBlockSize)
		}
		d.last.bits |= 1 << (d.len % SmallBlockSize)
		d.last.numOnes++
		d.numOnes++
	} else {
		if d.numZeros%SelectBlockSize == 0 {
			d.selectZeroInds = append(d.selectZeroInds, d.len/LargeBlockSize)
		}
		d.last.numZeros++
		d.numZeros++
	}

	d.len++
	if d.len%SmallBlockSize == 0 {
		d.commitLastBlock()
	}
}

// PushWord appends the low n bits of word, least significant first. n is capped at 64.
// A full word pushed at a block boundary is committed directly as one block.
func (d *RsDict) PushWord(word uint64, n uint) {
	n = min(n, SmallBlockSize)
	if n == SmallBlockSize && d.len%SmallBlockSize == 0 {
		d.pushBlock(word)
		return
	}

	for i := range n {
		d.Push(word>>i&1 == 1)
	}
}

// PushRun appends n copies of bit. Block-aligned stretches are committed a
// whole block at a time.
func (d *RsDict) PushRun(bit bool, n uint64) {
	var word uint64
	if bit {
		word = ^uint64(0)
	}

	for n > 0 {
		if d.len%SmallBlockSize != 0 || n < SmallBlockSize {
			d.Push(bit)
			n--

			continue
		}

		d.pushBlock(word)
		n -= SmallBlockSize
	}
}

// pushBlock appends the 64 bits of word. d.len must be block aligned.
func (d *RsDict) pushBlock(word uint64) {
	ones := uint64(bits.OnesCount64(word))
	zeros := SmallBlockSize - ones
	lblock := d.len / LargeBlockSize

	d.selectOneInds = appendSample(d.selectOneInds, d.numOnes, ones, lblock)
	d.selectZeroInds = appendSample(d.selectZeroInds, d.numZeros, zeros, lblock)
	d.numOnes += ones
	d.numZeros += zeros
	d.last = lastBlock{bits: word, numOnes: ones, numZeros: zeros}

	d.len += SmallBlockSize
	d.commitLastBlock()
}

// appendSample appends lblock to samples when an occurrence numbered by a
// multiple of SelectBlockSize falls in [before, before+count). count is at most
// SmallBlockSize, so at most one does.
func appendSample(samples []uint64, before, count, lblock uint64) []uint64 {
	if count == 0 {
		return samples
	}
	if c := before % SelectBlockSize; c == 0 || c+count > SelectBlockSize {
		samples = append(samples, lblock)
	}

	return samples
}

// commitLastBlock codes the full tail block into the small block index and
// opens a new large block when the previous one is complete.
func (d *RsDict) commitLastBlock() {
	if len(d.sbClasses)%SmallBlockPerLargeBlock == 0 {
		d.largeBlocks = append(d.largeBlocks, largeBlock{
			pointer: d.sbIndices.Len(),
			rank:    d.numOnes - d.last.numOnes,
		})
	}

	class, code := enumcode.Encode(d.last.bits)
	d.sbClasses = append(d.sbClasses, class)
	d.sbIndices.Push(code, enumcode.CodeLength[class])
	d.last = lastBlock{}
}

// AllocSize returns the number of bytes held by the dictionary's arrays.
func (d *RsDict) AllocSize() int {
	return len(d.sbIndices.Words())*8 +
		len(d.largeBlocks)*16 +
		len(d.selectOneInds)*8 +
		len(d.selectZeroInds)*8 +
		len(d.sbClasses)
}

// numBlocks returns the number of committed small blocks.
func (d *RsDict) numBlocks() uint64 {
	return uint64(len(d.sbClasses))
}

// tailStart returns the position of the first bit of the tail block.
func (d *RsDict) tailStart() uint64 {
	return d.numBlocks() * SmallBlockSize
}

// committedOnes returns the ones stored in committed small blocks.
func (d *RsDict) committedOnes() uint64 {
	return d.numOnes - d.last.numOnes
}

// scanBlocks walks from the checkpoint of sblock's large block up to sblock and
// returns the code offset of sblock and the ones before it. sblock must be a
// committed block.
func (d *RsDict) scanBlocks(sblock uint64) (pointer, rank uint64) {
	lblock := sblock / SmallBlockPerLargeBlock
	lb := d.largeBlocks[lblock]
	pointer, rank = lb.pointer, lb.rank

	for _, class := range d.sbClasses[lblock*SmallBlockPerLargeBlock : sblock] {
		pointer += uint64(enumcode.CodeLength[class])
		rank += uint64(class)
	}

	return pointer, rank
}

// decodeBlock returns the raw word of committed block sblock whose code starts at pointer.
func (d *RsDict) decodeBlock(sblock, pointer uint64) uint64 {
	class := d.sbClasses[sblock]
	return enumcode.Decode(d.sbIndices.Read(pointer, enumcode.CodeLength[class]), class)
}
