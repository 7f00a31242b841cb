// Package bitpack provides an append-only buffer of variable-width unsigned
// integers packed back to back into 64-bit words.
package bitpack

import (
	"fmt"

	"github.com/arloliu/rsdict/errs"
	"github.com/arloliu/rsdict/internal/bitops"
)

const wordBits = 64

// Buffer stores values of 0 to 64 bits each, least significant bit first.
//
// Values never straddle more than two words. Bits beyond Len() are always zero,
// so two buffers holding the same values have identical Words().
type Buffer struct {
	words  []uint64
	length uint64
}

// NewBuffer creates a buffer with room for capBits bits before it has to grow.
func NewBuffer(capBits uint64) *Buffer {
	return &Buffer{words: make([]uint64, 0, wordsFor(capBits))}
}

// FromWords rebuilds a buffer from previously exported words and bit length.
func FromWords(words []uint64, length uint64) (*Buffer, error) {
	if wordsFor(length) != uint64(len(words)) {
		return nil, fmt.Errorf("bitpack: %d words cannot hold exactly %d bits: %w", len(words), length, errs.ErrCorruptPayload)
	}
	if rem := length % wordBits; rem != 0 && words[len(words)-1]&^bitops.LowMask(uint(rem)) != 0 {
		return nil, fmt.Errorf("bitpack: bits set past length %d: %w", length, errs.ErrCorruptPayload)
	}

	return &Buffer{words: words, length: length}, nil
}

// Len returns the number of bits written.
func (b *Buffer) Len() uint64 {
	return b.length
}

// Words returns the backing words. The slice is owned by the buffer.
func (b *Buffer) Words() []uint64 {
	return b.words
}

// Push appends the low width bits of value. width must be <= 64.
func (b *Buffer) Push(value uint64, width uint8) {
	if width == 0 {
		return
	}

	value &= bitops.LowMask(uint(width))
	end := b.length + uint64(width)
	for uint64(len(b.words)) < wordsFor(end) {
		b.words = append(b.words, 0)
	}

	idx := b.length / wordBits
	shift := b.length % wordBits
	b.words[idx] |= value << shift
	if shift+uint64(width) > wordBits {
		b.words[idx+1] |= value >> (wordBits - shift)
	}
	b.length = end
}

// Get reads width bits starting at offset, checking the range against Len().
func (b *Buffer) Get(offset uint64, width uint8) (uint64, error) {
	if width > wordBits || offset+uint64(width) > b.length || offset+uint64(width) < offset {
		return 0, fmt.Errorf("bitpack: read of %d bits at %d, length %d: %w", width, offset, b.length, errs.ErrOutOfRange)
	}

	return b.Read(offset, width), nil
}

// Read is Get without the range check. The caller guarantees offset+width <= Len().
func (b *Buffer) Read(offset uint64, width uint8) uint64 {
	if width == 0 {
		return 0
	}

	idx := offset / wordBits
	shift := offset % wordBits
	v := b.words[idx] >> shift
	if shift+uint64(width) > wordBits {
		v |= b.words[idx+1] << (wordBits - shift)
	}

	return v & bitops.LowMask(uint(width))
}

func wordsFor(nbits uint64) uint64 {
	n := nbits / wordBits
	if nbits%wordBits != 0 {
		n++
	}

	return n
}
