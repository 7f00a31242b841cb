package rsdict

import (
	"encoding"
	"fmt"
	"math/bits"
	"slices"

	"github.com/arloliu/rsdict/compress"
	"github.com/arloliu/rsdict/endian"
	"github.com/arloliu/rsdict/errs"
	"github.com/arloliu/rsdict/format"
	"github.com/arloliu/rsdict/internal/bitops"
	"github.com/arloliu/rsdict/internal/bitpack"
	"github.com/arloliu/rsdict/internal/enumcode"
	"github.com/arloliu/rsdict/internal/hash"
	"github.com/arloliu/rsdict/internal/options"
	"github.com/arloliu/rsdict/internal/pool"
	"github.com/arloliu/rsdict/section"
)

var (
	_ encoding.BinaryMarshaler   = (*RsDict)(nil)
	_ encoding.BinaryUnmarshaler = (*RsDict)(nil)
)

// maxLen bounds the length accepted from a header so size arithmetic cannot overflow.
const maxLen = 1 << 60

// MarshalBinary encodes the dictionary uncompressed in little-endian byte order.
func (d *RsDict) MarshalBinary() ([]byte, error) {
	return d.Encode()
}

// UnmarshalBinary replaces d with the dictionary decoded from data.
func (d *RsDict) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*d = *decoded

	return nil
}

// Encode serializes the dictionary: a section.Header followed by the payload,
// compressed with the selected codec.
//
// Parameters:
//   - opts: WithCompression, WithLittleEndian, WithBigEndian, WithNativeEndian
//
// Returns:
//   - []byte: Newly allocated encoded bytes
//   - error: ErrInvalidCompression for a bad option, or a codec error
func (d *RsDict) Encode(opts ...EncodeOption) ([]byte, error) {
	cfg := defaultEncodeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("rsdict: %w", err)
	}

	h := section.NewHeader()
	h.Flag.SetCompression(cfg.compression)
	if cfg.bigEndian {
		h.Flag.WithBigEndian()
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(d.payloadSize())
	buf.B = d.appendPayload(buf.B, h.Flag.GetEndianEngine())
	raw := buf.Bytes()

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, fmt.Errorf("rsdict: %w", err)
	}
	stored, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("rsdict: %s compression: %w", cfg.compression, err)
	}

	h.Len = d.len
	h.NumOnes = d.numOnes
	h.RawSize = uint64(buf.Len())
	h.StoredSize = uint64(len(stored))
	h.Checksum = payloadChecksum(raw, d.len, d.numOnes)

	out := make([]byte, 0, section.HeaderSize+len(stored))
	out = h.AppendTo(out)
	out = append(out, stored...)

	return out, nil
}

// Decode parses data produced by Encode or MarshalBinary.
//
// The checksum and every structural invariant are verified, so queries on the
// result cannot index out of bounds.
//
// Returns:
//   - *RsDict: The decoded dictionary
//   - error: header errors from section, ErrChecksumMismatch or ErrCorruptPayload
func Decode(data []byte) (*RsDict, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("rsdict: %w", err)
	}
	if h.Len > maxLen || h.RawSize > maxPayloadSize(h.Len) {
		return nil, fmt.Errorf("rsdict: payload of %d bytes for %d bits: %w", h.RawSize, h.Len, errs.ErrCorruptPayload)
	}

	stored := data[section.HeaderSize:]
	if uint64(len(stored)) != h.StoredSize {
		return nil, fmt.Errorf("rsdict: stored payload is %d bytes, header says %d: %w", len(stored), h.StoredSize, errs.ErrCorruptPayload)
	}

	if h.Flag.Compression() == format.CompressionNone && h.RawSize != h.StoredSize {
		return nil, fmt.Errorf("rsdict: uncompressed payload of %d bytes, header says %d: %w", h.StoredSize, h.RawSize, errs.ErrCorruptPayload)
	}

	codec, err := compress.GetCodec(h.Flag.Compression())
	if err != nil {
		return nil, fmt.Errorf("rsdict: %w", err)
	}
	raw, err := compress.Decompress(codec, stored, int(h.RawSize))
	if err != nil {
		return nil, fmt.Errorf("rsdict: %w: %w", errs.ErrCorruptPayload, err)
	}
	if uint64(len(raw)) != h.RawSize {
		return nil, fmt.Errorf("rsdict: raw payload is %d bytes, header says %d: %w", len(raw), h.RawSize, errs.ErrCorruptPayload)
	}
	if payloadChecksum(raw, h.Len, h.NumOnes) != h.Checksum {
		return nil, fmt.Errorf("rsdict: %w", errs.ErrChecksumMismatch)
	}

	d, err := readPayload(raw, h.Flag.GetEndianEngine(), h.Len)
	if err != nil {
		return nil, fmt.Errorf("rsdict: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("rsdict: %w", err)
	}
	if d.numOnes != h.NumOnes {
		return nil, fmt.Errorf("rsdict: payload holds %d ones, header says %d: %w", d.numOnes, h.NumOnes, errs.ErrCorruptPayload)
	}

	return d, nil
}

// payloadChecksum hashes the raw payload together with the header counts, which
// the payload itself does not repeat.
func payloadChecksum(raw []byte, n, numOnes uint64) uint64 {
	h := hash.NewDigest()
	h.WriteBytes(raw)
	h.WriteUint64(n)
	h.WriteUint64(numOnes)

	return h.Sum64()
}

// payloadSize returns the exact raw payload size of d.
func (d *RsDict) payloadSize() int {
	return 8 + len(d.sbClasses) +
		8 + 8*len(d.sbIndices.Words()) +
		8 + 16*len(d.largeBlocks) +
		8 + 8*len(d.selectOneInds) +
		8 + 8*len(d.selectZeroInds) +
		8
}

// maxPayloadSize bounds the raw payload of any dictionary of n bits.
func maxPayloadSize(n uint64) uint64 {
	blocks := n / SmallBlockSize
	samples := n/SelectBlockSize + 1

	return 8 + blocks +
		8 + 8*(blocks+1) +
		8 + 16*(blocks/SmallBlockPerLargeBlock+1) +
		2*(8+8*samples) +
		8
}

// appendPayload writes, in order, each array prefixed by its element count:
// classes, code words (prefixed by the bit length), large blocks as
// (pointer, rank) pairs, one samples, zero samples; then the tail word.
func (d *RsDict) appendPayload(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint64(dst, uint64(len(d.sbClasses)))
	dst = append(dst, d.sbClasses...)

	dst = engine.AppendUint64(dst, d.sbIndices.Len())
	for _, w := range d.sbIndices.Words() {
		dst = engine.AppendUint64(dst, w)
	}

	dst = engine.AppendUint64(dst, uint64(len(d.largeBlocks)))
	for _, lb := range d.largeBlocks {
		dst = engine.AppendUint64(dst, lb.pointer)
		dst = engine.AppendUint64(dst, lb.rank)
	}

	dst = appendUint64s(dst, engine, d.selectOneInds)
	dst = appendUint64s(dst, engine, d.selectZeroInds)

	return engine.AppendUint64(dst, d.last.bits)
}

func appendUint64s(dst []byte, engine endian.EndianEngine, vs []uint64) []byte {
	dst = engine.AppendUint64(dst, uint64(len(vs)))
	for _, v := range vs {
		dst = engine.AppendUint64(dst, v)
	}

	return dst
}

type payloadReader struct {
	data   []byte
	engine endian.EndianEngine
	err    error
}

func (r *payloadReader) u64() uint64 {
	if r.err != nil {
		return 0
	}
	if len(r.data) < 8 {
		r.err = fmt.Errorf("truncated payload: %w", errs.ErrCorruptPayload)
		return 0
	}
	v := r.engine.Uint64(r.data)
	r.data = r.data[8:]

	return v
}

// count reads an element count and checks that many elements of elemSize bytes remain.
func (r *payloadReader) count(elemSize uint64) uint64 {
	return r.fits(r.u64(), elemSize)
}

func (r *payloadReader) fits(n, elemSize uint64) uint64 {
	if r.err == nil && n > uint64(len(r.data))/elemSize {
		r.err = fmt.Errorf("count %d exceeds remaining payload: %w", n, errs.ErrCorruptPayload)
		return 0
	}

	return n
}

func (r *payloadReader) u64s(n uint64) []uint64 {
	if r.err != nil || n == 0 {
		return nil
	}
	vs := make([]uint64, n)
	for i := range vs {
		vs[i] = r.u64()
	}

	return vs
}

func readPayload(raw []byte, engine endian.EndianEngine, n uint64) (*RsDict, error) {
	r := &payloadReader{data: raw, engine: engine}
	d := &RsDict{len: n}

	if numClasses := r.count(1); r.err == nil {
		d.sbClasses = slices.Clone(r.data[:numClasses])
		r.data = r.data[numClasses:]
	}

	codeBits := r.u64()
	numWords := codeBits / 64
	if codeBits%64 != 0 {
		numWords++
	}
	words := r.u64s(r.fits(numWords, 8))
	if r.err != nil {
		return nil, r.err
	}
	buf, err := bitpack.FromWords(words, codeBits)
	if err != nil {
		return nil, err
	}
	d.sbIndices = *buf

	numLarge := r.count(16)
	if r.err == nil && numLarge > 0 {
		d.largeBlocks = make([]largeBlock, numLarge)
		for i := range d.largeBlocks {
			d.largeBlocks[i] = largeBlock{pointer: r.u64(), rank: r.u64()}
		}
	}

	d.selectOneInds = r.u64s(r.count(8))
	d.selectZeroInds = r.u64s(r.count(8))
	d.last.bits = r.u64()

	if r.err != nil {
		return nil, r.err
	}
	if len(r.data) != 0 {
		return nil, fmt.Errorf("%d trailing payload bytes: %w", len(r.data), errs.ErrCorruptPayload)
	}

	return d, nil
}

// validate recomputes counts, checkpoints and select samples from the classes,
// codes and tail, and compares them with the decoded arrays. It fills in the
// derived counters.
func (d *RsDict) validate() error {
	if d.numBlocks() != d.len/SmallBlockSize {
		return fmt.Errorf("%d blocks for %d bits: %w", d.numBlocks(), d.len, errs.ErrCorruptPayload)
	}
	tailLen := uint(d.len % SmallBlockSize)
	if d.last.bits&^bitops.LowMask(tailLen) != 0 {
		return fmt.Errorf("tail bits set past length: %w", errs.ErrCorruptPayload)
	}
	if want := (d.numBlocks() + SmallBlockPerLargeBlock - 1) / SmallBlockPerLargeBlock; uint64(len(d.largeBlocks)) != want {
		return fmt.Errorf("%d large blocks, want %d: %w", len(d.largeBlocks), want, errs.ErrCorruptPayload)
	}

	var pointer, ones uint64
	var oneSamples, zeroSamples []uint64

	for b, class := range d.sbClasses {
		sblock := uint64(b)
		if class > SmallBlockSize {
			return fmt.Errorf("block %d has class %d: %w", b, class, errs.ErrCorruptPayload)
		}
		if sblock%SmallBlockPerLargeBlock == 0 {
			if lb := d.largeBlocks[sblock/SmallBlockPerLargeBlock]; lb.pointer != pointer || lb.rank != ones {
				return fmt.Errorf("large block %d checkpoint mismatch: %w", sblock/SmallBlockPerLargeBlock, errs.ErrCorruptPayload)
			}
		}

		width := enumcode.CodeLength[class]
		if pointer+uint64(width) > d.sbIndices.Len() {
			return fmt.Errorf("block %d code past end of stream: %w", b, errs.ErrCorruptPayload)
		}
		if code := d.sbIndices.Read(pointer, width); code >= enumcode.Binomial(SmallBlockSize, uint(class)) {
			return fmt.Errorf("block %d code %d out of range for class %d: %w", b, code, class, errs.ErrCorruptPayload)
		}

		lblock := sblock / SmallBlockPerLargeBlock
		oneSamples = appendSample(oneSamples, ones, uint64(class), lblock)
		zeroSamples = appendSample(zeroSamples, sblock*SmallBlockSize-ones, SmallBlockSize-uint64(class), lblock)

		pointer += uint64(width)
		ones += uint64(class)
	}
	if pointer != d.sbIndices.Len() {
		return fmt.Errorf("code stream has %d bits, blocks use %d: %w", d.sbIndices.Len(), pointer, errs.ErrCorruptPayload)
	}

	tailOnes := uint64(bits.OnesCount64(d.last.bits))
	tailBlock := d.numBlocks() / SmallBlockPerLargeBlock
	oneSamples = appendSample(oneSamples, ones, tailOnes, tailBlock)
	zeroSamples = appendSample(zeroSamples, d.tailStart()-ones, uint64(tailLen)-tailOnes, tailBlock)

	if !slices.Equal(oneSamples, d.selectOneInds) || !slices.Equal(zeroSamples, d.selectZeroInds) {
		return fmt.Errorf("select samples mismatch: %w", errs.ErrCorruptPayload)
	}

	d.numOnes = ones + tailOnes
	d.numZeros = d.len - d.numOnes
	d.last.numOnes = tailOnes
	d.last.numZeros = uint64(tailLen) - tailOnes

	return nil
}
