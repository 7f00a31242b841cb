package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/rsdict/errs"
)

// Header is the fixed-size section at the start of a serialized dictionary.
type Header struct {
	// Len is the number of bits in the dictionary.
	Len uint64 // byte offset 8-15
	// NumOnes is the number of one bits.
	NumOnes uint64 // byte offset 16-23
	// RawSize is the payload size before compression.
	RawSize uint64 // byte offset 24-31
	// StoredSize is the payload size as stored after the header.
	StoredSize uint64 // byte offset 32-39
	// Checksum is the xxHash64 of the raw payload followed by Len and NumOnes
	// in little-endian byte order.
	Checksum uint64 // byte offset 40-47

	// Flag holds the options and compression type.
	Flag Flag // byte offset 3-4
}

// NewHeader creates a header for an uncompressed little-endian payload.
// Sizes, counts and checksum are filled in by the encoder.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse parses the header from data, which must be exactly HeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagic, ErrUnsupportedVersion or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if magic := binary.LittleEndian.Uint16(data[0:2]); magic != Magic {
		return fmt.Errorf("got %#04x: %w", magic, errs.ErrInvalidMagic)
	}
	if data[2] != Version {
		return fmt.Errorf("version %d: %w", data[2], errs.ErrUnsupportedVersion)
	}
	if data[5] != 0 || data[6] != 0 || data[7] != 0 {
		return fmt.Errorf("reserved header bytes set: %w", errs.ErrCorruptPayload)
	}

	h.Flag.Options = data[3]
	h.Flag.CompressionType = data[4]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Len = engine.Uint64(data[8:16])
	h.NumOnes = engine.Uint64(data[16:24])
	h.RawSize = engine.Uint64(data[24:32])
	h.StoredSize = engine.Uint64(data[32:40])
	h.Checksum = engine.Uint64(data[40:48])

	if h.NumOnes > h.Len {
		return fmt.Errorf("%d ones in %d bits: %w", h.NumOnes, h.Len, errs.ErrCorruptPayload)
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, Magic)
	dst = append(dst, Version, h.Flag.Options, h.Flag.CompressionType, 0, 0, 0)
	dst = engine.AppendUint64(dst, h.Len)
	dst = engine.AppendUint64(dst, h.NumOnes)
	dst = engine.AppendUint64(dst, h.RawSize)
	dst = engine.AppendUint64(dst, h.StoredSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseHeader parses a Header from the first HeaderSize bytes of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
