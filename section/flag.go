package section

import (
	"fmt"

	"github.com/arloliu/rsdict/endian"
	"github.com/arloliu/rsdict/errs"
	"github.com/arloliu/rsdict/format"
)

// Flag holds the option bits and compression type of a header.
type Flag struct {
	// Options is a packed field. Bit 0 is the endianness flag, 0 means
	// little-endian and 1 means big-endian. Bits 1-7 are reserved.
	Options uint8
	// CompressionType is the codec applied to the payload.
	CompressionType uint8
}

// NewFlag creates a Flag for an uncompressed little-endian payload.
func NewFlag() Flag {
	return Flag{CompressionType: uint8(format.CompressionNone)}
}

// IsBigEndian returns whether the payload is big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&OptionBigEndian != 0
}

// WithBigEndian marks the payload as big-endian.
func (f *Flag) WithBigEndian() {
	f.Options |= OptionBigEndian
}

// WithLittleEndian marks the payload as little-endian.
func (f *Flag) WithLittleEndian() {
	f.Options &^= OptionBigEndian
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the reserved bits and the compression type.
func (f Flag) Validate() error {
	if f.Options&OptionReservedMask != 0 {
		return fmt.Errorf("reserved option bits set (%#02x): %w", f.Options, errs.ErrCorruptPayload)
	}
	if !f.Compression().Valid() {
		return fmt.Errorf("compression type %#02x: %w", f.CompressionType, errs.ErrInvalidCompression)
	}

	return nil
}
