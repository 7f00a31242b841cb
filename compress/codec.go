package compress

import (
	"fmt"

	"github.com/arloliu/rsdict/errs"
	"github.com/arloliu/rsdict/format"
)

// Compressor compresses a serialized dictionary payload.
//
// The returned slice is owned by the caller. The input slice is not modified,
// though the no-op codec returns it unchanged.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor. It returns an error when data is corrupted
// or was produced by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by codecs that need, or benefit from, the
// decompressed size up front. The payload header always records it.
//
// The size is untrusted. Output of any other length, and sizes the input cannot
// expand to, fail with errs.ErrCorruptPayload before a size-dependent allocation.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%s (%#02x): %w", compressionType, uint8(compressionType), errs.ErrInvalidCompression)
}

// Decompress decompresses data with codec, passing size along when the codec
// can use it.
func Decompress(codec Decompressor, data []byte, size int) ([]byte, error) {
	if sized, ok := codec.(SizedDecompressor); ok {
		return sized.DecompressSized(data, size)
	}

	return codec.Decompress(data)
}
