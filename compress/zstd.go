package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/rsdict/errs"
)

// zstdMaxMemory caps the memory a pooled decoder may use for windows and DecodeAll output.
const zstdMaxMemory = 1 << 30

// ZstdCompressor compresses payloads with Zstandard.
//
// The implementation is klauspost/compress/zstd unless the package is built with
// cgo and the gozstd build tag, in which case valyala/gozstd is used. Both produce
// standard zstd frames, so payloads are interchangeable.
type ZstdCompressor struct{}

var (
	_ Codec             = (*ZstdCompressor)(nil)
	_ SizedDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// DecompressSized decompresses data that must expand to exactly size bytes.
//
// A frame declaring more than size bytes is rejected before decoding. Frames
// without a declared size are streamed and cut off one byte past size, so the
// output buffer only grows as far as the data actually expands.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if size < 0 {
		return nil, fmt.Errorf("zstd: negative size %d: %w", size, errs.ErrCorruptPayload)
	}

	var frame zstd.Header
	if err := frame.Decode(data); err == nil && frame.HasFCS && frame.FrameContentSize > uint64(size) {
		return nil, fmt.Errorf("zstd: frame declares %d bytes, expected %d: %w", frame.FrameContentSize, size, errs.ErrCorruptPayload)
	}

	out, err := c.decompressLimited(data, size)
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, fmt.Errorf("zstd: decompressed to %d bytes, expected %d: %w", len(out), size, errs.ErrCorruptPayload)
	}

	return out, nil
}
