// Package compress provides the codecs applied to serialized dictionary payloads.
//
// A dictionary is already entropy-coded block by block, so general-purpose
// compression mostly pays off on the index arrays (large-block checkpoints and
// select samples) and on long runs of all-zero or all-one blocks. Supported codecs:
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio, klauspost/compress by default,
//     valyala/gozstd when built with cgo and the gozstd build tag
//   - S2 (format.CompressionS2): fast, klauspost/compress/s2
//   - LZ4 (format.CompressionLZ4): fastest decompression, pierrec/lz4 block format
//
// All codecs are stateless values and safe for concurrent use. Encoders and
// decoders that are expensive to build are pooled internally.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	stored, err := codec.Compress(payload)
package compress
