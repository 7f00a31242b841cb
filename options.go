package rsdict

import (
	"fmt"

	"github.com/arloliu/rsdict/endian"
	"github.com/arloliu/rsdict/errs"
	"github.com/arloliu/rsdict/format"
	"github.com/arloliu/rsdict/internal/options"
)

type encodeConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

func defaultEncodeConfig() *encodeConfig {
	return &encodeConfig{compression: format.CompressionNone}
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encodeConfig]

// WithCompression selects the codec applied to the payload. The default is
// format.CompressionNone.
func WithCompression(c format.CompressionType) EncodeOption {
	return options.New(func(cfg *encodeConfig) error {
		if !c.Valid() {
			return fmt.Errorf("compression %#02x: %w", uint8(c), errs.ErrInvalidCompression)
		}
		cfg.compression = c

		return nil
	})
}

// WithLittleEndian writes the payload in little-endian byte order (the default).
func WithLittleEndian() EncodeOption {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian writes the payload in big-endian byte order.
func WithBigEndian() EncodeOption {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.bigEndian = true
	})
}

// WithNativeEndian writes the payload in the host byte order.
func WithNativeEndian() EncodeOption {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.bigEndian = endian.IsNativeBigEndian()
	})
}
