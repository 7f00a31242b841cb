package section

import (
	"encoding/binary"
	"testing"

	"github.com/arloliu/rsdict/errs"
	"github.com/arloliu/rsdict/format"
	"github.com/stretchr/testify/require"
)

func sampleHeader() *Header {
	h := NewHeader()
	h.Len = 10_000
	h.NumOnes = 4_321
	h.RawSize = 2_048
	h.StoredSize = 1_024
	h.Checksum = 0xDEADBEEFCAFEBABE

	return h
}

func TestHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		for _, c := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
			h := sampleHeader()
			h.Flag.SetCompression(c)
			if bigEndian {
				h.Flag.WithBigEndian()
			}

			data := h.Bytes()
			require.Len(t, data, HeaderSize)

			parsed, err := ParseHeader(data)
			require.NoError(t, err)
			require.Equal(t, *h, parsed)
			require.Equal(t, bigEndian, parsed.Flag.IsBigEndian())
			require.Equal(t, c, parsed.Flag.Compression())
		}
	}
}

func TestHeader_MagicIsAlwaysLittleEndian(t *testing.T) {
	h := sampleHeader()
	h.Flag.WithBigEndian()
	data := h.Bytes()

	require.Equal(t, Magic, binary.LittleEndian.Uint16(data[0:2]))
	require.Equal(t, h.Len, binary.BigEndian.Uint64(data[8:16]))
}

func TestHeader_ParseErrors(t *testing.T) {
	valid := sampleHeader().Bytes()

	t.Run("short", func(t *testing.T) {
		_, err := ParseHeader(valid[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

		var h Header
		require.ErrorIs(t, h.Parse(append(valid, 0)), errs.ErrInvalidHeaderSize)
	})

	t.Run("magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[0] ^= 0xFF
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("version", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[2] = Version + 1
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("reserved option bits", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[3] = 0x80
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrCorruptPayload)
	})

	t.Run("reserved bytes", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[6] = 1
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrCorruptPayload)
	})

	t.Run("compression", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[4] = 0x9
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("more ones than bits", func(t *testing.T) {
		h := sampleHeader()
		h.NumOnes = h.Len + 1
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrCorruptPayload)
	})
}

func TestFlag_Endianness(t *testing.T) {
	f := NewFlag()
	require.False(t, f.IsBigEndian())
	require.Equal(t, format.CompressionNone, f.Compression())

	f.WithBigEndian()
	require.True(t, f.IsBigEndian())
	require.Equal(t, binary.BigEndian, f.GetEndianEngine())

	f.WithLittleEndian()
	require.False(t, f.IsBigEndian())
	require.Equal(t, binary.LittleEndian, f.GetEndianEngine())
}
