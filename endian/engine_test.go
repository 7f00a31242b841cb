package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())

	require.False(t, IsBigEndian(GetLittleEndianEngine()))
	require.True(t, IsBigEndian(GetBigEndianEngine()))
}

func TestGetNativeEngine(t *testing.T) {
	engine := GetNativeEngine()
	require.Equal(t, IsNativeBigEndian(), IsBigEndian(engine))
}

func TestEngine_AppendRoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, 0x0102030405060708)
		buf = engine.AppendUint16(buf, 0xBEEF)

		require.Len(t, buf, 10)
		require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf[:8]))
		require.Equal(t, uint16(0xBEEF), engine.Uint16(buf[8:]))
	}
}
