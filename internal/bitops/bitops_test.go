package bitops

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClearLowest_StrategiesAgree(t *testing.T) {
	fixed := []uint64{0, 1, 2, 3, 0x8000000000000000, ^uint64(0), 0xAAAAAAAAAAAAAAAA, 0x5555555555555555, 1 << 63, 1 << 32}
	for _, x := range fixed {
		require.Equal(t, clearLowestArith(x), clearLowestTZ(x), "x=%#x", x)
		require.Equal(t, clearLowestArith(x), ClearLowest(x), "x=%#x", x)
	}

	rng := rand.New(rand.NewSource(42))
	for range 100000 {
		x := rng.Uint64()
		require.Equal(t, clearLowestArith(x), clearLowestTZ(x))
	}
}

func TestClearLowest_DrainsWord(t *testing.T) {
	x := uint64(0xF0F0F0F0F0F0F0F0)
	count := 0
	for x != 0 {
		before := bits.OnesCount64(x)
		x = ClearLowest(x)
		require.Equal(t, before-1, bits.OnesCount64(x))
		count++
	}
	require.Equal(t, 32, count)
}

func TestLowMask(t *testing.T) {
	require.Equal(t, uint64(0), LowMask(0))
	require.Equal(t, uint64(1), LowMask(1))
	require.Equal(t, uint64(0xFF), LowMask(8))
	require.Equal(t, uint64(1<<63-1), LowMask(63))
	require.Equal(t, ^uint64(0), LowMask(64))
}

func TestClearBelow(t *testing.T) {
	require.Equal(t, ^uint64(0), ClearBelow(^uint64(0), 0))
	require.Equal(t, uint64(0xFFFFFFFFFFFFFF00), ClearBelow(^uint64(0), 8))
	require.Equal(t, uint64(1<<63), ClearBelow(^uint64(0), 63))
	require.Equal(t, uint64(0b1000), ClearBelow(0b1011, 2))
}

func TestSelectInWord(t *testing.T) {
	tests := []struct {
		name string
		x    uint64
		r    uint
		want uint
	}{
		{"first bit", 1, 0, 0},
		{"high bit", 1 << 63, 0, 63},
		{"second of pattern", 0b1011_0001, 1, 4},
		{"last of pattern", 0b1011_0001, 3, 7},
		{"all ones", ^uint64(0), 40, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SelectInWord(tt.x, tt.r))
		})
	}

	rng := rand.New(rand.NewSource(7))
	for range 2000 {
		x := rng.Uint64()
		r := uint(0)
		for pos := range uint(64) {
			if x&(1<<pos) == 0 {
				continue
			}
			require.Equal(t, pos, SelectInWord(x, r))
			r++
		}
	}
}
