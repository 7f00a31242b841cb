package rsdict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	bits := randomBits(51, 5000, 3)

	a := build(bits)
	b := NewWithCapacity(1 << 20)
	for _, bit := range bits {
		b.Push(bit)
	}

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.True(t, a.Equal(a))
	require.Equal(t, a.Hash(), b.Hash())

	var nilDict *RsDict
	require.False(t, a.Equal(nilDict))
	require.True(t, nilDict.Equal(nil))
}

func TestEqual_Differences(t *testing.T) {
	bits := randomBits(52, 3000, 2)
	base := build(bits)

	t.Run("flipped bit", func(t *testing.T) {
		flipped := append([]bool(nil), bits...)
		flipped[1234] = !flipped[1234]
		other := build(flipped)

		require.False(t, base.Equal(other))
		require.NotEqual(t, base.Hash(), other.Hash())
	})

	t.Run("flipped tail bit", func(t *testing.T) {
		flipped := append([]bool(nil), bits...)
		flipped[len(flipped)-1] = !flipped[len(flipped)-1]

		require.False(t, base.Equal(build(flipped)))
	})

	t.Run("extra zero", func(t *testing.T) {
		longer := build(bits)
		longer.Push(false)

		require.False(t, base.Equal(longer))
		require.NotEqual(t, base.Hash(), longer.Hash())
	})

	t.Run("prefix", func(t *testing.T) {
		require.False(t, base.Equal(build(bits[:2048])))
	})
}

func TestHash_ZeroRunsOfDifferentLength(t *testing.T) {
	a, b := New(), New()
	a.PushRun(false, 64)
	b.PushRun(false, 128)

	require.NotEqual(t, a.Hash(), b.Hash())
	require.Equal(t, New().Hash(), (&RsDict{}).Hash())
}
