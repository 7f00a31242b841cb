package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_AppendAndReset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.B = append(bb.B, "hello"...)
	assert.Equal(t, 5, bb.Len())
	assert.Equal(t, []byte("hello"), bb.Bytes())

	capBefore := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B), "Reset should keep capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough room", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, "abc"...)
		bb.Grow(100)
		assert.Equal(t, 3+PayloadBufferDefaultSize, cap(bb.B))
		assert.Equal(t, []byte("abc"), bb.Bytes())
	})

	t.Run("grows by at least the request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(PayloadBufferDefaultSize * 2)
		assert.GreaterOrEqual(t, cap(bb.B), PayloadBufferDefaultSize*2)
	})
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(128, 256)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, "data"...)
	p.Put(bb)

	again := p.Get()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len(), "pooled buffers must come back empty")

	p.Put(nil)
	p.Put(NewByteBuffer(1024)) // over threshold, dropped
}

func TestPayloadBuffer(t *testing.T) {
	bb := GetPayloadBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	PutPayloadBuffer(bb)
}
