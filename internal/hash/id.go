// Package hash wraps xxHash64 for dictionary content hashing and payload checksums.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates fixed-width integers into an xxHash64 state.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteUint64 feeds v in little-endian byte order.
func (d *Digest) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(d.buf[:], v)
	_, _ = d.d.Write(d.buf[:])
}

// WriteUint64s feeds every element of vs.
func (d *Digest) WriteUint64s(vs []uint64) {
	for _, v := range vs {
		d.WriteUint64(v)
	}
}

// WriteBytes feeds p as-is.
func (d *Digest) WriteBytes(p []byte) {
	_, _ = d.d.Write(p)
}

// Sum64 returns the current hash value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
