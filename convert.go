package rsdict

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/bits-and-blooms/bitset"

	"github.com/arloliu/rsdict/errs"
)

// FromBitmap builds a dictionary of length bits whose ones are the members of bm.
//
// Gaps between members are appended as zero runs, so sparse bitmaps are built
// a whole block at a time.
//
// Returns errs.ErrOutOfRange when bm holds a member >= length.
func FromBitmap(bm *roaring64.Bitmap, length uint64) (*RsDict, error) {
	if !bm.IsEmpty() && bm.Maximum() >= length {
		return nil, fmt.Errorf("rsdict: bitmap member %d does not fit in %d bits: %w", bm.Maximum(), length, errs.ErrOutOfRange)
	}

	d := NewWithCapacity(length)
	it := bm.Iterator()
	for it.HasNext() {
		pos := it.Next()
		d.PushRun(false, pos-d.len)
		d.Push(true)
	}
	d.PushRun(false, length-d.len)

	return d, nil
}

// ToBitmap returns a roaring64 bitmap holding the positions of all one bits.
func (d *RsDict) ToBitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	for pos := range d.All() {
		bm.Add(pos)
	}
	bm.RunOptimize()

	return bm
}

// FromBitSet builds a dictionary with the same length and bits as bs.
func FromBitSet(bs *bitset.BitSet) *RsDict {
	length := uint64(bs.Len())
	d := NewWithCapacity(length)

	for i, ok := bs.NextSet(0); ok && uint64(i) < length; i, ok = bs.NextSet(i + 1) {
		d.PushRun(false, uint64(i)-d.len)
		d.Push(true)
	}
	d.PushRun(false, length-d.len)

	return d
}

// ToBitSet returns a bitset of Len() bits with the dictionary's ones set.
func (d *RsDict) ToBitSet() *bitset.BitSet {
	bs := bitset.New(uint(d.len))
	for pos := range d.All() {
		bs.Set(uint(pos))
	}

	return bs
}
