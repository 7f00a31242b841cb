// Package rsdict provides a compressed rank/select dictionary over a growing bit sequence.
//
// An RsDict stores bits appended with Push and answers, in near-constant time:
//
//   - Rank(pos, bit): how many times bit occurs in the first pos positions
//   - Select1(k) / Select0(k): the position of the k-th (zero-based) one or zero
//   - Iter / IterInRange: the positions of set bits, in ascending order
//
// # Compression
//
// The sequence is cut into 64-bit small blocks. Each committed block is stored as
// its popcount (the class) plus an enumerative code: the rank of the block among
// all 64-bit words with that popcount, which needs only ceil(log2(C(64, class)))
// bits. Sparse or dense bitmaps therefore shrink well below one bit per position.
//
// Every 16 small blocks form a large block that checkpoints the cumulative one
// count and the bit offset into the code stream, so a query jumps to the large
// block and scans at most 15 class bytes. Select additionally samples the large
// block of every 4096th one and zero. The last, partially filled block is kept raw
// until it fills.
//
// # Usage
//
//	d := rsdict.New()
//	for _, b := range []bool{true, false, true, true, false, false, false, true} {
//	    d.Push(b)
//	}
//
//	d.CountOnes()           // 4
//	d.Rank(5, true)         // 3, nil
//	d.Select1(3)            // 7, true
//	slices.Collect(d.All()) // [0 2 3 7]
//
// # Concurrency
//
// An RsDict is built by a single goroutine. Once building stops, any number of
// goroutines may query and iterate it concurrently; none of the read paths mutate
// state. Pushing while other goroutines read is a data race.
//
// # Persistence
//
// MarshalBinary and Encode write a fixed header followed by the index arrays,
// optionally compressed with zstd, S2 or LZ4 (see WithCompression). Decode
// verifies the checksum and every structural invariant before returning.
package rsdict
