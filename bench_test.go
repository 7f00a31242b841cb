package rsdict

import (
	"testing"

	"github.com/arloliu/rsdict/format"
)

const benchBits = 1 << 20

func benchDict() *RsDict {
	return build(randomBits(1234, benchBits, 2))
}

func BenchmarkPush(b *testing.B) {
	bits := randomBits(1234, benchBits, 2)

	b.ReportAllocs()
	for b.Loop() {
		d := NewWithCapacity(benchBits)
		for _, bit := range bits {
			d.Push(bit)
		}
	}
}

func BenchmarkRank(b *testing.B) {
	d := benchDict()
	rng := xorshift(5)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = d.Rank(rng.next()%benchBits, true)
	}
}

func BenchmarkSelect1(b *testing.B) {
	d := benchDict()
	rng := xorshift(6)
	ones := d.CountOnes()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = d.Select1(rng.next() % ones)
	}
}

func BenchmarkSelect0(b *testing.B) {
	d := benchDict()
	rng := xorshift(7)
	zeros := d.CountZeros()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = d.Select0(rng.next() % zeros)
	}
}

func BenchmarkIter(b *testing.B) {
	d := benchDict()

	b.ReportAllocs()
	for b.Loop() {
		for range d.All() {
		}
	}
}

func BenchmarkIterInRange(b *testing.B) {
	d := benchDict()
	rng := xorshift(8)

	b.ReportAllocs()
	for b.Loop() {
		start := rng.next() % benchBits
		for range d.Range(start, start+4096) {
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	d := benchDict()

	for _, c := range allCompressions {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = d.Encode(WithCompression(c))
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	d := benchDict()

	for _, c := range []format.CompressionType{format.CompressionNone, format.CompressionZstd} {
		data, err := d.Encode(WithCompression(c))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Decode(data)
			}
		})
	}
}
