package rsdict_test

import (
	"fmt"
	"slices"

	"github.com/arloliu/rsdict"
	"github.com/arloliu/rsdict/format"
)

func Example() {
	d := rsdict.New()
	for _, bit := range []bool{true, false, true, true, false, false, false, true} {
		d.Push(bit)
	}

	rank, _ := d.Rank(5, true)
	pos, _ := d.Select1(3)
	zero, _ := d.Select0(0)

	fmt.Println(d.Len(), d.CountOnes(), rank, pos, zero)
	fmt.Println(slices.Collect(d.All()))
	// Output:
	// 8 4 3 7 1
	// [0 2 3 7]
}

func ExampleRsDict_IterInRange() {
	d := rsdict.New()
	d.PushRun(false, 1000)
	d.PushRun(true, 5)
	d.PushRun(false, 1000)

	it := d.IterInRange(1002, 2000)
	for {
		pos, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(pos)
	}
	// Output:
	// 1002
	// 1003
	// 1004
}

func ExampleDecode() {
	d := rsdict.New()
	d.PushRun(true, 10_000)
	d.Push(false)

	data, err := d.Encode(rsdict.WithCompression(format.CompressionZstd), rsdict.WithBigEndian())
	if err != nil {
		panic(err)
	}

	decoded, err := rsdict.Decode(data)
	if err != nil {
		panic(err)
	}

	pos, _ := decoded.Select0(0)
	fmt.Println(decoded.Equal(d), pos)
	// Output:
	// true 10000
}
