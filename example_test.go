package dvec_test

import (
	"fmt"
	"log"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/dvec"
)

// Example demonstrates the basic push/insert/remove cycle.
func Example() {
	v := dvec.New()
	defer v.Destroy()

	for _, x := range []float64{1, 2, 3} {
		if err := v.Push(x); err != nil {
			log.Fatal(err)
		}
	}
	if err := v.InsertAt(1, 9); err != nil {
		log.Fatal(err)
	}
	fmt.Println(v, v.Len(), v.Cap())

	_ = v.RemoveAt(0)
	last, _ := v.Last()
	fmt.Println(v, last)

	v.Pop()
	fmt.Println(v)
	// Output:
	// [1 9 2 3] 4 4
	// [9 2 3] 3
	// [9 2]
}

// ExampleVector_CopyTo shows that copies never share storage.
func ExampleVector_CopyTo() {
	src, _ := dvec.FromSlice([]float64{1, 2, 3})
	dst := dvec.New()

	if err := src.CopyTo(dst); err != nil {
		log.Fatal(err)
	}
	_ = src.Set(0, 100)

	fmt.Println(src, dst)
	fmt.Println(src.CopyTo(src))
	// Output:
	// [100 2 3] [1 2 3]
	// dvec: source and destination are the same instance
}

// ExampleTraverseContext passes an accumulator to every visit.
func ExampleTraverseContext() {
	v, _ := dvec.FromSlice([]float64{1.5, 2.5, 3})

	type stats struct {
		n   int
		sum float64
	}
	s := &stats{}

	dvec.TraverseContext(v, s, func(s *stats, x float64) {
		s.n++
		s.sum += x
	})
	fmt.Println(s.n, s.sum)
	// Output: 3 7
}

// ExampleVector_RemoveMany removes all negative values in one pass.
func ExampleVector_RemoveMany() {
	v, _ := dvec.FromSlice([]float64{3, -1, 4, -1, 5})

	negatives, err := v.Positions(func(x float64) bool { return x < 0 })
	if err != nil {
		log.Fatal(err)
	}
	negatives.Or(roaring.BitmapOf(100)) // out of range, ignored

	removed, _ := v.RemoveMany(negatives)
	fmt.Println(removed, v)
	// Output: 2 [3 4 5]
}

// ExampleVector_MarshalBinary round-trips a ZSTD-compressed vector.
func ExampleVector_MarshalBinary() {
	v, _ := dvec.FromSlice([]float64{0, 0, 0, 0, 0, 0, 0, 0}, dvec.WithCompression(dvec.CompressionZSTD))

	b, err := v.MarshalBinary()
	if err != nil {
		log.Fatal(err)
	}

	var out dvec.Vector
	if err := out.UnmarshalBinary(b); err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Equal(v), out.Len())
	// Output: true 8
}
