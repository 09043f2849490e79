package dvec

import (
	"fmt"
	"testing"
)

func BenchmarkPush(b *testing.B) {
	b.ReportAllocs()
	v := New()
	for i := 0; i < b.N; i++ {
		_ = v.Push(float64(i))
	}
}

func BenchmarkInsertFront(b *testing.B) {
	for _, n := range []int{16, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v := New(WithInitialCapacity(n + 1))
			for i := 0; i < n; i++ {
				_ = v.Push(float64(i))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = v.InsertAt(0, 1)
				_ = v.RemoveAt(0)
			}
		})
	}
}

func BenchmarkTraverse(b *testing.B) {
	v := New()
	for i := 0; i < 4096; i++ {
		_ = v.Push(float64(i))
	}
	var sum float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Traverse(func(x float64) { sum += x })
	}
	_ = sum
}

func BenchmarkMarshalBinary(b *testing.B) {
	for _, ct := range []CompressionType{CompressionNone, CompressionLZ4, CompressionZSTD} {
		b.Run(ct.String(), func(b *testing.B) {
			v := New(WithCompression(ct))
			for i := 0; i < 4096; i++ {
				_ = v.Push(float64(i % 16))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = v.MarshalBinary()
			}
		})
	}
}
