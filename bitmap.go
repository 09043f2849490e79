package dvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/dvec/internal/conv"
)

// Positions returns the set of indices whose element satisfies pred, found by
// a single pass in index order.
func (v *Vector) Positions(pred func(x float64) bool) (*roaring.Bitmap, error) {
	rb := roaring.New()
	for i, x := range v.All() {
		if !pred(x) {
			continue
		}
		pos, err := conv.IntToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("Positions: %w", err)
		}
		rb.Add(pos)
	}
	return rb, nil
}

// RemoveMany removes every index in positions with one compaction pass and
// returns how many elements were removed. Positions at or past Len() are
// ignored. The relative order of the remaining elements is preserved and
// capacity is unchanged.
func (v *Vector) RemoveMany(positions *roaring.Bitmap) (int, error) {
	if err := v.checkLive("RemoveMany"); err != nil {
		return 0, err
	}
	if positions == nil || positions.IsEmpty() || v.size == 0 {
		return 0, nil
	}

	write, read := 0, 0
	it := positions.Iterator()
	for it.HasNext() {
		p, err := conv.Uint32ToInt(it.Next())
		if err != nil || p >= v.size {
			break // ascending, so nothing further is in range
		}
		write += copy(v.data[write:], v.data[read:p])
		read = p + 1
	}
	write += copy(v.data[write:], v.data[read:v.size])

	removed := v.size - write
	v.size = write
	return removed, nil
}
