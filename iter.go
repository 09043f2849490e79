package dvec

import "iter"

// All returns an iterator over index/value pairs in index order.
//
// Like Traverse, it walks the elements present when iteration starts.
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if v.Len() == 0 {
			return
		}
		for i, x := range v.data[:v.size] {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from the last element
// to the first.
func (v *Vector) Backward() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if v.Len() == 0 {
			return
		}
		data := v.data[:v.size]
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}
