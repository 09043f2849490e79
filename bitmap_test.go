package dvec

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositions(t *testing.T) {
	v := mustFromSlice(t, -1, 2, -3, 4, 5)

	rb, err := v.Positions(func(x float64) bool { return x < 0 })
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 2}, rb.ToArray())

	rb, err = New().Positions(func(float64) bool { return true })
	require.NoError(t, err)
	assert.True(t, rb.IsEmpty())
}

func TestRemoveMany(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		remove  []uint32
		want    []float64
		removed int
	}{
		{"none", []float64{1, 2, 3}, nil, []float64{1, 2, 3}, 0},
		{"first", []float64{1, 2, 3}, []uint32{0}, []float64{2, 3}, 1},
		{"last", []float64{1, 2, 3}, []uint32{2}, []float64{1, 2}, 1},
		{"scattered", []float64{0, 1, 2, 3, 4, 5, 6}, []uint32{1, 3, 4, 6}, []float64{0, 2, 5}, 4},
		{"all", []float64{1, 2}, []uint32{0, 1}, []float64{}, 2},
		{"past end ignored", []float64{1, 2, 3}, []uint32{1, 3, 1000}, []float64{1, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustFromSlice(t, tt.values...)
			capBefore := v.Cap()

			removed, err := v.RemoveMany(roaring.BitmapOf(tt.remove...))
			require.NoError(t, err)
			assert.Equal(t, tt.removed, removed)
			assert.Equal(t, tt.want, v.Values())
			assert.Equal(t, capBefore, v.Cap())
		})
	}

	t.Run("nil bitmap", func(t *testing.T) {
		v := mustFromSlice(t, 1)
		removed, err := v.RemoveMany(nil)
		require.NoError(t, err)
		assert.Zero(t, removed)
	})

	t.Run("matches repeated RemoveAt", func(t *testing.T) {
		a := mustFromSlice(t, 5, -1, 7, -2, -3, 8)
		b := a.Clone()

		rb, err := a.Positions(func(x float64) bool { return x < 0 })
		require.NoError(t, err)
		_, err = a.RemoveMany(rb)
		require.NoError(t, err)

		positions := rb.ToArray()
		for i := len(positions) - 1; i >= 0; i-- {
			require.NoError(t, b.RemoveAt(int(positions[i])))
		}
		assert.True(t, a.Equal(b))
		assert.Equal(t, []float64{5, 7, 8}, a.Values())
	})
}
