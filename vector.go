package dvec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/dvec/internal/mem"
)

// Vector is a growable array of float64 values.
//
// The first Len() slots of the buffer hold the elements; the remaining
// Cap()-Len() slots are allocated but not part of the contents. The buffer is
// owned by exactly one Vector and is never shared, not even by CopyTo or Clone.
//
// A Vector is not safe for concurrent use.
//
// The zero value is an empty vector with no allocated slots and default
// options. New allocates InitialCapacity slots up front.
type Vector struct {
	data      []float64 // len(data) is the capacity
	size      int
	destroyed bool
	opts      options
}

// New creates an empty vector with InitialCapacity slots.
func New(opts ...Option) *Vector {
	v := &Vector{}
	v.Init(opts...)
	return v
}

// FromSlice creates a vector holding a copy of values.
func FromSlice(values []float64, opts ...Option) (*Vector, error) {
	v := New(opts...)
	if err := v.grow(len(values), 0); err != nil {
		return nil, err
	}
	copy(v.data, values)
	v.size = len(values)
	return v, nil
}

// Init (re)initializes v in place: empty, with a fresh buffer of the initial
// capacity. It also revives a destroyed vector.
func (v *Vector) Init(opts ...Option) {
	v.opts = applyOptions(opts)
	v.data = mem.AllocFloat64(v.opts.initialCapacity)
	v.size = 0
	v.destroyed = false
}

// Destroy releases the buffer and resets size and capacity to zero.
// Afterwards mutating operations return ErrDestroyed until Init is called.
func (v *Vector) Destroy() {
	if v == nil {
		return
	}
	v.data = nil
	v.size = 0
	v.destroyed = true
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector) IsEmpty() bool {
	return v.Len() == 0
}

// Destroyed reports whether Destroy has been called since the last Init.
func (v *Vector) Destroyed() bool {
	return v != nil && v.destroyed
}

// EnsureCapacity guarantees Cap() >= minCapacity.
//
// When growth is needed the new capacity is max(Cap()*GrowthFactor, minCapacity),
// capped by the maximum capacity. Elements keep their positions. Requests at
// or below the current capacity leave the buffer untouched.
func (v *Vector) EnsureCapacity(minCapacity int) error {
	if err := v.checkLive("EnsureCapacity"); err != nil {
		return err
	}
	return v.grow(minCapacity, v.size)
}

// grow reallocates the buffer when minCapacity exceeds it, carrying over the
// first keep elements. On error nothing is modified.
func (v *Vector) grow(minCapacity, keep int) error {
	oldCap := len(v.data)
	if minCapacity <= oldCap {
		return nil
	}

	maxCap := v.opts.maxCapacity
	if minCapacity > maxCap {
		err := &CapacityError{Requested: minCapacity, Max: maxCap}
		v.opts.logger.LogGrowFailed(minCapacity, maxCap, err)
		v.opts.metricsCollector.RecordGrowFailure(minCapacity)
		return err
	}

	var newCap int
	if oldCap <= maxCap/GrowthFactor {
		newCap = max(oldCap*GrowthFactor, minCapacity)
	} else {
		// Doubling would pass the budget; take what is left.
		newCap = maxCap
	}

	buf, err := allocate(v.data, keep, newCap)
	if err != nil {
		v.opts.logger.LogGrowFailed(newCap, maxCap, err)
		v.opts.metricsCollector.RecordGrowFailure(newCap)
		return err
	}

	v.data = buf
	v.opts.logger.LogGrow(oldCap, newCap, v.size)
	v.opts.metricsCollector.RecordGrow(oldCap, newCap)
	return nil
}

// allocate turns a runtime allocation panic into ErrCapacityExceeded.
func allocate(old []float64, keep, n int) (buf []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: allocating %d slots: %v", ErrCapacityExceeded, n, r)
		}
	}()
	return mem.Grow(old, keep, n), nil
}

// CopyTo replaces the contents of dst with a copy of v's elements.
//
// dst is grown as needed and keeps its own buffer and options. Slots of dst
// beyond the copied elements are left as they were. Copying a vector onto
// itself returns ErrSameInstance and changes nothing.
func (v *Vector) CopyTo(dst *Vector) error {
	if err := v.checkLive("CopyTo"); err != nil {
		return err
	}
	if dst == nil {
		v.invalid("CopyTo", ErrNilVector)
		return ErrNilVector
	}
	if dst == v {
		v.invalid("CopyTo", ErrSameInstance)
		return ErrSameInstance
	}
	if err := dst.checkLive("CopyTo"); err != nil {
		return err
	}

	// dst's old elements are overwritten, so none need carrying over.
	if err := dst.grow(v.size, 0); err != nil {
		return err
	}
	copy(dst.data, v.data[:v.size])
	dst.size = v.size
	return nil
}

// Clone returns an independent copy of v with the same capacity and options.
func (v *Vector) Clone() *Vector {
	if v == nil {
		return nil
	}
	c := &Vector{opts: v.opts}
	if v.opts.logger == nil {
		c.opts = applyOptions(nil)
	}
	c.data = mem.Grow(v.data, v.size, len(v.data))
	c.size = v.size
	return c
}

// Clear removes all elements. Capacity and buffer are kept for reuse.
func (v *Vector) Clear() {
	if v == nil {
		return
	}
	v.size = 0
}

// Push appends x.
func (v *Vector) Push(x float64) error {
	if err := v.checkLive("Push"); err != nil {
		return err
	}
	if err := v.grow(v.size+1, v.size); err != nil {
		return err
	}
	v.data[v.size] = x
	v.size++
	return nil
}

// Pop removes the last element and returns it. It reports false, and does
// nothing, when the vector is empty.
func (v *Vector) Pop() (float64, bool) {
	if v.Len() == 0 {
		return 0, false
	}
	v.size--
	return v.data[v.size], true
}

// Last returns the last element without removing it. It reports false when
// the vector is empty.
func (v *Vector) Last() (float64, bool) {
	if v.Len() == 0 {
		return 0, false
	}
	return v.data[v.size-1], true
}

// LastOrNaN returns the last element, or NaN when the vector is empty.
func (v *Vector) LastOrNaN() float64 {
	x, ok := v.Last()
	if !ok {
		return math.NaN()
	}
	return x
}

// InsertAt inserts x at min(pos, Len()), shifting later elements one slot to
// the right. Positions past the end append. A negative pos returns an
// *IndexError and changes nothing.
func (v *Vector) InsertAt(pos int, x float64) error {
	if err := v.checkLive("InsertAt"); err != nil {
		return err
	}
	if pos < 0 {
		return v.outOfRange("InsertAt", pos)
	}

	loc := min(pos, v.size)
	if err := v.grow(v.size+1, v.size); err != nil {
		return err
	}
	copy(v.data[loc+1:v.size+1], v.data[loc:v.size])
	v.data[loc] = x
	v.size++
	return nil
}

// RemoveAt removes the element at pos, shifting later elements one slot to the
// left. Capacity is never reduced.
//
// A pos outside [0, Len()) leaves the vector unchanged and returns an
// *IndexError wrapping ErrIndexOutOfRange. Callers treating this as a no-op
// may ignore it.
func (v *Vector) RemoveAt(pos int) error {
	if err := v.checkLive("RemoveAt"); err != nil {
		return err
	}
	if pos < 0 || pos >= v.size {
		return v.outOfRange("RemoveAt", pos)
	}

	copy(v.data[pos:v.size-1], v.data[pos+1:v.size])
	v.size--
	return nil
}

// At returns the element at i.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.Len() {
		return 0, &IndexError{Op: "At", Index: i, Size: v.Len()}
	}
	return v.data[i], nil
}

// Set overwrites the element at i.
func (v *Vector) Set(i int, x float64) error {
	if err := v.checkLive("Set"); err != nil {
		return err
	}
	if i < 0 || i >= v.size {
		return v.outOfRange("Set", i)
	}
	v.data[i] = x
	return nil
}

// Traverse calls visit once per element, in index order.
//
// The elements visited are those present when Traverse is called; changing
// the vector from inside visit is not supported.
func (v *Vector) Traverse(visit func(x float64)) {
	if v.Len() == 0 {
		return
	}
	for _, x := range v.data[:v.size] {
		visit(x)
	}
}

// TraverseContext is Traverse with a caller value handed to every call of
// visit unchanged.
func TraverseContext[C any](v *Vector, ctx C, visit func(ctx C, x float64)) {
	v.Traverse(func(x float64) {
		visit(ctx, x)
	})
}

// Values returns a copy of the elements. The result is never nil.
func (v *Vector) Values() []float64 {
	out := make([]float64, v.Len())
	if len(out) > 0 {
		copy(out, v.data[:v.size])
	}
	return out
}

// Equal reports whether v and other hold the same elements. Elements are
// compared by bit pattern, so NaN equals NaN and 0 differs from -0.
func (v *Vector) Equal(other *Vector) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if math.Float64bits(v.data[i]) != math.Float64bits(other.data[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer, formatting the elements as [1 2.5 3].
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v.data[i], 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// checkLive rejects nil and destroyed vectors and fills in default options for
// a zero-value Vector.
func (v *Vector) checkLive(op string) error {
	if v == nil {
		return fmt.Errorf("%s: %w", op, ErrNilVector)
	}
	if v.opts.logger == nil {
		v.opts = applyOptions(nil)
	}
	if v.destroyed {
		err := fmt.Errorf("%s: %w", op, ErrDestroyed)
		v.invalid(op, err)
		return err
	}
	return nil
}

func (v *Vector) invalid(op string, err error) {
	v.opts.logger.LogInvalidOperation(op, err)
	v.opts.metricsCollector.RecordInvalidOperation(op)
}

func (v *Vector) outOfRange(op string, pos int) error {
	v.opts.logger.LogOutOfRange(op, pos, v.size)
	v.opts.metricsCollector.RecordOutOfRange(op)
	return &IndexError{Op: op, Index: pos, Size: v.size}
}
