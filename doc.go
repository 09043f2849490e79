// Package dvec provides a growable array of float64 values with an explicit,
// predictable capacity policy.
//
// # Quick Start
//
//	v := dvec.New()           // size 0, capacity 4
//	_ = v.Push(1.0)
//	_ = v.Push(2.0)
//	_ = v.InsertAt(1, 9.0)    // [1 9 2]
//	_ = v.RemoveAt(0)         // [9 2]
//	last, ok := v.Last()      // 2, true
//	x, ok := v.Pop()          // 2, true -> [9]
//	v.Destroy()
//
// # Capacity Model
//
// A vector owns one buffer of Cap() slots; the first Len() of them are its
// elements. Growth happens only when a write needs more slots than are
// allocated, and then the new capacity is
//
//	max(Cap()*GrowthFactor, required)
//
// bounded by WithMaxCapacity. Growth copies the elements into a fresh 64-byte
// aligned buffer; if it fails (ErrCapacityExceeded) the vector is untouched.
// Capacity never shrinks: Pop, RemoveAt, RemoveMany and Clear only lower Len().
//
// # Positions
//
// InsertAt clamps positions past the end to Len(), so inserting there appends.
// RemoveAt with a position outside the vector is a no-op that returns an
// *IndexError; callers that treat it as a no-op may ignore the error.
//
// # Copying
//
// CopyTo always copies element values into the destination's own buffer; two
// live vectors never share storage. Copying a vector onto itself is rejected
// with ErrSameInstance.
//
// # Traversal
//
//	v.Traverse(func(x float64) { sum += x })
//
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// Both walk the elements in index order, once each. Modifying the vector from
// inside the visitor is not supported.
//
// # Encoding
//
// Vector implements encoding.BinaryMarshaler (optionally LZ4 or ZSTD
// compressed, see WithCompression) and json.Marshaler ({"values":[...]},
// through the codec set with WithCodec).
//
// # Observability
//
// WithLogger attaches a slog-based Logger and WithMetricsCollector a
// MetricsCollector. Both default to no-ops.
//
// # Concurrency
//
// A Vector has a single owner. It does no locking; share it between
// goroutines only under external synchronization.
package dvec
