package dvec

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGrow is called after every buffer reallocation.
	RecordGrow(oldCapacity, newCapacity int)

	// RecordGrowFailure is called when a growth request is rejected.
	RecordGrowFailure(requested int)

	// RecordInvalidOperation is called when a call is rejected without effect
	// (self copy, nil destination, use after destroy).
	RecordInvalidOperation(op string)

	// RecordOutOfRange is called when a position misses the vector.
	RecordOutOfRange(op string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)           {}
func (NoopMetricsCollector) RecordGrowFailure(int)         {}
func (NoopMetricsCollector) RecordInvalidOperation(string) {}
func (NoopMetricsCollector) RecordOutOfRange(string)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Counters are atomic so one collector may be shared by many vectors.
type BasicMetricsCollector struct {
	GrowCount         atomic.Int64
	SlotsAllocated    atomic.Int64
	GrowFailures      atomic.Int64
	InvalidOperations atomic.Int64
	OutOfRange        atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCapacity, newCapacity int) {
	b.GrowCount.Add(1)
	b.SlotsAllocated.Add(int64(newCapacity - oldCapacity))
}

// RecordGrowFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrowFailure(int) {
	b.GrowFailures.Add(1)
}

// RecordInvalidOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInvalidOperation(string) {
	b.InvalidOperations.Add(1)
}

// RecordOutOfRange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOutOfRange(string) {
	b.OutOfRange.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:         b.GrowCount.Load(),
		SlotsAllocated:    b.SlotsAllocated.Load(),
		GrowFailures:      b.GrowFailures.Load(),
		InvalidOperations: b.InvalidOperations.Load(),
		OutOfRange:        b.OutOfRange.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount         int64
	SlotsAllocated    int64
	GrowFailures      int64
	InvalidOperations int64
	OutOfRange        int64
}
