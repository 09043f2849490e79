package dvec

import (
	"log/slog"
	"math"

	"github.com/hupe1980/dvec/codec"
	"github.com/hupe1980/dvec/internal/compress"
	"github.com/hupe1980/dvec/internal/mem"
)

const (
	// InitialCapacity is the number of slots allocated by New.
	InitialCapacity = 4

	// GrowthFactor is the multiplier applied to the capacity when a vector grows.
	GrowthFactor = 2

	// MaxCapacity is the default upper bound on the number of slots. It is the
	// largest count whose aligned byte size still fits an int.
	MaxCapacity = (math.MaxInt - mem.Alignment) / 8
)

// CompressionType selects the block compression of MarshalBinary.
type CompressionType = compress.Type

// Supported compression types.
const (
	CompressionNone = compress.None
	CompressionLZ4  = compress.LZ4
	CompressionZSTD = compress.ZSTD
)

type options struct {
	name             string
	initialCapacity  int
	maxCapacity      int
	compression      CompressionType
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Vector.
type Option func(*options)

// WithName tags every log record of the vector with vector=name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithInitialCapacity overrides the number of slots allocated at initialization.
// Values <= 0 keep InitialCapacity.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}

// WithMaxCapacity bounds how far the vector may grow. Requests above the bound
// fail with ErrCapacityExceeded and leave the vector untouched.
// Values <= 0 keep MaxCapacity.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCapacity = n
		}
	}
}

// WithCompression sets the compression used by MarshalBinary.
func WithCompression(c CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec configures the codec used by MarshalJSON and UnmarshalJSON.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector sets a custom metrics collector.
//
// Example:
//
//	metrics := &dvec.BasicMetricsCollector{}
//	v := dvec.New(dvec.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Grows: %d, slots allocated: %d\n", stats.GrowCount, stats.SlotsAllocated)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := dvec.NewJSONLogger(slog.LevelDebug)
//	v := dvec.New(dvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		initialCapacity:  InitialCapacity,
		maxCapacity:      MaxCapacity,
		compression:      CompressionNone,
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.initialCapacity > o.maxCapacity {
		o.initialCapacity = o.maxCapacity
	}
	if o.name != "" {
		o.logger = o.logger.WithName(o.name)
	}
	return o
}
