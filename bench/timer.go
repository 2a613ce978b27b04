// SPDX-License-Identifier: MIT

// Package bench times named operations for the spmv driver.
//
// A Timer feeds every measurement into a Prometheus histogram vector on its
// own registry (nothing touches the global default registry) and keeps the
// raw samples in call order, so the driver can print a report and optionally
// dump the registry in textfile exposition format for node_exporter.
package bench

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names.
const (
	MetricDuration = "lvsparse_operation_duration_seconds"
	MetricErrors   = "lvsparse_operation_errors_total"
)

// DefaultBuckets spans 1µs to ~4s.
var DefaultBuckets = prometheus.ExponentialBuckets(1e-6, 4, 12)

const (
	panicLoggerNil = "bench: WithLogger: logger must be non-nil"
	panicClockNil  = "bench: WithClock: clock must be non-nil"
	panicBuckets   = "bench: WithBuckets: need at least one bucket"
)

// Sample is one measured call.
type Sample struct {
	Op       string
	Duration time.Duration
	Err      error
}

// Option configures a Timer.
type Option func(*Timer)

// WithLogger logs each measurement at Debug. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(t *Timer) { t.log = l }
}

// WithClock replaces time.Now. Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic(panicClockNil)
	}

	return func(t *Timer) { t.now = now }
}

// WithBuckets overrides DefaultBuckets. Panics on an empty slice.
func WithBuckets(b []float64) Option {
	if len(b) == 0 {
		panic(panicBuckets)
	}

	return func(t *Timer) { t.buckets = slices.Clone(b) }
}

// Timer records durations of named operations. Safe for concurrent use.
type Timer struct {
	mu      sync.Mutex
	samples []Sample

	now     func() time.Time
	log     *slog.Logger
	buckets []float64

	reg       *prometheus.Registry
	durations *prometheus.HistogramVec
	errors    *prometheus.CounterVec
}

// NewTimer returns a Timer with a fresh registry.
func NewTimer(opts ...Option) *Timer {
	t := &Timer{
		now:     time.Now,
		log:     slog.New(slog.DiscardHandler),
		buckets: DefaultBuckets,
		reg:     prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(t)
	}

	factory := promauto.With(t.reg)
	t.durations = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    MetricDuration,
		Help:    "Duration of sparse matrix operations in seconds",
		Buckets: t.buckets,
	}, []string{"op"})
	t.errors = factory.NewCounterVec(prometheus.CounterOpts{
		Name: MetricErrors,
		Help: "Failed sparse matrix operations",
	}, []string{"op"})

	return t
}

// Measure runs fn, records its duration under op and returns fn's error.
// Failed calls are timed too and additionally counted in MetricErrors.
func (t *Timer) Measure(op string, fn func() error) error {
	start := t.now()
	err := fn()
	d := t.now().Sub(start)

	t.durations.WithLabelValues(op).Observe(d.Seconds())
	if err != nil {
		t.errors.WithLabelValues(op).Inc()
	}

	t.mu.Lock()
	t.samples = append(t.samples, Sample{Op: op, Duration: d, Err: err})
	t.mu.Unlock()

	t.log.Debug("bench: measured", "op", op, "duration", d, "err", err)

	return err
}

// Samples returns a copy of every sample in call order.
func (t *Timer) Samples() []Sample {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.samples)
}

// Gatherer exposes the Timer's registry.
func (t *Timer) Gatherer() prometheus.Gatherer { return t.reg }

// WriteTextfile writes the registry to path in Prometheus text exposition
// format. The file is written atomically (temp file + rename).
func (t *Timer) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, t.reg)
}
