// Package metrics provides the in-process counters, gauges and histograms
// that record setup generation, commitment and evaluation activity. Counter
// and Gauge are lock-free; Histogram takes a mutex per observation.
package metrics

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a monotonically increasing count.
type Counter struct {
	name  string
	value atomic.Int64
}

// NewCounter returns a Counter with the given name.
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc adds one.
func (c *Counter) Inc() { c.value.Add(1) }

// Add adds n. Non-positive values are ignored.
func (c *Counter) Add(n int64) {
	if n > 0 {
		c.value.Add(n)
	}
}

// Value returns the current count.
func (c *Counter) Value() int64 { return c.value.Load() }

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// Gauge is a value that can move in both directions.
type Gauge struct {
	name  string
	value atomic.Int64
}

// NewGauge returns a Gauge with the given name.
func NewGauge(name string) *Gauge {
	return &Gauge{name: name}
}

// Set replaces the current value.
func (g *Gauge) Set(v int64) { g.value.Store(v) }

// Add moves the gauge by d, which may be negative.
func (g *Gauge) Add(d int64) { g.value.Add(d) }

// Inc adds one.
func (g *Gauge) Inc() { g.value.Add(1) }

// Dec subtracts one.
func (g *Gauge) Dec() { g.value.Add(-1) }

// Value returns the current value.
func (g *Gauge) Value() int64 { return g.value.Load() }

// Name returns the metric name.
func (g *Gauge) Name() string { return g.name }

// Histogram summarises observed values as count, sum, min and max.
type Histogram struct {
	name  string
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

// NewHistogram returns an empty Histogram with the given name.
func NewHistogram(name string) *Histogram {
	return &Histogram{
		name: name,
		min:  math.MaxFloat64,
		max:  -math.MaxFloat64,
	}
}

// Observe records v.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	h.count++
	h.sum += v
	if v < h.min {
		h.min = v
	}
	if v > h.max {
		h.max = v
	}
	h.mu.Unlock()
}

// ObserveDuration records d in fractional milliseconds.
func (h *Histogram) ObserveDuration(d time.Duration) {
	h.Observe(float64(d) / float64(time.Millisecond))
}

// HistogramSnapshot is a consistent view of a Histogram.
type HistogramSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// Mean returns Sum/Count, or 0 for an empty snapshot.
func (s HistogramSnapshot) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Snapshot returns all summary values read under one lock. Min and Max are
// 0 when nothing has been observed.
func (h *Histogram) Snapshot() HistogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count == 0 {
		return HistogramSnapshot{}
	}
	return HistogramSnapshot{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
}

// Count returns the number of observations.
func (h *Histogram) Count() int64 { return h.Snapshot().Count }

// Sum returns the sum of observations.
func (h *Histogram) Sum() float64 { return h.Snapshot().Sum }

// Min returns the smallest observation, or 0.
func (h *Histogram) Min() float64 { return h.Snapshot().Min }

// Max returns the largest observation, or 0.
func (h *Histogram) Max() float64 { return h.Snapshot().Max }

// Mean returns the arithmetic mean, or 0.
func (h *Histogram) Mean() float64 { return h.Snapshot().Mean() }

// Name returns the metric name.
func (h *Histogram) Name() string { return h.name }

// Timer measures one operation and records it into a Histogram.
type Timer struct {
	start time.Time
	hist  *Histogram
}

// NewTimer starts a Timer that records into h. h may be nil.
func NewTimer(h *Histogram) *Timer {
	return &Timer{start: time.Now(), hist: h}
}

// Stop records the elapsed time in milliseconds and returns it. Each call
// records again.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	if t.hist != nil {
		t.hist.ObserveDuration(d)
	}
	return d
}
