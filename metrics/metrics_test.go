package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestCounter_IncAndAdd(t *testing.T) {
	c := NewCounter("test.counter")
	c.Inc()
	c.Inc()
	c.Add(5)
	if c.Value() != 7 {
		t.Fatalf("counter = %d, want 7", c.Value())
	}
	c.Add(0)
	c.Add(-3)
	if c.Value() != 7 {
		t.Fatalf("counter after non-positive adds = %d, want 7", c.Value())
	}
	if c.Name() != "test.counter" {
		t.Fatalf("name = %q", c.Name())
	}
}

func TestGauge_SetAddIncDec(t *testing.T) {
	g := NewGauge("test.gauge")
	g.Set(10)
	g.Inc()
	g.Dec()
	g.Dec()
	if g.Value() != 9 {
		t.Fatalf("gauge = %d, want 9", g.Value())
	}
	g.Add(-20)
	if g.Value() != -11 {
		t.Fatalf("gauge = %d, want -11", g.Value())
	}
}

func TestHistogram_Observe(t *testing.T) {
	h := NewHistogram("test.hist")
	for _, v := range []float64{3, -1, 10, 4} {
		h.Observe(v)
	}
	s := h.Snapshot()
	if s.Count != 4 || s.Sum != 16 || s.Min != -1 || s.Max != 10 {
		t.Fatalf("snapshot = %+v", s)
	}
	if s.Mean() != 4 {
		t.Fatalf("mean = %v, want 4", s.Mean())
	}
	if h.Count() != 4 || h.Min() != -1 || h.Max() != 10 || h.Mean() != 4 {
		t.Fatal("accessors disagree with snapshot")
	}
}

func TestHistogram_Empty(t *testing.T) {
	h := NewHistogram("test.empty")
	if h.Min() != 0 || h.Max() != 0 || h.Mean() != 0 || h.Sum() != 0 {
		t.Fatalf("empty histogram = %+v", h.Snapshot())
	}
}

func TestHistogram_ObserveDuration(t *testing.T) {
	h := NewHistogram("test.duration")
	h.ObserveDuration(1500 * time.Microsecond)
	if h.Sum() != 1.5 {
		t.Fatalf("sum = %v, want 1.5", h.Sum())
	}
}

func TestTimer_Stop(t *testing.T) {
	h := NewHistogram("test.timer")
	timer := NewTimer(h)
	time.Sleep(2 * time.Millisecond)
	d := timer.Stop()
	if d < 2*time.Millisecond {
		t.Fatalf("duration = %v, want >= 2ms", d)
	}
	if h.Count() != 1 {
		t.Fatalf("count = %d, want 1", h.Count())
	}
	if h.Min() < 2 {
		t.Fatalf("recorded %v ms, want >= 2", h.Min())
	}

	// A timer without a histogram still measures.
	if NewTimer(nil).Stop() < 0 {
		t.Fatal("negative duration")
	}
}

func TestConcurrency(t *testing.T) {
	c := NewCounter("test.conc.counter")
	g := NewGauge("test.conc.gauge")
	h := NewHistogram("test.conc.hist")

	const goroutines, iterations = 16, 500
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				c.Inc()
				g.Inc()
				h.Observe(1)
			}
		}()
	}
	wg.Wait()

	const want = goroutines * iterations
	if c.Value() != want {
		t.Fatalf("counter = %d, want %d", c.Value(), want)
	}
	if g.Value() != want {
		t.Fatalf("gauge = %d, want %d", g.Value(), want)
	}
	if h.Count() != want {
		t.Fatalf("histogram count = %d, want %d", h.Count(), want)
	}
}
