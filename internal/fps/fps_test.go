package fps

import (
	"math"
	"strings"
	"testing"
	"time"
)

type fakeClock struct{ now uint64 }

func (c *fakeClock) advance(d time.Duration) { c.now += uint64(d) }
func (c *fakeClock) read() uint64           { return c.now }

func TestSteadyFrameRate(t *testing.T) {
	clk := &fakeClock{}
	m := New(clk.read)
	m.Start()

	var stats Stats
	reported := false
	for i := 0; i < 200 && !reported; i++ {
		clk.advance(10 * time.Millisecond)
		stats, reported = m.Tick()
	}
	if !reported {
		t.Fatal("no stats after two seconds of frames")
	}
	for name, v := range map[string]float32{"min": stats.Min, "avg": stats.Avg, "max": stats.Max} {
		if math.Abs(float64(v-100)) > 1e-3 {
			t.Errorf("%s = %v, want 100", name, v)
		}
	}
}

func TestStatsOrdering(t *testing.T) {
	clk := &fakeClock{}
	m := New(clk.read)
	m.Start()

	intervals := []time.Duration{10, 30, 20, 15, 25}
	var stats Stats
	reported := false
	for i := 0; i < 1000 && !reported; i++ {
		clk.advance(intervals[i%len(intervals)] * time.Millisecond)
		stats, reported = m.Tick()
	}
	if !reported {
		t.Fatal("no stats reported")
	}
	if !(stats.Min <= stats.Avg && stats.Avg <= stats.Max) {
		t.Errorf("stats out of order: %v", stats)
	}
	if math.Abs(float64(stats.Max-100)) > 1e-3 {
		t.Errorf("max = %v, want 100 from the 10ms frames", stats.Max)
	}
	if math.Abs(float64(stats.Min-1000.0/30)) > 1e-3 {
		t.Errorf("min = %v, want 33.3 from the 30ms frames", stats.Min)
	}
}

func TestWindowResetsAfterReport(t *testing.T) {
	clk := &fakeClock{}
	m := New(clk.read)
	m.Start()

	clk.advance(2 * time.Second)
	if _, ok := m.Tick(); ok {
		t.Error("a single tick has no intervals to report")
	}
	// the window restarted at the last tick, a short frame must not report
	clk.advance(10 * time.Millisecond)
	if _, ok := m.Tick(); ok {
		t.Error("reported before a second elapsed in the new window")
	}
}

func TestStopReturnsPartialWindow(t *testing.T) {
	clk := &fakeClock{}
	m := New(clk.read)
	m.Start()
	if _, ok := m.Stop(); ok {
		t.Error("stop before any ticks should have no stats")
	}
	if m.Running() {
		t.Error("monitor still running after Stop")
	}

	m.Start()
	for i := 0; i < 3; i++ {
		clk.advance(20 * time.Millisecond)
		m.Tick()
	}
	s, ok := m.Stop()
	if !ok {
		t.Fatal("expected partial stats")
	}
	if math.Abs(float64(s.Avg-50)) > 1e-3 {
		t.Errorf("avg = %v, want 50", s.Avg)
	}
}

func TestTickWhenStoppedPanics(t *testing.T) {
	m := New((&fakeClock{}).read)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	m.Tick()
}

func TestZeroIntervalPanics(t *testing.T) {
	clk := &fakeClock{}
	m := New(clk.read)
	m.Start()
	clk.advance(time.Millisecond)
	m.Tick()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on zero interval")
		}
	}()
	m.Tick()
}

func TestStatsString(t *testing.T) {
	s := Stats{Min: 30, Avg: 59.5, Max: 61}.String()
	if !strings.Contains(s, "avg 59.5") {
		t.Errorf("String() = %q", s)
	}
}
