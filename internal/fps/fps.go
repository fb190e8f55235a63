// Package fps measures frame rate from the intervals between frames and
// reports min, average and max about once per second.
package fps

import (
	"fmt"
	"time"
)

// Clock returns monotonic nanoseconds.
type Clock func() uint64

// MonotonicClock returns a Clock counting from the moment it was created.
func MonotonicClock() Clock {
	epoch := time.Now()
	return func() uint64 {
		return uint64(time.Since(epoch))
	}
}

// Stats summarizes one reporting window in frames per second.
type Stats struct {
	Min, Avg, Max float32
}

func (s Stats) String() string {
	return fmt.Sprintf("min %.1f, avg %.1f, max %.1f fps", s.Min, s.Avg, s.Max)
}

// window collects frame intervals in nanoseconds.
type window struct {
	count    uint64
	sum      uint64
	min, max uint64
}

func newWindow(interval uint64) window {
	if interval == 0 {
		panic("fps: zero frame interval")
	}
	return window{count: 1, sum: interval, min: interval, max: interval}
}

func (w *window) add(interval uint64) {
	if interval == 0 {
		panic("fps: zero frame interval")
	}
	w.count++
	w.sum += interval
	w.min = min(w.min, interval)
	w.max = max(w.max, interval)
}

// stats converts intervals to rates, so the longest interval gives the
// minimum rate.
func (w window) stats() Stats {
	return Stats{
		Min: float32(1e9 / float64(w.max)),
		Avg: float32(float64(w.count) * 1e9 / float64(w.sum)),
		Max: float32(1e9 / float64(w.min)),
	}
}

type state int

const (
	stopped state = iota
	started
	firstTick
	moreTicks
)

const reportEvery = uint64(time.Second)

// Monitor is the frame rate state machine. It is not safe for concurrent use.
type Monitor struct {
	clock Clock
	state state
	start uint64 // window start
	first uint64 // first tick of the window
	prev  uint64
	w     window
}

// New returns a stopped monitor. A nil clock uses MonotonicClock.
func New(clock Clock) *Monitor {
	if clock == nil {
		clock = MonotonicClock()
	}
	return &Monitor{clock: clock}
}

// Running reports whether Start has been called without a matching Stop.
func (m *Monitor) Running() bool {
	return m.state != stopped
}

// Start begins a new window, discarding any partial one.
func (m *Monitor) Start() {
	m.state = started
	m.start = m.clock()
	m.w = window{}
}

// Stop ends measurement and returns the partial window, if any intervals
// were recorded.
func (m *Monitor) Stop() (Stats, bool) {
	var s Stats
	ok := m.state == moreTicks
	if ok {
		s = m.w.stats()
	}
	m.state = stopped
	return s, ok
}

// Tick records a frame. Once more than a second has passed since the window
// started, it returns the window's stats and starts a new window at this
// frame. Tick panics on a stopped monitor.
func (m *Monitor) Tick() (Stats, bool) {
	now := m.clock()
	switch m.state {
	case stopped:
		panic("fps: tick on a stopped monitor")
	case started:
		m.state = firstTick
		m.first = now
	case firstTick:
		m.state = moreTicks
		m.w = newWindow(now - m.first)
		m.prev = now
	case moreTicks:
		m.w.add(now - m.prev)
		m.prev = now
	}

	if now-m.start <= reportEvery {
		return Stats{}, false
	}
	var s Stats
	ok := m.state == moreTicks
	if ok {
		s = m.w.stats()
	}
	m.state = firstTick
	m.start = now
	m.first = now
	m.w = window{}
	return s, ok
}
