package host

import (
	"log"
	"sync"

	"golang.org/x/time/rate"
)

// Queue carries events from host callbacks to the loop. Pushing never
// blocks. Lifecycle events are never dropped; input events beyond the
// queue's capacity are, with a throttled warning.
type Queue struct {
	mu        sync.Mutex
	lifecycle []Event
	input     []Event
	capacity  int
	dropped   uint64
	warn      *rate.Limiter
}

// NewQueue returns a queue holding at most inputCapacity pending input events.
func NewQueue(inputCapacity int) *Queue {
	return &Queue{
		capacity: max(1, inputCapacity),
		warn:     rate.NewLimiter(rate.Limit(1), 1),
	}
}

// Push enqueues ev. Safe for concurrent use.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if ev.Kind != KindInput {
		q.lifecycle = append(q.lifecycle, ev)
		return
	}
	if len(q.input) >= q.capacity {
		q.dropped++
		if q.warn.Allow() {
			log.Printf("host: input queue full, %d events dropped so far", q.dropped)
		}
		return
	}
	q.input = append(q.input, ev)
}

// DrainLifecycle hands every pending lifecycle event to fn in push order.
// Events pushed by fn are delivered on the next drain.
func (q *Queue) DrainLifecycle(fn func(Event)) {
	q.mu.Lock()
	pending := q.lifecycle
	q.lifecycle = nil
	q.mu.Unlock()

	for _, ev := range pending {
		fn(ev)
	}
}

// DrainInput hands every pending input event to fn in push order.
func (q *Queue) DrainInput(fn func(Event)) {
	q.mu.Lock()
	pending := q.input
	q.input = nil
	q.mu.Unlock()

	for _, ev := range pending {
		fn(ev)
	}
}

// Dropped returns how many input events were discarded.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
