// Package alertqueue provides the in-memory alert queue. Alerts are held
// in insertion order and each retires a fixed interval after its own
// insertion, so a burst of alerts drains front to back.
package alertqueue

import (
	"sync"
	"time"

	"seedflow/internal/core/domain/model/alert"
	"seedflow/internal/core/ports"
)

// DefaultTTL is how long an alert stays visible after insertion.
const DefaultTTL = 10 * time.Second

var _ ports.AlertQueue = (*Queue)(nil)

type entry struct {
	alert    alert.Alert
	expireAt time.Time
}

// Queue is an append-only alert queue with per-alert expiry.
type Queue struct {
	mu      sync.Mutex
	entries []entry
	ttl     time.Duration
	now     func() time.Time
}

// NewQueue creates a Queue with the default alert lifetime.
func NewQueue() *Queue {
	return &Queue{
		ttl: DefaultTTL,
		now: time.Now,
	}
}

// NewQueueWithClock creates a Queue with an explicit lifetime and clock.
// Tests use this to advance time deterministically.
func NewQueueWithClock(ttl time.Duration, now func() time.Time) *Queue {
	return &Queue{
		ttl: ttl,
		now: now,
	}
}

// Push appends an alert, stamping its expiry from the current time.
func (q *Queue) Push(a alert.Alert) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = append(q.entries, entry{
		alert:    a,
		expireAt: q.now().Add(q.ttl),
	})
}

// Active returns the unexpired alerts oldest first. Because expiry time is
// monotone in insertion order, expired entries always form a prefix and are
// pruned from the front.
func (q *Queue) Active() []alert.Alert {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	firstLive := len(q.entries)
	for i, e := range q.entries {
		if e.expireAt.After(now) {
			firstLive = i
			break
		}
	}
	q.entries = q.entries[firstLive:]

	active := make([]alert.Alert, 0, len(q.entries))
	for _, e := range q.entries {
		active = append(active, e.alert)
	}
	return active
}

// Drop empties the queue.
func (q *Queue) Drop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = nil
}
