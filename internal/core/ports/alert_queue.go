package ports

import (
	"seedflow/internal/core/domain/model/alert"
	"seedflow/internal/core/domain/model/order"
)

// AlertQueue is the ordered, append-only queue of user-visible alerts.
// Each alert retires a fixed duration after its own insertion, independent
// of other alerts' timers.
type AlertQueue interface {
	// Push appends an alert, stamping it with the current time.
	Push(a alert.Alert)

	// Active returns the alerts that have not yet expired, oldest first,
	// pruning expired entries from the front as a side effect.
	Active() []alert.Alert

	// Drop empties the queue. Called on logout.
	Drop()
}

// OrderCache is the in-memory read model holding the most recently polled
// order collection. Queries read from it; only the polling pipeline writes.
type OrderCache interface {
	// ReplaceAll swaps the cached collection wholesale.
	ReplaceAll(orders []*order.Order)

	// All returns the cached collection. The slice is a copy; the
	// aggregates are shared.
	All() []*order.Order

	// Drop empties the cache. Called on logout.
	Drop()
}
