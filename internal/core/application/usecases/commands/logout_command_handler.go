package commands

import (
	"context"

	"seedflow/internal/core/ports"
)

// LogoutCommandHandler tears down the session: stops the polling jobs,
// clears the persisted snapshots, and drops the alert queue and order
// cache. Jobs stop first so no tick can re-seed a snapshot mid-teardown.
type LogoutCommandHandler struct {
	jobs  JobStopper
	store ports.SnapshotStore
	queue ports.AlertQueue
	cache ports.OrderCache
}

// NewLogoutCommandHandler creates a handler for session teardown.
func NewLogoutCommandHandler(
	jobs JobStopper,
	store ports.SnapshotStore,
	queue ports.AlertQueue,
	cache ports.OrderCache,
) LogoutCommandHandler {
	return LogoutCommandHandler{
		jobs:  jobs,
		store: store,
		queue: queue,
		cache: cache,
	}
}

// Handle processes the logout command. The in-memory stores are dropped
// even when clearing the persisted snapshots fails; the error is still
// returned so the caller can flag the stale state.
func (h LogoutCommandHandler) Handle(ctx context.Context, command LogoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	h.jobs.StopAll()

	err := h.store.Clear(ctx)

	h.queue.Drop()
	h.cache.Drop()

	return err
}
