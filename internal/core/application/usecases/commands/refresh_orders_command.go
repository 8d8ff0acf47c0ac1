package commands

import (
	"errors"

	"seedflow/internal/pkg/guard"
)

var ErrRefreshOrdersCommandIsNotConstructed = errors.New(
	"RefreshOrdersCommand must be created via NewRefreshOrdersCommand constructor",
)

// RefreshOrdersCommand triggers one poll tick of the active order
// collection: fetch, diff against the persisted snapshots, raise alerts for
// genuinely new work, and refresh the in-memory read model.
//
// Example:
//
//	cmd := NewRefreshOrdersCommand()
//	handler := NewRefreshOrdersCommandHandler(orderClient, store, queue, cache, user, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Poll tick failed: %v", err)
//	}
type RefreshOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshOrdersCommand creates a command to trigger one order poll tick.
// This is a parameterless command; the session user lives on the handler.
func NewRefreshOrdersCommand() RefreshOrdersCommand {
	return RefreshOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshOrdersCommandIsNotConstructed if validation fails.
func (c RefreshOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRefreshOrdersCommandIsNotConstructed)
}
