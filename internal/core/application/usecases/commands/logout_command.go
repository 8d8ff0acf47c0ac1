package commands

import (
	"errors"

	"seedflow/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand ends the session's background activity: polling stops and
// every session-scoped store is emptied. Snapshots are only meaningful
// within the user/company context that wrote them, so they go too.
type LogoutCommand struct {
	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a command to tear down the session.
func NewLogoutCommand() LogoutCommand {
	return LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogoutCommandIsNotConstructed if validation fails.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}
