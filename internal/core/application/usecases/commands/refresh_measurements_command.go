package commands

import (
	"errors"

	"seedflow/internal/pkg/guard"
)

var ErrRefreshMeasurementsCommandIsNotConstructed = errors.New(
	"RefreshMeasurementsCommand must be created via NewRefreshMeasurementsCommand constructor",
)

// RefreshMeasurementsCommand triggers one poll tick of the TKW measurement
// feed. Only scheduled when the company runs the laboratory workflow and
// the session user holds the Laboratory role.
type RefreshMeasurementsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshMeasurementsCommand creates a command to trigger one
// measurement poll tick.
func NewRefreshMeasurementsCommand() RefreshMeasurementsCommand {
	return RefreshMeasurementsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshMeasurementsCommandIsNotConstructed if validation fails.
func (c RefreshMeasurementsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshMeasurementsCommandIsNotConstructed)
}
