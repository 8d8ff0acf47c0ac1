package commands

import (
	"errors"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand requests completing a treatment. Finalization is the
// one transition with a precondition beyond the lifecycle graph: every
// dosage figure must have arrived from the remote dosage service, so it
// gets its own command instead of riding TransitionOrderCommand.
//
// Example:
//
//	cmd, err := NewFinalizeOrderCommand(orderID, account.Manager)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPreconditionNotMet) {
//	    // a dosage figure is still null; order status unchanged
//	}
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actingRole account.Role

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates a command to finalize a treatment.
// Validates the order ID and the acting role.
func NewFinalizeOrderCommand(orderID kernel.UUID, actingRole account.Role) (FinalizeOrderCommand, error) {
	command := FinalizeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActingRole(actingRole),
	); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinalizeOrderCommandIsNotConstructed if validation fails.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to finalize.
func (c FinalizeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingRole returns the role the session user acts under.
func (c FinalizeOrderCommand) ActingRole() account.Role {
	return c.actingRole
}

func (c *FinalizeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FinalizeOrderCommand) setActingRole(actingRole account.Role) error {
	if err := actingRole.Validate(); err != nil {
		return err
	}

	c.actingRole = actingRole
	return nil
}
