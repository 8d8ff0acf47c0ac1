package commands

import (
	"errors"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via a transition command constructor",
)

// TransitionOrderCommand requests moving an order along one edge of the
// lifecycle graph. The acting role is the session user's role; whether that
// role owns the requested edge is the aggregate's decision, not the
// command's.
//
// Use the named constructors (NewSendOrderToLabCommand, NewStartTreatmentCommand,
// ...) rather than NewTransitionOrderCommand directly: they pin the target
// status for each lifecycle action.
//
// Example:
//
//	cmd, err := NewStartTreatmentCommand(orderID, account.Operator)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrIllegalTransition) {
//	    // edge not in the lifecycle graph, or role does not own it
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	target     order.Status
	actingRole account.Role

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to move an order into target.
// Validates the order ID, the target status, and the acting role; it does
// not check edge legality, which needs the order's current status.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actingRole account.Role,
) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setActingRole(actingRole),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

// NewSendOrderToLabCommand moves a freshly created order into the
// laboratory queue. Manager action.
func NewSendOrderToLabCommand(orderID kernel.UUID, actingRole account.Role) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.LabAssignmentCreated, actingRole)
}

// NewStartLabControlCommand takes a lab assignment in for TKW measurement.
// Laboratory action.
func NewStartLabControlCommand(orderID kernel.UUID, actingRole account.Role) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.LabToControl, actingRole)
}

// NewConfirmTkwCommand confirms the TKW measurement, releasing the order
// for treatment. Laboratory action.
func NewConfirmTkwCommand(orderID kernel.UUID, actingRole account.Role) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.TkwConfirmed, actingRole)
}

// NewStartTreatmentCommand begins physical treatment of the lot. Operator
// action; also the entry edge for companies without the laboratory workflow.
func NewStartTreatmentCommand(orderID kernel.UUID, actingRole account.Role) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.TreatmentInProgress, actingRole)
}

// NewFailTreatmentCommand records that the treatment could not be carried
// out. Operator action.
func NewFailTreatmentCommand(orderID kernel.UUID, actingRole account.Role) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.Failed, actingRole)
}

// NewAcknowledgeOrderCommand routes the treatment result for
// acknowledgement instead of completion. Manager action.
func NewAcknowledgeOrderCommand(orderID kernel.UUID, actingRole account.Role) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.ToAcknowledge, actingRole)
}

// NewArchiveOrderCommand moves a closed order into the terminal archive.
// Manager action.
func NewArchiveOrderCommand(orderID kernel.UUID, actingRole account.Role) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.Archived, actingRole)
}

// Validate ensures the command was created through a constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// ActingRole returns the role the session user acts under.
func (c TransitionOrderCommand) ActingRole() account.Role {
	return c.actingRole
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActingRole(actingRole account.Role) error {
	if err := actingRole.Validate(); err != nil {
		return err
	}

	c.actingRole = actingRole
	return nil
}
