package commands

import (
	"context"

	"seedflow/internal/core/ports"
)

// TransitionOrderCommandHandler applies a lifecycle transition to an order.
// Retrieves the aggregate from the backend, lets it validate and apply the
// edge in memory, and pushes the result back. The backend stays the owner
// of durable state.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(orderClient)
//	cmd, _ := NewConfirmTkwCommand(orderID, account.Laboratory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Order vanished between poll and action")
//	case errors.Is(err, errs.ErrIllegalTransition):
//	    log.Println("Edge not allowed for this role")
//	}
type TransitionOrderCommandHandler struct {
	orderClient ports.OrderClient
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle
// transitions. Requires the backend order client for fetch and update.
func NewTransitionOrderCommandHandler(orderClient ports.OrderClient) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		orderClient: orderClient,
	}
}

// Handle processes the transition command.
// A rejected edge leaves the order untouched on the backend: the aggregate
// fails before any update call is made.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderClient.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ApplyTransition(command.Target(), command.ActingRole()); err != nil {
		return err
	}

	return h.orderClient.Update(ctx, aggregate)
}
