package commands

import (
	"context"

	"seedflow/internal/core/ports"
)

// FinalizeOrderCommandHandler completes a treatment. On top of the
// lifecycle edge check, the aggregate refuses to finalize while any dosage
// figure is still null; a refusal reaches the backend as no call at all.
type FinalizeOrderCommandHandler struct {
	orderClient ports.OrderClient
}

// NewFinalizeOrderCommandHandler creates a handler for finalization.
// Requires the backend order client for fetch and update.
func NewFinalizeOrderCommandHandler(orderClient ports.OrderClient) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		orderClient: orderClient,
	}
}

// Handle processes the finalize command.
// Returns *errs.PreconditionNotMetError naming the first missing dosage
// figure, or *errs.IllegalTransitionError when the role does not own the
// completion edge. Either way the order is left unchanged.
func (h FinalizeOrderCommandHandler) Handle(ctx context.Context, command FinalizeOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderClient.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Finalize(command.ActingRole()); err != nil {
		return err
	}

	return h.orderClient.Update(ctx, aggregate)
}
