package ports

import (
	"context"

	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/core/domain/model/order"
)

// OrderClient is the contract to the remote backend that owns order
// persistence. The client side never stores orders durably; it polls the
// active set, applies transitions in memory, and pushes the result back.
type OrderClient interface {
	// ListActive retrieves all non-archived orders visible to the
	// current user's company. Called once per poll tick.
	ListActive(ctx context.Context) ([]*order.Order, error)

	// Get retrieves a single order by its identifier.
	// Returns *errs.ObjectNotFoundError when the backend has no such order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update pushes a transitioned order back to the backend.
	// The backend remains the owner of durable state; Update carries the
	// whole aggregate so the server can validate it again.
	Update(ctx context.Context, aggregate *order.Order) error
}
