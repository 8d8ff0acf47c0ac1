// Package queries contains read operations over the in-memory order read
// model and the alert queue. Queries never touch the backend; the polling
// pipeline keeps the read model fresh.
package queries

import (
	"errors"
	"time"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
	ErrSliceIsInvalid = errors.New("slice must be the execution queue, the lab queue, or the board")
)

// GetActiveOrdersQuery retrieves the slice of active orders one feature
// surface shows: the operator's execution queue, the laboratory review
// queue, or the manager's board.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(account.FeatureExecutionQueue)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	slice account.Feature

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for one order slice. Only the
// three order-bearing features are accepted.
func NewGetActiveOrdersQuery(slice account.Feature) (GetActiveOrdersQuery, error) {
	switch slice {
	case account.FeatureExecutionQueue, account.FeatureLabQueue, account.FeatureBoard:
	default:
		return GetActiveOrdersQuery{}, ErrSliceIsInvalid
	}

	return GetActiveOrdersQuery{
		slice: slice,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Slice returns the requested feature surface.
func (q GetActiveOrdersQuery) Slice() account.Feature {
	return q.slice
}

// GetActiveOrdersQueryResponse represents one order in a slice listing.
type GetActiveOrdersQueryResponse struct {
	ID              kernel.UUID
	Crop            string
	Variety         string
	LotNumber       string
	Status          order.Status
	Operator        string
	ApplicationDate *time.Time
}
