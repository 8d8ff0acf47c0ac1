package queries

import (
	"context"
	"errors"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/core/ports"
)

// ErrFeatureNotGranted is returned when none of the session user's roles
// grants the requested surface.
var ErrFeatureNotGranted = errors.New("feature not granted to the session user")

// GetActiveOrdersQueryHandler serves role-sliced order listings from the
// in-memory read model. The capability map decides access; the status
// predicates decide membership.
type GetActiveOrdersQueryHandler struct {
	cache ports.OrderCache
	user  account.User
}

// NewGetActiveOrdersQueryHandler creates a handler for slice listings.
// The user is the authenticated session profile.
func NewGetActiveOrdersQueryHandler(cache ports.OrderCache, user account.User) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{
		cache: cache,
		user:  user,
	}
}

// Handle executes the query, returning the orders the requested surface
// shows. Returns ErrFeatureNotGranted when the user's roles do not carry
// the surface, including the lab queue when the company's laboratory
// workflow is disabled.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.user.Validate(); err != nil {
		return nil, err
	}

	if !h.userHasFeature(query.Slice()) {
		return nil, ErrFeatureNotGranted
	}

	orders := h.cache.All()
	responses := make([]GetActiveOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		if !sliceContains(query.Slice(), o.Status()) {
			continue
		}
		responses = append(responses, GetActiveOrdersQueryResponse{
			ID:              o.ID(),
			Crop:            o.Crop(),
			Variety:         o.Variety(),
			LotNumber:       o.LotNumber(),
			Status:          o.Status(),
			Operator:        o.Operator(),
			ApplicationDate: o.ApplicationDate(),
		})
	}
	return responses, nil
}

func (h GetActiveOrdersQueryHandler) userHasFeature(feature account.Feature) bool {
	for _, role := range h.user.Roles() {
		if account.HasFeature(role, feature, h.user.LabEnabled()) {
			return true
		}
	}
	return false
}

func sliceContains(slice account.Feature, status order.Status) bool {
	switch slice {
	case account.FeatureExecutionQueue:
		return status.RequiresExecution()
	case account.FeatureLabQueue:
		return status.InLabReview()
	default:
		// The board shows every non-archived order the poll returned.
		return status != order.Archived
	}
}
