package ports

import (
	"context"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/measurement"
)

// MeasurementClient is the contract to the backend's TKW measurement feed.
// Only polled when the company's laboratory workflow is enabled and the
// user holds the Laboratory role.
type MeasurementClient interface {
	// ListForLab retrieves all measurements visible to the laboratory.
	ListForLab(ctx context.Context) ([]measurement.Measurement, error)
}

// ProfileClient retrieves the authenticated user driving this session.
// A profile missing identity fields surfaces as account.ErrInvalidUserState,
// which is fatal: no role-correct polling can start without it.
type ProfileClient interface {
	// CurrentUser fetches and validates the session's user profile.
	CurrentUser(ctx context.Context) (account.User, error)
}
