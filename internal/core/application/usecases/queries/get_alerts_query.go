package queries

import (
	"errors"

	"seedflow/internal/pkg/guard"
)

var ErrGetAlertsQueryIsNotConstructed = errors.New(
	"GetAlertsQuery must be created via NewGetAlertsQuery constructor",
)

// GetAlertsQuery retrieves the alerts currently visible to the session,
// oldest first. Expired alerts never appear.
type GetAlertsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAlertsQuery creates a query for the active alerts.
func NewGetAlertsQuery() GetAlertsQuery {
	return GetAlertsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAlertsQueryIsNotConstructed if validation fails.
func (q GetAlertsQuery) Validate() error {
	return q.guard.Validate(ErrGetAlertsQueryIsNotConstructed)
}

// GetAlertsQueryResponse represents one visible alert: the message key the
// display layer resolves and its interpolation data.
type GetAlertsQueryResponse struct {
	Key  string
	Data map[string]any
}
