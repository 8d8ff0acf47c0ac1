package queries

import (
	"context"

	"seedflow/internal/core/ports"
)

// GetAlertsQueryHandler serves the active alerts from the in-memory queue.
type GetAlertsQueryHandler struct {
	queue ports.AlertQueue
}

// NewGetAlertsQueryHandler creates a handler for alert queries.
func NewGetAlertsQueryHandler(queue ports.AlertQueue) GetAlertsQueryHandler {
	return GetAlertsQueryHandler{queue: queue}
}

// Handle executes the query, returning the unexpired alerts oldest first.
func (h GetAlertsQueryHandler) Handle(ctx context.Context, query GetAlertsQuery) ([]GetAlertsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := h.queue.Active()
	responses := make([]GetAlertsQueryResponse, 0, len(active))
	for _, a := range active {
		responses = append(responses, GetAlertsQueryResponse{
			Key:  a.Key(),
			Data: a.Data(),
		})
	}
	return responses, nil
}
