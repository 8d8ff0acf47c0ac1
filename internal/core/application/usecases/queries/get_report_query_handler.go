package queries

import (
	"context"
	"time"

	"seedflow/internal/core/domain/services"
	"seedflow/internal/core/ports"
)

// GetReportQueryHandler aggregates the cached order collection into the
// report the manager's surface renders: per-crop totals plus the
// approved / to-acknowledge / disapproved split.
type GetReportQueryHandler struct {
	cache      ports.OrderCache
	aggregator services.ReportAggregator
}

// NewGetReportQueryHandler creates a handler for report queries.
func NewGetReportQueryHandler(cache ports.OrderCache) GetReportQueryHandler {
	return GetReportQueryHandler{
		cache:      cache,
		aggregator: services.NewReportAggregator(),
	}
}

// Handle executes the report query: filter, then aggregate twice.
// An empty filtered set yields an empty crop table and not-applicable
// percentage shares, never a division by zero.
func (h GetReportQueryHandler) Handle(ctx context.Context, query GetReportQuery) (GetReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReportQueryResponse{}, err
	}

	filtered := h.aggregator.Filter(h.cache.All(), query.Spec())
	summary := h.aggregator.AggregateByStatusCategory(filtered)

	return GetReportQueryResponse{
		GeneratedAt:   time.Now(),
		CropTotals:    h.aggregator.AggregateByCrop(filtered),
		Approved:      toShare(summary.Approved, summary),
		ToAcknowledge: toShare(summary.ToAcknowledge, summary),
		Disapproved:   toShare(summary.Disapproved, summary),
		TotalCount:    summary.Total.Count,
	}, nil
}

func toShare(bucket services.StatusBucket, summary services.StatusSummary) StatusShare {
	percent, ok := bucket.Percentage(summary.Total)
	return StatusShare{
		Count:      bucket.Count,
		SeedUnits:  bucket.SeedUnits,
		Kg:         bucket.Kg,
		Percent:    percent,
		Applicable: ok,
	}
}
