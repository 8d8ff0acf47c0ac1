package queries

import (
	"errors"
	"time"

	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/core/domain/services"
	"seedflow/internal/pkg/guard"
)

var (
	ErrGetReportQueryIsNotConstructed = errors.New(
		"GetReportQuery must be created via NewGetReportQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("start date must not be after end date")
)

// GetReportQuery requests per-crop and per-status-category totals over the
// cached order collection, optionally narrowed by a filter. Every filter
// field is optional; an absent field matches everything.
//
// Example:
//
//	query, err := NewGetReportQuery(services.FilterSpec{Crop: "wheat"})
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, query)
type GetReportQuery struct { //nolint:recvcheck //using for validation
	spec services.FilterSpec

	guard guard.ConstructorGuard
}

// NewGetReportQuery creates a report query for the given filter.
// A present status must be a valid one, and a present date range must be
// ordered.
func NewGetReportQuery(spec services.FilterSpec) (GetReportQuery, error) {
	if spec.Status != order.Unknown {
		if err := spec.Status.Validate(); err != nil {
			return GetReportQuery{}, err
		}
	}
	if spec.Start != nil && spec.End != nil && spec.Start.After(*spec.End) {
		return GetReportQuery{}, ErrDateRangeIsInvalid
	}

	return GetReportQuery{
		spec:  spec,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReportQueryIsNotConstructed if validation fails.
func (q GetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReportQueryIsNotConstructed)
}

// Spec returns the filter to apply before aggregation.
func (q GetReportQuery) Spec() services.FilterSpec {
	return q.spec
}

// StatusShare is one status category's bucket plus its share of the total.
// Applicable is false when the filtered set counts nothing; Percent is
// meaningless in that case.
type StatusShare struct {
	Count      int
	SeedUnits  int
	Kg         float64
	Percent    float64
	Applicable bool
}

// GetReportQueryResponse is the aggregated report: one row per crop and
// the three closing categories with their shares.
type GetReportQueryResponse struct {
	GeneratedAt   time.Time
	CropTotals    []services.CropTotal
	Approved      StatusShare
	ToAcknowledge StatusShare
	Disapproved   StatusShare
	TotalCount    int
}
