package services

import (
	"sort"
	"strings"
	"time"

	"seedflow/internal/core/domain/model/order"
)

// FilterSpec describes which orders a report should cover. Every field is
// optional; a zero value means "match all" for that predicate. All present
// predicates combine with logical AND.
//
// Text fields (crop, variety, operator) match by case-insensitive substring
// containment; dates compare as an inclusive range against the order's
// application date; status matches exactly.
type FilterSpec struct {
	Crop     string
	Variety  string
	Operator string
	Status   order.Status
	Start    *time.Time
	End      *time.Time
}

// CropTotal is one row of the per-crop report.
type CropTotal struct {
	Crop      string
	SeedUnits int
	Kg        float64
}

// StatusBucket accumulates one status category of the report.
type StatusBucket struct {
	Count     int
	SeedUnits int
	Kg        float64
}

// Percentage returns this bucket's share of total in percent.
// The second return value is false ("not applicable") when the total
// counts nothing; no division happens in that case.
func (b StatusBucket) Percentage(total StatusBucket) (float64, bool) {
	if total.Count == 0 {
		return 0, false
	}
	return float64(b.Count) / float64(total.Count) * 100, true
}

// StatusSummary groups a filtered order set into the three closing
// categories plus their sum. Approved accumulates Completed orders,
// ToAcknowledge accumulates ToAcknowledge, Disapproved accumulates Failed;
// orders in any other status fall outside the summary.
type StatusSummary struct {
	Approved      StatusBucket
	ToAcknowledge StatusBucket
	Disapproved   StatusBucket
	Total         StatusBucket
}

// ReportAggregator filters an order collection by a FilterSpec and groups
// the result into per-crop and per-status-category totals.
type ReportAggregator struct{}

// NewReportAggregator creates a new ReportAggregator instance.
func NewReportAggregator() ReportAggregator {
	return ReportAggregator{}
}

// Filter returns the orders matching every present predicate of spec.
// A spec with all fields absent is the identity. An order with a null
// application date never matches a present start or end date predicate.
func (r ReportAggregator) Filter(orders []*order.Order, spec FilterSpec) []*order.Order {
	matched := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		if r.matches(o, spec) {
			matched = append(matched, o)
		}
	}
	return matched
}

// AggregateByCrop groups orders by crop name, summing seed units (0 when
// the recipe summary is absent) and kilograms to treat (0 when null).
// Rows come back sorted by crop name for stable display.
func (r ReportAggregator) AggregateByCrop(orders []*order.Order) []CropTotal {
	totals := make(map[string]*CropTotal)
	for _, o := range orders {
		if o == nil {
			continue
		}
		row, ok := totals[o.Crop()]
		if !ok {
			row = &CropTotal{Crop: o.Crop()}
			totals[o.Crop()] = row
		}
		row.SeedUnits += o.SeedUnitCount()
		row.Kg += o.SeedsToTreatKg()
	}

	rows := make([]CropTotal, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Crop < rows[j].Crop })
	return rows
}

// AggregateByStatusCategory groups orders into approved (Completed),
// toAcknowledge (ToAcknowledge), and disapproved (Failed) buckets, with
// Total the sum of the three.
func (r ReportAggregator) AggregateByStatusCategory(orders []*order.Order) StatusSummary {
	var summary StatusSummary

	for _, o := range orders {
		if o == nil {
			continue
		}

		var bucket *StatusBucket
		switch o.Status() {
		case order.Completed:
			bucket = &summary.Approved
		case order.ToAcknowledge:
			bucket = &summary.ToAcknowledge
		case order.Failed:
			bucket = &summary.Disapproved
		default:
			continue
		}

		bucket.Count++
		bucket.SeedUnits += o.SeedUnitCount()
		bucket.Kg += o.SeedsToTreatKg()
	}

	summary.Total = StatusBucket{
		Count:     summary.Approved.Count + summary.ToAcknowledge.Count + summary.Disapproved.Count,
		SeedUnits: summary.Approved.SeedUnits + summary.ToAcknowledge.SeedUnits + summary.Disapproved.SeedUnits,
		Kg:        summary.Approved.Kg + summary.ToAcknowledge.Kg + summary.Disapproved.Kg,
	}
	return summary
}

func (r ReportAggregator) matches(o *order.Order, spec FilterSpec) bool {
	if spec.Crop != "" && !containsFold(o.Crop(), spec.Crop) {
		return false
	}
	if spec.Variety != "" && !containsFold(o.Variety(), spec.Variety) {
		return false
	}
	if spec.Operator != "" && !containsFold(o.Operator(), spec.Operator) {
		return false
	}
	if spec.Status != order.Unknown && o.Status() != spec.Status {
		return false
	}

	if spec.Start != nil || spec.End != nil {
		applied := o.ApplicationDate()
		if applied == nil {
			return false
		}
		if spec.Start != nil && applied.Before(*spec.Start) {
			return false
		}
		if spec.End != nil && applied.After(*spec.End) {
			return false
		}
	}

	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
