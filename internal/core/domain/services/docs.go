// Package services contains stateless domain services that coordinate
// behavior across aggregates without owning state themselves.
//
// ChangeDetector computes what is new between a persisted identifier
// snapshot and a freshly polled collection. NotificationDispatcher maps
// detected changes, the user's roles, and the laboratory feature flag to
// the alerts each role should see. ReportAggregator filters an order
// collection and rolls it up into per-crop and per-status-category totals.
//
// All three are pure: given the same inputs they produce the same outputs,
// so the polling jobs can be tested with a virtual clock and canned
// collections.
package services
