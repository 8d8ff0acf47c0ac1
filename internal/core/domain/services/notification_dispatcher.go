package services

import (
	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/alert"
)

// DetectedChanges bundles one tick's per-category added identifiers.
// A nil slice means "nothing new in that category": either no change or a
// category that was not polled this tick.
type DetectedChanges struct {
	OperatorOrderIDs []string
	LabOrderIDs      []string
	MeasurementIDs   []string
}

// IsEmpty reports whether no category saw additions.
func (c DetectedChanges) IsEmpty() bool {
	return len(c.OperatorOrderIDs) == 0 && len(c.LabOrderIDs) == 0 && len(c.MeasurementIDs) == 0
}

// NotificationDispatcher maps detected changes, the user's role set, and the
// laboratory feature flag to the alerts each role should see.
//
// Rules are evaluated independently, not mutually exclusively: a user
// holding both Operator and Laboratory can receive both alerts in the same
// tick. Within one tick each rule fires at most once, no matter how many
// identifiers arrived.
type NotificationDispatcher struct{}

// NewNotificationDispatcher creates a new NotificationDispatcher instance.
func NewNotificationDispatcher() NotificationDispatcher {
	return NotificationDispatcher{}
}

// Dispatch returns the alerts the given user must see for the given changes.
//
// Rules:
//   - laboratory flag enabled AND user holds Laboratory AND (new lab-visible
//     orders OR new measurements) -> one "measurements_check" alert
//   - user holds Operator AND new operator-visible orders -> one
//     "tasks_to_do" alert
//
// The returned slice preserves rule order and is empty when nothing matched.
func (d NotificationDispatcher) Dispatch(changes DetectedChanges, user account.User) []alert.Alert {
	if err := user.Validate(); err != nil {
		return nil
	}

	var alerts []alert.Alert

	if user.LabEnabled() && user.HasRole(account.Laboratory) &&
		(len(changes.LabOrderIDs) > 0 || len(changes.MeasurementIDs) > 0) {
		if a, err := alert.NewAlert(alert.KeyMeasurementsCheck, map[string]any{
			"orders":       len(changes.LabOrderIDs),
			"measurements": len(changes.MeasurementIDs),
		}); err == nil {
			alerts = append(alerts, a)
		}
	}

	if user.HasRole(account.Operator) && len(changes.OperatorOrderIDs) > 0 {
		if a, err := alert.NewAlert(alert.KeyTasksToDo, map[string]any{
			"orders": len(changes.OperatorOrderIDs),
		}); err == nil {
			alerts = append(alerts, a)
		}
	}

	return alerts
}
