// Package alert models the user-visible notifications raised when the
// change-detection pipeline finds new work. An alert carries a message key
// plus optional interpolation data; resolving the key to display text in the
// user's locale is a separate collaborator's job.
package alert

import (
	"errors"
)

// Message keys understood by the display layer.
const (
	// KeyMeasurementsCheck tells a laboratory user that new measurements
	// or lab assignments are waiting for review.
	KeyMeasurementsCheck = "measurements_check"

	// KeyTasksToDo tells an operator that new execution tasks arrived.
	KeyTasksToDo = "tasks_to_do"
)

// ErrAlertIsNotConstructed is returned when an Alert instance was not
// created through the NewAlert factory method.
var ErrAlertIsNotConstructed = errors.New("Alert must be created via NewAlert constructor")

// Alert is a single notification: a message key and its interpolation data.
// Alerts are immutable; queue position and expiry are the alert queue's
// concern, not the alert's.
type Alert struct {
	key  string
	data map[string]any

	isConstructed bool
}

// NewAlert creates an Alert for the given message key. The data map is
// copied so later mutation by the caller cannot leak into a queued alert.
func NewAlert(key string, data map[string]any) (Alert, error) {
	if key == "" {
		return Alert{}, errors.New("alert key is required")
	}

	var copied map[string]any
	if len(data) > 0 {
		copied = make(map[string]any, len(data))
		for k, v := range data {
			copied[k] = v
		}
	}

	return Alert{
		key:           key,
		data:          copied,
		isConstructed: true,
	}, nil
}

// Validate ensures the Alert was properly constructed through NewAlert.
func (a Alert) Validate() error {
	if !a.isConstructed {
		return ErrAlertIsNotConstructed
	}
	return nil
}

// Key returns the alert's message key.
func (a Alert) Key() string {
	return a.key
}

// Data returns the alert's interpolation data, nil when there is none.
func (a Alert) Data() map[string]any {
	if a.data == nil {
		return nil
	}
	copied := make(map[string]any, len(a.data))
	for k, v := range a.data {
		copied[k] = v
	}
	return copied
}
