// Package measurement models thousand-kernel-weight (TKW) measurements
// captured by the laboratory. A measurement is immutable once created and
// is never updated in place; newer control rounds produce new measurements.
package measurement

import (
	"errors"
	"time"

	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/pkg/errs"
)

// ErrMeasurementIsNotConstructed is returned when a Measurement instance was
// not created through the NewMeasurement factory method.
var ErrMeasurementIsNotConstructed = errors.New("Measurement must be created via NewMeasurement constructor")

// Measurement is an immutable TKW reading belonging to one order.
// The captured value itself feeds dosage calculation on the backend;
// the client side only needs identity and ownership for change detection
// and display.
type Measurement struct {
	id         kernel.UUID
	orderID    kernel.UUID
	value      float64
	capturedAt time.Time

	isConstructed bool
}

// NewMeasurement creates a validated Measurement.
//
// Parameters:
//   - id: unique identifier of the measurement
//   - orderID: identifier of the owning order
//   - value: captured TKW in grams (must be positive)
//   - capturedAt: capture timestamp (must not be zero)
func NewMeasurement(id, orderID kernel.UUID, value float64, capturedAt time.Time) (Measurement, error) {
	if err := id.Validate(); err != nil {
		return Measurement{}, err
	}
	if err := orderID.Validate(); err != nil {
		return Measurement{}, err
	}
	if value <= 0 {
		return Measurement{}, errs.NewValueIsInvalidError("value")
	}
	if capturedAt.IsZero() {
		return Measurement{}, errs.NewValueIsRequiredError("capturedAt")
	}

	return Measurement{
		id:            id,
		orderID:       orderID,
		value:         value,
		capturedAt:    capturedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Measurement was properly constructed through NewMeasurement.
func (m Measurement) Validate() error {
	if !m.isConstructed {
		return ErrMeasurementIsNotConstructed
	}
	return nil
}

// ID returns the measurement's unique identifier.
func (m Measurement) ID() kernel.UUID {
	return m.id
}

// OrderID returns the identifier of the owning order.
func (m Measurement) OrderID() kernel.UUID {
	return m.orderID
}

// Value returns the captured TKW reading.
func (m Measurement) Value() float64 {
	return m.value
}

// CapturedAt returns the capture timestamp.
func (m Measurement) CapturedAt() time.Time {
	return m.capturedAt
}
