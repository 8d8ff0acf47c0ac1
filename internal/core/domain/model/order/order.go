package order

import (
	"errors"
	"time"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// RecipeSummary carries the slice of the dosage recipe the workflow needs:
// the number of seed units the recipe covers. The full recipe (products,
// rates, slurry composition) stays on the backend.
type RecipeSummary struct {
	SeedUnitCount int
}

// TreatmentNumbers holds the numeric fields the remote dosage service
// computes for an order. All fields are nullable: they stay nil until the
// service has responded, and finalizing requires every one of them.
type TreatmentNumbers struct {
	// SeedsToTreatKg is the mass of seed to treat.
	SeedsToTreatKg *float64

	// BagSizeKg is the bag size the slurry is dosed against.
	BagSizeKg *float64

	// ExtraSlurryPercent is the surplus margin added to the slurry mix.
	ExtraSlurryPercent *float64

	// SlurryPerBagLitres is the derived slurry volume per bag.
	SlurryPerBagLitres *float64

	// TotalSlurryLitres is the derived total slurry volume for the lot.
	TotalSlurryLitres *float64
}

// Order represents a unit of seed-treatment work tracked through the
// multi-stage lifecycle. It is the aggregate root for transition decisions.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, immutable for its lifetime
//   - Always carries exactly one valid status
//   - Status transitions follow the role-gated lifecycle graph
//   - Can only be created through NewOrder or RestoreOrder
//
// The aggregate mutates nothing outside itself: ApplyTransition and the
// named actions (Finalize, Acknowledge, ...) validate and update the
// in-memory value, and the caller hands the result to the backend
// collaborator for persistence.
type Order struct {
	// id is the unique, stable identifier for the order
	id kernel.UUID

	// crop and variety name the seed being treated
	crop    string
	variety string

	// lotNumber identifies the physical batch of seed
	lotNumber string

	// status is the current state in the order lifecycle
	status Status

	// operator is the display name of the operator holding the order,
	// empty when unassigned
	operator string

	// applicationDate is when the treatment was or will be applied
	applicationDate *time.Time

	// recipe is the order's recipe summary, nil when no recipe exists yet
	recipe *RecipeSummary

	// numbers holds the nullable dosage figures from the remote service
	numbers TreatmentNumbers

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in its initial status. Which initial status
// that is depends on the owning company's laboratory workflow flag.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - crop, variety: seed references (crop is required)
//   - lotNumber: physical batch number (required)
//   - labEnabled: company laboratory workflow flag
func NewOrder(id kernel.UUID, crop, variety, lotNumber string, labEnabled bool) (*Order, error) {
	o := &Order{
		status:        InitialStatus(labEnabled),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCrop(crop),
		o.setLotNumber(lotNumber),
	); err != nil {
		return nil, err
	}

	o.variety = variety
	return o, nil
}

// RestoreOrder reconstructs an Order from its externally persisted state.
// Used by the backend adapter when materializing poll responses; validates
// the identifier and status but accepts any combination of optional fields,
// since the backend owns their consistency.
func RestoreOrder(
	id kernel.UUID,
	crop, variety, lotNumber string,
	status Status,
	operator string,
	applicationDate *time.Time,
	recipe *RecipeSummary,
	numbers TreatmentNumbers,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		crop:            crop,
		variety:         variety,
		lotNumber:       lotNumber,
		status:          status,
		operator:        operator,
		applicationDate: applicationDate,
		recipe:          recipe,
		numbers:         numbers,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Crop returns the crop name.
func (o *Order) Crop() string {
	return o.crop
}

// Variety returns the variety name.
func (o *Order) Variety() string {
	return o.variety
}

// LotNumber returns the physical batch number.
func (o *Order) LotNumber() string {
	return o.lotNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Operator returns the display name of the operator holding the order.
// Empty when no operator is assigned.
func (o *Order) Operator() string {
	return o.operator
}

// HasOperator reports whether an operator holds the order.
func (o *Order) HasOperator() bool {
	return o.operator != ""
}

// ApplicationDate returns when the treatment was or will be applied.
// Nil when no date has been set.
func (o *Order) ApplicationDate() *time.Time {
	return o.applicationDate
}

// Recipe returns the order's recipe summary, nil when absent.
func (o *Order) Recipe() *RecipeSummary {
	return o.recipe
}

// Numbers returns the order's nullable dosage figures.
func (o *Order) Numbers() TreatmentNumbers {
	return o.numbers
}

// SeedUnitCount returns the recipe's seed unit count, 0 when no recipe
// summary is present. Used by report aggregation.
func (o *Order) SeedUnitCount() int {
	if o.recipe == nil {
		return 0
	}
	return o.recipe.SeedUnitCount
}

// SeedsToTreatKg returns the mass to treat, 0 when the figure is null.
// Used by report aggregation.
func (o *Order) SeedsToTreatKg() float64 {
	if o.numbers.SeedsToTreatKg == nil {
		return 0
	}
	return *o.numbers.SeedsToTreatKg
}

// AssignOperator hands the order to an operator by display name.
func (o *Order) AssignOperator(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("operator")
	}
	o.operator = name
	return nil
}

// CanTransition reports whether actingRole may move the order into target
// from its current status.
func (o *Order) CanTransition(target Status, actingRole account.Role) bool {
	return o.status.CanTransition(target, actingRole)
}

// ApplyTransition validates the edge and updates the order's status.
// No external system is touched; persistence is the caller's concern.
//
// Returns:
//   - nil on a legal, authorized transition
//   - *errs.IllegalTransitionError otherwise, leaving the order unchanged
func (o *Order) ApplyTransition(target Status, actingRole account.Role) error {
	newStatus, err := o.status.TransitionTo(target, actingRole)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Finalize moves the order from TreatmentInProgress to Completed.
//
// Business rules:
//   - Only Manager owns this edge
//   - Every dosage figure (mass to treat, bag size, extra slurry percent,
//     and both derived slurry totals) must be non-null
//
// A missing figure fails with *errs.PreconditionNotMetError and performs
// no transition.
func (o *Order) Finalize(actingRole account.Role) error {
	if _, err := o.status.TransitionTo(Completed, actingRole); err != nil {
		return err
	}

	if err := o.validateDosageFigures(); err != nil {
		return err
	}

	o.status = Completed
	return nil
}

// Acknowledge moves the order from TreatmentInProgress to ToAcknowledge.
// Only Manager owns this edge.
func (o *Order) Acknowledge(actingRole account.Role) error {
	return o.ApplyTransition(ToAcknowledge, actingRole)
}

// Archive moves a closed order (Completed, Failed, or ToAcknowledge) into
// the terminal Archived status. Only Manager owns these edges.
func (o *Order) Archive(actingRole account.Role) error {
	return o.ApplyTransition(Archived, actingRole)
}

func (o *Order) validateDosageFigures() error {
	checks := []struct {
		name  string
		value *float64
	}{
		{"seedsToTreatKg", o.numbers.SeedsToTreatKg},
		{"bagSizeKg", o.numbers.BagSizeKg},
		{"extraSlurryPercent", o.numbers.ExtraSlurryPercent},
		{"slurryPerBagLitres", o.numbers.SlurryPerBagLitres},
		{"totalSlurryLitres", o.numbers.TotalSlurryLitres},
	}

	for _, check := range checks {
		if check.value == nil {
			return errs.NewPreconditionNotMetError(check.name)
		}
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCrop(crop string) error {
	if crop == "" {
		return errs.NewValueIsRequiredError("crop")
	}
	o.crop = crop
	return nil
}

func (o *Order) setLotNumber(lotNumber string) error {
	if lotNumber == "" {
		return errs.NewValueIsRequiredError("lotNumber")
	}
	o.lotNumber = lotNumber
	return nil
}
