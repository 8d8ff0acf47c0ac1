package order

import (
	"fmt"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a seed-treatment order.
// It implements a state machine with role-gated transitions to ensure
// orders follow the correct business workflow.
//
// Status is a value object that validates state transitions and provides
// string representations for transport and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// RecipeCreated is the initial status when the laboratory workflow is
	// disabled for the owning company: the Manager has created a recipe
	// and the order goes straight to execution.
	RecipeCreated

	// LabAssignmentCreated is the initial status when the laboratory
	// workflow is enabled: the order waits for the laboratory to pick
	// it up for TKW control.
	LabAssignmentCreated

	// LabToControl indicates the laboratory has taken the lot in for
	// thousand-kernel-weight measurement.
	LabToControl

	// TkwConfirmed indicates the laboratory has confirmed the TKW
	// measurement; the order is ready for treatment.
	TkwConfirmed

	// TreatmentInProgress indicates the operator is physically treating
	// the lot.
	TreatmentInProgress

	// Completed indicates the Manager has finalized the treatment.
	// Terminal unless explicitly archived.
	Completed

	// Failed indicates the treatment could not be carried out.
	// Terminal unless explicitly archived.
	Failed

	// ToAcknowledge indicates the Manager has routed the result for
	// acknowledgement instead of completion. Terminal unless archived.
	ToAcknowledge

	// Archived is the terminal status. Orders are never deleted;
	// archival is a status, not removal.
	Archived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		RecipeCreated:        "RecipeCreated",
		LabAssignmentCreated: "LabAssignmentCreated",
		LabToControl:         "LabToControl",
		TkwConfirmed:         "TkwConfirmed",
		TreatmentInProgress:  "TreatmentInProgress",
		Completed:            "Completed",
		Failed:               "Failed",
		ToAcknowledge:        "ToAcknowledge",
		Archived:             "Archived",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		RecipeCreated:        "RecipeCreated",
		LabAssignmentCreated: "LabAssignmentCreated",
		LabToControl:         "LabToControl",
		TkwConfirmed:         "TkwConfirmed",
		TreatmentInProgress:  "TreatmentInProgress",
		Completed:            "Completed",
		Failed:               "Failed",
		ToAcknowledge:        "ToAcknowledge",
		Archived:             "Archived",
	}
}

// transitionTable maps every legal edge of the lifecycle graph to the single
// role authorized to trigger it. Any (from, to) pair absent from this table
// is illegal for every role.
func transitionTable() map[Status]map[Status]account.Role {
	return map[Status]map[Status]account.Role{
		RecipeCreated: {
			LabAssignmentCreated: account.Manager,
			// Companies without the laboratory workflow skip straight
			// to execution.
			TreatmentInProgress: account.Operator,
		},
		LabAssignmentCreated: {
			LabToControl: account.Laboratory,
		},
		LabToControl: {
			TkwConfirmed: account.Laboratory,
		},
		TkwConfirmed: {
			TreatmentInProgress: account.Operator,
		},
		TreatmentInProgress: {
			Completed:     account.Manager,
			ToAcknowledge: account.Manager,
			Failed:        account.Operator,
		},
		Completed: {
			Archived: account.Manager,
		},
		Failed: {
			Archived: account.Manager,
		},
		ToAcknowledge: {
			Archived: account.Manager,
		},
	}
}

// InitialStatus returns the status a freshly created order starts in,
// depending on whether the owning company runs the laboratory workflow.
func InitialStatus(labEnabled bool) Status {
	if labEnabled {
		return LabAssignmentCreated
	}
	return RecipeCreated
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value is invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its wire representation.
// Returns an error for unrecognized names.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// CanTransition reports whether the given role may move an order from this
// status to target. Both legality conditions are answered at once: the edge
// must exist in the lifecycle graph and the role must own it.
func (s Status) CanTransition(target Status, role account.Role) bool {
	edges, ok := transitionTable()[s]
	if !ok {
		return false
	}
	owner, ok := edges[target]
	return ok && owner == role
}

// TransitionTo validates the edge and returns the new status.
//
// Returns:
//   - (target, nil) when the edge exists and the role owns it
//   - (0, *errs.IllegalTransitionError) otherwise
//
// TransitionTo has no side effects; Order.ApplyTransition uses it to
// enforce lifecycle rules before mutating the aggregate.
func (s Status) TransitionTo(target Status, role account.Role) (Status, error) {
	if !s.CanTransition(target, role) {
		return 0, errs.NewIllegalTransitionError(s.String(), target.String(), role.String())
	}
	return target, nil
}

// IsTerminal reports whether no edge leaves this status for any role.
func (s Status) IsTerminal() bool {
	return len(transitionTable()[s]) == 0
}

// RequiresExecution reports whether the status puts the order in the
// operator's "tasks to do" slice.
func (s Status) RequiresExecution() bool {
	return s == RecipeCreated || s == TkwConfirmed || s == TreatmentInProgress
}

// InLabReview reports whether the status puts the order in the laboratory's
// review slice.
func (s Status) InLabReview() bool {
	return s == LabAssignmentCreated || s == LabToControl
}
