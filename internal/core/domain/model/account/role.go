package account

import (
	"fmt"

	"seedflow/internal/pkg/errs"
)

// Role represents one of the four workflow roles a user can hold.
// A user may hold several roles at once; each role exposes a different
// slice of active work.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Manager creates recipes and lab assignments, finalizes and
	// acknowledges treatments, and archives closed orders.
	Manager

	// Admin manages operators, crops, and products. Admin takes no part
	// in the order lifecycle itself.
	Admin

	// Operator executes treatments on orders assigned to them.
	Operator

	// Laboratory performs TKW control and confirms measurements.
	// Only meaningful when the owning company has the laboratory
	// workflow enabled.
	Laboratory
)

// Feature identifies a functional area a role may access.
type Feature int

const (
	UnknownFeature Feature = iota

	// FeatureRecipes is the recipe and lab-assignment creation area.
	FeatureRecipes

	// FeatureBoard is the order lifecycle board.
	FeatureBoard

	// FeatureReports is the filtered report area.
	FeatureReports

	// FeatureOperators is operator administration.
	FeatureOperators

	// FeatureCrops is crop administration.
	FeatureCrops

	// FeatureProducts is product administration.
	FeatureProducts

	// FeatureExecutionQueue is the operator's "tasks to do" queue.
	FeatureExecutionQueue

	// FeatureLabQueue is the laboratory review queue. Access additionally
	// requires the company laboratory flag, see HasFeature.
	FeatureLabQueue
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Manager:     "Manager",
		Admin:       "Admin",
		Operator:    "Operator",
		Laboratory:  "Laboratory",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Manager:    "Manager",
		Admin:      "Admin",
		Operator:   "Operator",
		Laboratory: "Laboratory",
	}
}

// roleFeatures is the capability table mapping each role to the features it
// may see. Queried only through HasFeature so the laboratory flag gate stays
// in one place.
func roleFeatures() map[Role][]Feature {
	return map[Role][]Feature{
		Manager:    {FeatureRecipes, FeatureBoard, FeatureReports},
		Admin:      {FeatureOperators, FeatureCrops, FeatureProducts},
		Operator:   {FeatureExecutionQueue},
		Laboratory: {FeatureLabQueue},
	}
}

// Validate checks if the Role value is valid.
// Valid roles are Manager, Admin, Operator, and Laboratory.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe to call on invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a role from its wire representation.
// Returns an error for unrecognized names.
func RoleFromString(name string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == name {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role name", name),
	)
}

// HasFeature reports whether the role grants access to the given feature.
// FeatureLabQueue is only granted when labEnabled is true: the laboratory
// review stage is switched per company, so a Laboratory role in a company
// without the flag sees no lab queue.
func HasFeature(role Role, feature Feature, labEnabled bool) bool {
	if feature == FeatureLabQueue && !labEnabled {
		return false
	}
	for _, f := range roleFeatures()[role] {
		if f == feature {
			return true
		}
	}
	return false
}
