// Package guard provides a defensive construction marker for value objects
// and commands. Embedding a ConstructorGuard lets a type detect whether it
// was produced by its designated constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor function. The zero value fails validation, which prevents
// accidental use of directly instantiated structs that skipped invariant
// checks.
//
// Example usage:
//
//	var ErrFilterSpecNotConstructed = errors.New("FilterSpec must be created via NewFilterSpec")
//
//	type FilterSpec struct {
//	    crop  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewFilterSpec(crop string) FilterSpec {
//	    return FilterSpec{crop: crop, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s FilterSpec) Validate() error {
//	    return s.guard.Validate(ErrFilterSpecNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
