// Package snapshot models the "previously observed" identifier sets the
// change-detection pipeline compares poll results against.
//
// A snapshot belongs to exactly one category and one authenticated
// user/company context; comparing snapshots across categories or sessions
// is meaningless, and the store is cleared on logout. Snapshots only ever
// grow by whole replacement, never by partial merge.
package snapshot

import (
	"fmt"

	"seedflow/internal/pkg/errs"
)

// Category identifies one tracked identifier set.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	UnknownCategory Category = iota

	// TkwMeasurements tracks laboratory TKW measurement identifiers.
	TkwMeasurements

	// OperatorOrders tracks identifiers of orders visible in the
	// operator's execution queue.
	OperatorOrders

	// LabOrders tracks identifiers of orders visible in the laboratory
	// review queue.
	LabOrders
)

func getCategoryKeys() map[Category]string {
	return map[Category]string{
		TkwMeasurements: "tkwMeasurementIds",
		OperatorOrders:  "operatorOrderIds",
		LabOrders:       "labOrderIds",
	}
}

// Key returns the persisted storage key for the category.
func (c Category) Key() string {
	if key, ok := getCategoryKeys()[c]; ok {
		return key
	}
	return "unknown"
}

// String implements fmt.Stringer, returning the storage key.
func (c Category) String() string {
	return c.Key()
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getCategoryKeys()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// AllCategories returns every valid category. Used when clearing the whole
// store on logout.
func AllCategories() []Category {
	return []Category{TkwMeasurements, OperatorOrders, LabOrders}
}

// Snapshot is the set of identifiers last observed for one category.
//
// The zero value is "not yet initialized": the distinction between an
// uninitialized snapshot and an empty one matters, because the first poll
// after initialization must seed the snapshot without reporting anything
// as new.
type Snapshot struct {
	category    Category
	ids         map[string]struct{}
	initialized bool
}

// NewSnapshot creates an initialized snapshot holding the given identifiers.
// Duplicates in ids collapse; ordering is irrelevant for set difference.
func NewSnapshot(category Category, ids []string) (Snapshot, error) {
	if err := category.Validate(); err != nil {
		return Snapshot{}, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return Snapshot{
		category:    category,
		ids:         set,
		initialized: true,
	}, nil
}

// Uninitialized creates the explicit "no meaningful prior" snapshot for a
// category. Deliberately distinct from NewSnapshot(category, nil).
func Uninitialized(category Category) Snapshot {
	return Snapshot{category: category}
}

// Category returns the snapshot's category.
func (s Snapshot) Category() Category {
	return s.category
}

// Initialized reports whether the snapshot carries a meaningful prior set.
func (s Snapshot) Initialized() bool {
	return s.initialized
}

// Contains reports whether the identifier was previously observed.
func (s Snapshot) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Size returns the number of identifiers in the snapshot.
func (s Snapshot) Size() int {
	return len(s.ids)
}

// IDs returns the snapshot's identifiers in unspecified order.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	return ids
}
