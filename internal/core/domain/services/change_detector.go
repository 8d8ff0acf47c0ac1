package services

import (
	"errors"
	"fmt"
	"strings"

	"seedflow/internal/core/domain/model/snapshot"
)

// ErrDiffComputationFailure indicates a malformed or unexpected collection
// shape during change detection. The caller recovers locally: the failure is
// logged and treated as "no new items this tick" so the polling loop never
// aborts.
var ErrDiffComputationFailure = errors.New("diff computation failure")

// DiffComputationFailureError carries the category and cause of a failed
// diff computation.
type DiffComputationFailureError struct {
	Category snapshot.Category
	Cause    error
}

// NewDiffComputationFailureError creates a DiffComputationFailureError for
// the given category.
func NewDiffComputationFailureError(category snapshot.Category, cause error) *DiffComputationFailureError {
	return &DiffComputationFailureError{Category: category, Cause: cause}
}

func (e *DiffComputationFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDiffComputationFailure, e.Category.Key(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDiffComputationFailure, e.Category.Key())
}

func (e *DiffComputationFailureError) Unwrap() error {
	return ErrDiffComputationFailure
}

// Diff is the outcome of one change-detection pass for one category.
// Whatever the outcome, Next is the snapshot to persist: detection always
// replaces the prior set wholesale, never merges into it.
type Diff struct {
	// AddedIDs is current \ prior: identifiers present now that the prior
	// snapshot had not observed. Empty on the seeding pass.
	AddedIDs []string

	// Seeded is true when there was no meaningful prior snapshot and the
	// pass only established one. Seeding never reports additions, which
	// prevents a false "new item" alert for every item already present
	// at load time.
	Seeded bool

	// Next is the replacement snapshot reflecting the current collection.
	Next snapshot.Snapshot
}

// ChangeDetector computes set differences between the previously observed
// identifier snapshot and a freshly fetched collection. One Detect call per
// poll tick per category.
//
// Example:
//
//	detector := NewChangeDetector()
//	diff, err := detector.Detect(prior, currentIDs)
//	if err != nil {
//	    // recovered upstream: log, treat as empty diff, keep polling
//	}
//	store.Replace(ctx, diff.Next)
//	if len(diff.AddedIDs) > 0 {
//	    // notify
//	}
type ChangeDetector struct{}

// NewChangeDetector creates a new ChangeDetector instance.
func NewChangeDetector() ChangeDetector {
	return ChangeDetector{}
}

// Detect computes addedIds = currentIDs \ prior, order-independent.
//
// When prior is uninitialized (explicit flag, not an empty set) no
// differences are reported and the returned diff only seeds the snapshot.
//
// A malformed collection (blank identifiers) yields a
// *DiffComputationFailureError; the prior snapshot is returned unchanged in
// Next so a failed tick cannot corrupt the persisted state.
func (d ChangeDetector) Detect(prior snapshot.Snapshot, currentIDs []string) (Diff, error) {
	category := prior.Category()

	for _, id := range currentIDs {
		if strings.TrimSpace(id) == "" {
			return Diff{Next: prior}, NewDiffComputationFailureError(
				category,
				errors.New("collection contains a blank identifier"),
			)
		}
	}

	next, err := snapshot.NewSnapshot(category, currentIDs)
	if err != nil {
		return Diff{Next: prior}, NewDiffComputationFailureError(category, err)
	}

	if !prior.Initialized() {
		return Diff{Seeded: true, Next: next}, nil
	}

	var added []string
	seen := make(map[string]struct{}, len(currentIDs))
	for _, id := range currentIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if !prior.Contains(id) {
			added = append(added, id)
		}
	}

	return Diff{AddedIDs: added, Next: next}, nil
}
