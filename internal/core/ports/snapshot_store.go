package ports

import (
	"context"

	"seedflow/internal/core/domain/model/snapshot"
)

// SnapshotStore persists the last-observed identifier sets across reloads.
// One entry per category, shared across sessions of the same user profile;
// concurrent sessions may overwrite each other's entry, which is an accepted
// race because snapshots are monotonically informative.
type SnapshotStore interface {
	// Get retrieves the persisted snapshot for a category. When no entry
	// exists yet the returned snapshot is explicitly uninitialized; an
	// empty stored set and a missing one are different things.
	Get(ctx context.Context, category snapshot.Category) (snapshot.Snapshot, error)

	// Replace stores the snapshot wholesale for its category, discarding
	// the previous entry. Partial merges are deliberately unsupported.
	Replace(ctx context.Context, snap snapshot.Snapshot) error

	// Clear removes every category's entry. Called on logout and on
	// user-profile change, since a snapshot is only meaningful within
	// the user/company context that wrote it.
	Clear(ctx context.Context) error
}
