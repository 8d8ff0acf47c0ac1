package snapshotrepo

import (
	"context"
	"errors"

	"seedflow/internal/core/domain/model/snapshot"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository implements ports.SnapshotStore using GORM.
//
// The store is shared across sessions of the same user profile; concurrent
// writers simply overwrite each other's row, which the change-detection
// design accepts (last writer wins, snapshots are monotonically
// informative).
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GORM snapshot repository.
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Get retrieves the persisted snapshot for a category. A missing row maps
// to an explicitly uninitialized snapshot, never to an empty one: the
// distinction drives first-tick seeding.
func (r *GormSnapshotRepository) Get(ctx context.Context, category snapshot.Category) (snapshot.Snapshot, error) {
	if err := category.Validate(); err != nil {
		return snapshot.Snapshot{}, err
	}

	var dto SnapshotDTO
	err := r.db.WithContext(ctx).First(&dto, "category = ?", category.Key()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return snapshot.Uninitialized(category), nil
	}
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	return toDomain(category, dto)
}

// Replace upserts the snapshot's row, discarding whatever identifier set
// was stored before. Only whole replacement is offered.
func (r *GormSnapshotRepository) Replace(ctx context.Context, snap snapshot.Snapshot) error {
	if err := snap.Category().Validate(); err != nil {
		return err
	}

	dto := fromDomain(snap)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"ids", "updated_at"}),
		}).
		Create(&dto).Error
}

// Clear removes every category's row. Called on logout or user-profile
// change.
func (r *GormSnapshotRepository) Clear(ctx context.Context) error {
	keys := make([]string, 0, len(snapshot.AllCategories()))
	for _, category := range snapshot.AllCategories() {
		keys = append(keys, category.Key())
	}

	return r.db.WithContext(ctx).
		Where("category IN ?", keys).
		Delete(&SnapshotDTO{}).Error
}
