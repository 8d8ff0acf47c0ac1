// Package snapshotrepo persists the per-category identifier snapshots the
// change-detection pipeline compares poll results against. One row per
// category, replaced wholesale on every write.
package snapshotrepo

import (
	"time"

	"seedflow/internal/core/domain/model/snapshot"

	"github.com/lib/pq"
)

// SnapshotDTO represents the database structure for a persisted identifier
// snapshot. The category key is the primary key, so each category holds at
// most one row and Replace is a plain upsert.
type SnapshotDTO struct {
	Category  string         `gorm:"primaryKey;size:64"`
	IDs       pq.StringArray `gorm:"column:ids;type:text[]"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for snapshot entries.
func (SnapshotDTO) TableName() string {
	return "snapshots"
}

// fromDomain converts a snapshot value to its database representation.
func fromDomain(snap snapshot.Snapshot) SnapshotDTO {
	return SnapshotDTO{
		Category: snap.Category().Key(),
		IDs:      pq.StringArray(snap.IDs()),
	}
}

// toDomain converts a database row back to an initialized snapshot.
func toDomain(category snapshot.Category, dto SnapshotDTO) (snapshot.Snapshot, error) {
	return snapshot.NewSnapshot(category, []string(dto.IDs))
}
