package snapshot_test

import (
	"testing"

	"seedflow/internal/core/domain/model/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	t.Run("should expose persisted storage keys", func(t *testing.T) {
		assert.Equal(t, "tkwMeasurementIds", snapshot.TkwMeasurements.Key())
		assert.Equal(t, "operatorOrderIds", snapshot.OperatorOrders.Key())
		assert.Equal(t, "labOrderIds", snapshot.LabOrders.Key())
	})

	t.Run("should validate known categories", func(t *testing.T) {
		for _, category := range snapshot.AllCategories() {
			require.NoError(t, category.Validate())
		}
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		require.Error(t, snapshot.UnknownCategory.Validate())
		require.Error(t, snapshot.Category(9).Validate())
		assert.Equal(t, "unknown", snapshot.UnknownCategory.Key())
	})

	t.Run("should enumerate all three categories", func(t *testing.T) {
		assert.Len(t, snapshot.AllCategories(), 3)
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("should hold identifiers as a set", func(t *testing.T) {
		s, err := snapshot.NewSnapshot(snapshot.OperatorOrders, []string{"a", "b", "b"})

		require.NoError(t, err)
		assert.True(t, s.Initialized())
		assert.Equal(t, 2, s.Size())
		assert.True(t, s.Contains("a"))
		assert.True(t, s.Contains("b"))
		assert.False(t, s.Contains("c"))
		assert.ElementsMatch(t, []string{"a", "b"}, s.IDs())
	})

	t.Run("should reject invalid category", func(t *testing.T) {
		_, err := snapshot.NewSnapshot(snapshot.UnknownCategory, nil)

		require.Error(t, err)
	})

	t.Run("should distinguish empty from uninitialized", func(t *testing.T) {
		empty, err := snapshot.NewSnapshot(snapshot.LabOrders, nil)
		require.NoError(t, err)
		uninitialized := snapshot.Uninitialized(snapshot.LabOrders)

		assert.True(t, empty.Initialized())
		assert.Equal(t, 0, empty.Size())
		assert.False(t, uninitialized.Initialized())
		assert.Equal(t, snapshot.LabOrders, uninitialized.Category())
	})
}
