package services_test

import (
	"testing"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/alert"
	"seedflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWith(t *testing.T, roles []account.Role, labEnabled bool) account.User {
	t.Helper()

	user, err := account.NewUser("Lena Hoff", "lena@agro.example", roles, labEnabled)
	require.NoError(t, err)
	return user
}

func TestNotificationDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewNotificationDispatcher()

	t.Run("should raise exactly one measurements alert for new measurements", func(t *testing.T) {
		user := userWith(t, []account.Role{account.Laboratory}, true)
		changes := services.DetectedChanges{MeasurementIDs: []string{"3"}}

		alerts := dispatcher.Dispatch(changes, user)

		require.Len(t, alerts, 1)
		assert.Equal(t, alert.KeyMeasurementsCheck, alerts[0].Key())
	})

	t.Run("should raise measurements alert for new lab orders", func(t *testing.T) {
		user := userWith(t, []account.Role{account.Laboratory}, true)
		changes := services.DetectedChanges{LabOrderIDs: []string{"a", "b"}}

		alerts := dispatcher.Dispatch(changes, user)

		require.Len(t, alerts, 1)
		assert.Equal(t, alert.KeyMeasurementsCheck, alerts[0].Key())
		assert.Equal(t, 2, alerts[0].Data()["orders"])
	})

	t.Run("should raise one alert even when both lab categories changed", func(t *testing.T) {
		user := userWith(t, []account.Role{account.Laboratory}, true)
		changes := services.DetectedChanges{
			LabOrderIDs:    []string{"a"},
			MeasurementIDs: []string{"1", "2"},
		}

		alerts := dispatcher.Dispatch(changes, user)

		require.Len(t, alerts, 1)
	})

	t.Run("should suppress measurements alert without laboratory flag", func(t *testing.T) {
		user := userWith(t, []account.Role{account.Laboratory}, false)
		changes := services.DetectedChanges{MeasurementIDs: []string{"3"}}

		assert.Empty(t, dispatcher.Dispatch(changes, user))
	})

	t.Run("should suppress measurements alert without laboratory role", func(t *testing.T) {
		user := userWith(t, []account.Role{account.Manager}, true)
		changes := services.DetectedChanges{MeasurementIDs: []string{"3"}}

		assert.Empty(t, dispatcher.Dispatch(changes, user))
	})

	t.Run("should raise tasks alert for new operator orders", func(t *testing.T) {
		user := userWith(t, []account.Role{account.Operator}, false)
		changes := services.DetectedChanges{OperatorOrderIDs: []string{"a"}}

		alerts := dispatcher.Dispatch(changes, user)

		require.Len(t, alerts, 1)
		assert.Equal(t, alert.KeyTasksToDo, alerts[0].Key())
		assert.Equal(t, 1, alerts[0].Data()["orders"])
	})

	t.Run("should raise nothing when no category changed", func(t *testing.T) {
		user := userWith(t, []account.Role{account.Operator, account.Laboratory}, true)

		assert.Empty(t, dispatcher.Dispatch(services.DetectedChanges{}, user))
	})

	t.Run("should evaluate rules independently for multi-role users", func(t *testing.T) {
		user := userWith(t, []account.Role{account.Operator, account.Laboratory}, true)
		changes := services.DetectedChanges{
			OperatorOrderIDs: []string{"a"},
			MeasurementIDs:   []string{"1"},
		}

		alerts := dispatcher.Dispatch(changes, user)

		require.Len(t, alerts, 2)
		assert.Equal(t, alert.KeyMeasurementsCheck, alerts[0].Key())
		assert.Equal(t, alert.KeyTasksToDo, alerts[1].Key())
	})

	t.Run("should raise nothing for unconstructed user", func(t *testing.T) {
		var user account.User
		changes := services.DetectedChanges{OperatorOrderIDs: []string{"a"}}

		assert.Empty(t, dispatcher.Dispatch(changes, user))
	})
}

func TestDetectedChanges_IsEmpty(t *testing.T) {
	t.Run("should be empty without additions", func(t *testing.T) {
		assert.True(t, services.DetectedChanges{}.IsEmpty())
	})

	t.Run("should not be empty with any addition", func(t *testing.T) {
		assert.False(t, services.DetectedChanges{OperatorOrderIDs: []string{"a"}}.IsEmpty())
		assert.False(t, services.DetectedChanges{LabOrderIDs: []string{"a"}}.IsEmpty())
		assert.False(t, services.DetectedChanges{MeasurementIDs: []string{"a"}}.IsEmpty())
	})
}
