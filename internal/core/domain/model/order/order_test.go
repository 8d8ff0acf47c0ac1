package order_test

import (
	"testing"
	"time"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func completeNumbers() order.TreatmentNumbers {
	return order.TreatmentNumbers{
		SeedsToTreatKg:     floatPtr(1200),
		BagSizeKg:          floatPtr(25),
		ExtraSlurryPercent: floatPtr(5),
		SlurryPerBagLitres: floatPtr(0.8),
		TotalSlurryLitres:  floatPtr(38.4),
	}
}

func restoredOrder(t *testing.T, status order.Status, numbers order.TreatmentNumbers) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"Winter Wheat", "Reform", "L-2209",
		status,
		"Jon Brekke",
		nil,
		&order.RecipeSummary{SeedUnitCount: 48},
		numbers,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in RecipeCreated without lab workflow", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, "Winter Wheat", "Reform", "L-2209", false)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.RecipeCreated, o.Status())
		assert.Equal(t, "Winter Wheat", o.Crop())
		assert.Equal(t, "Reform", o.Variety())
		assert.Equal(t, "L-2209", o.LotNumber())
		assert.False(t, o.HasOperator())
		assert.Nil(t, o.Recipe())
		assert.Nil(t, o.ApplicationDate())
	})

	t.Run("should create order in LabAssignmentCreated with lab workflow", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Barley", "Planet", "L-1042", true)

		require.NoError(t, err)
		assert.Equal(t, order.LabAssignmentCreated, o.Status())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "Barley", "Planet", "L-1042", true)

		require.Error(t, err)
	})

	t.Run("should reject empty crop", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", "Planet", "L-1042", true)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty lot number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "Barley", "Planet", "", true)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with all optional fields", func(t *testing.T) {
		applied := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			"Winter Wheat", "Reform", "L-2209",
			order.TreatmentInProgress,
			"Jon Brekke",
			&applied,
			&order.RecipeSummary{SeedUnitCount: 48},
			completeNumbers(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.TreatmentInProgress, o.Status())
		assert.Equal(t, "Jon Brekke", o.Operator())
		assert.True(t, o.HasOperator())
		require.NotNil(t, o.ApplicationDate())
		assert.True(t, applied.Equal(*o.ApplicationDate()))
		assert.Equal(t, 48, o.SeedUnitCount())
		assert.InDelta(t, 1200, o.SeedsToTreatKg(), 0.001)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			"Barley", "", "L-1042",
			order.Unknown,
			"", nil, nil,
			order.TreatmentNumbers{},
		)

		require.Error(t, err)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.UUID{},
			"Barley", "", "L-1042",
			order.RecipeCreated,
			"", nil, nil,
			order.TreatmentNumbers{},
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AggregationDefaults(t *testing.T) {
	t.Run("should count zero seed units without recipe", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			"Barley", "", "L-1042",
			order.RecipeCreated,
			"", nil, nil,
			order.TreatmentNumbers{},
		)
		require.NoError(t, err)

		assert.Equal(t, 0, o.SeedUnitCount())
	})

	t.Run("should count zero kilograms with null mass", func(t *testing.T) {
		o := restoredOrder(t, order.RecipeCreated, order.TreatmentNumbers{})

		assert.InDelta(t, 0, o.SeedsToTreatKg(), 0.001)
	})
}

func TestOrder_ApplyTransition(t *testing.T) {
	t.Run("should apply legal transition", func(t *testing.T) {
		o := restoredOrder(t, order.LabAssignmentCreated, order.TreatmentNumbers{})

		err := o.ApplyTransition(order.LabToControl, account.Laboratory)

		require.NoError(t, err)
		assert.Equal(t, order.LabToControl, o.Status())
	})

	t.Run("should reject unauthorized role and keep status", func(t *testing.T) {
		o := restoredOrder(t, order.LabAssignmentCreated, order.TreatmentNumbers{})

		err := o.ApplyTransition(order.LabToControl, account.Operator)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.LabAssignmentCreated, o.Status())
	})

	t.Run("should walk the full laboratory lifecycle", func(t *testing.T) {
		o := restoredOrder(t, order.LabAssignmentCreated, completeNumbers())

		require.NoError(t, o.ApplyTransition(order.LabToControl, account.Laboratory))
		require.NoError(t, o.ApplyTransition(order.TkwConfirmed, account.Laboratory))
		require.NoError(t, o.ApplyTransition(order.TreatmentInProgress, account.Operator))
		require.NoError(t, o.Finalize(account.Manager))
		require.NoError(t, o.Archive(account.Manager))

		assert.Equal(t, order.Archived, o.Status())
	})
}

func TestOrder_Finalize(t *testing.T) {
	t.Run("should finalize with complete dosage figures", func(t *testing.T) {
		o := restoredOrder(t, order.TreatmentInProgress, completeNumbers())

		require.NoError(t, o.Finalize(account.Manager))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should fail with PreconditionNotMet when bag size is null", func(t *testing.T) {
		numbers := completeNumbers()
		numbers.BagSizeKg = nil
		o := restoredOrder(t, order.TreatmentInProgress, numbers)

		err := o.Finalize(account.Manager)

		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)

		var preconditionErr *errs.PreconditionNotMetError
		require.ErrorAs(t, err, &preconditionErr)
		assert.Equal(t, "bagSizeKg", preconditionErr.ParamName)
		assert.Equal(t, order.TreatmentInProgress, o.Status(), "failed finalize must not transition")
	})

	t.Run("should fail when any dosage figure is null", func(t *testing.T) {
		strip := []func(*order.TreatmentNumbers){
			func(n *order.TreatmentNumbers) { n.SeedsToTreatKg = nil },
			func(n *order.TreatmentNumbers) { n.BagSizeKg = nil },
			func(n *order.TreatmentNumbers) { n.ExtraSlurryPercent = nil },
			func(n *order.TreatmentNumbers) { n.SlurryPerBagLitres = nil },
			func(n *order.TreatmentNumbers) { n.TotalSlurryLitres = nil },
		}

		for _, clear := range strip {
			numbers := completeNumbers()
			clear(&numbers)
			o := restoredOrder(t, order.TreatmentInProgress, numbers)

			err := o.Finalize(account.Manager)

			require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
			assert.Equal(t, order.TreatmentInProgress, o.Status())
		}
	})

	t.Run("should reject finalize by non-manager even with complete figures", func(t *testing.T) {
		o := restoredOrder(t, order.TreatmentInProgress, completeNumbers())

		err := o.Finalize(account.Operator)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.TreatmentInProgress, o.Status())
	})

	t.Run("should reject finalize outside TreatmentInProgress", func(t *testing.T) {
		o := restoredOrder(t, order.TkwConfirmed, completeNumbers())

		err := o.Finalize(account.Manager)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.TkwConfirmed, o.Status())
	})
}

func TestOrder_Acknowledge(t *testing.T) {
	t.Run("should acknowledge in-progress treatment", func(t *testing.T) {
		o := restoredOrder(t, order.TreatmentInProgress, order.TreatmentNumbers{})

		require.NoError(t, o.Acknowledge(account.Manager))
		assert.Equal(t, order.ToAcknowledge, o.Status())
	})

	t.Run("should not require dosage figures", func(t *testing.T) {
		o := restoredOrder(t, order.TreatmentInProgress, order.TreatmentNumbers{})

		require.NoError(t, o.Acknowledge(account.Manager))
	})

	t.Run("should reject acknowledge by operator", func(t *testing.T) {
		o := restoredOrder(t, order.TreatmentInProgress, order.TreatmentNumbers{})

		require.ErrorIs(t, o.Acknowledge(account.Operator), errs.ErrIllegalTransition)
	})
}

func TestOrder_Archive(t *testing.T) {
	t.Run("should archive each closed status", func(t *testing.T) {
		for _, status := range []order.Status{order.Completed, order.Failed, order.ToAcknowledge} {
			o := restoredOrder(t, status, order.TreatmentNumbers{})

			require.NoError(t, o.Archive(account.Manager))
			assert.Equal(t, order.Archived, o.Status())
		}
	})

	t.Run("should reject archiving active orders", func(t *testing.T) {
		o := restoredOrder(t, order.TreatmentInProgress, order.TreatmentNumbers{})

		require.ErrorIs(t, o.Archive(account.Manager), errs.ErrIllegalTransition)
	})
}

func TestOrder_AssignOperator(t *testing.T) {
	t.Run("should assign operator by name", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Barley", "Planet", "L-1042", false)
		require.NoError(t, err)

		require.NoError(t, o.AssignOperator("Mona Lied"))
		assert.Equal(t, "Mona Lied", o.Operator())
	})

	t.Run("should reject empty operator name", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Barley", "Planet", "L-1042", false)
		require.NoError(t, err)

		require.ErrorIs(t, o.AssignOperator(""), errs.ErrValueIsRequired)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := order.NewOrder(id, "Barley", "Planet", "L-1042", false)
		require.NoError(t, err)
		b, err := order.RestoreOrder(id, "Barley", "Planet", "L-1042",
			order.Completed, "", nil, nil, order.TreatmentNumbers{})
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
