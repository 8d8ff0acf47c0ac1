package commands_test

import (
	"errors"
	"testing"

	"seedflow/internal/core/application/usecases/commands"
	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrderInStatus(t, order.LabAssignmentCreated)
	cmd, _ := commands.NewStartLabControlCommand(aggregate.ID(), account.Laboratory)

	client := new(MockOrderClient)
	mock.InOrder(
		client.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		client.On("Update", ctx, aggregate).Return(nil).Once(),
	)

	h := commands.NewTransitionOrderCommandHandler(client)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.LabToControl, aggregate.Status())
	client.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TransitionOrderCommand{} // not constructed properly
	h := commands.NewTransitionOrderCommandHandler(new(MockOrderClient))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTransitionOrderCommandIsNotConstructed)
}

func TestTransitionOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrderInStatus(t, order.LabAssignmentCreated)
	cmd, _ := commands.NewStartLabControlCommand(aggregate.ID(), account.Laboratory)

	client := new(MockOrderClient)
	client.On("Get", ctx, aggregate.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", aggregate.ID())).Once()

	h := commands.NewTransitionOrderCommandHandler(client)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	client.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_IllegalEdge(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrderInStatus(t, order.LabAssignmentCreated)
	// Laboratory owns LabAssignmentCreated -> LabToControl; Manager does not.
	cmd, _ := commands.NewStartLabControlCommand(aggregate.ID(), account.Manager)

	client := new(MockOrderClient)
	client.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewTransitionOrderCommandHandler(client)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	require.Equal(t, order.LabAssignmentCreated, aggregate.Status(), "rejected edge must not mutate the order")
	client.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrderInStatus(t, order.TkwConfirmed)
	cmd, _ := commands.NewStartTreatmentCommand(aggregate.ID(), account.Operator)

	client := new(MockOrderClient)
	mock.InOrder(
		client.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		client.On("Update", ctx, aggregate).Return(errors.New("backend unavailable")).Once(),
	)

	h := commands.NewTransitionOrderCommandHandler(client)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	client.AssertExpectations(t)
}
