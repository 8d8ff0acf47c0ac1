package commands_test

import (
	"context"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/alert"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/core/domain/model/measurement"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/core/domain/model/snapshot"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) ListActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockMeasurementClient struct{ mock.Mock }

func (m *MockMeasurementClient) ListForLab(ctx context.Context) ([]measurement.Measurement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]measurement.Measurement), args.Error(1)
}

type MockSnapshotStore struct{ mock.Mock }

func (m *MockSnapshotStore) Get(ctx context.Context, category snapshot.Category) (snapshot.Snapshot, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(snapshot.Snapshot), args.Error(1)
}

func (m *MockSnapshotStore) Replace(ctx context.Context, snap snapshot.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockSnapshotStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockAlertQueue struct{ mock.Mock }

func (m *MockAlertQueue) Push(a alert.Alert) {
	m.Called(a)
}

func (m *MockAlertQueue) Active() []alert.Alert {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]alert.Alert)
}

func (m *MockAlertQueue) Drop() {
	m.Called()
}

type MockOrderCache struct{ mock.Mock }

func (m *MockOrderCache) ReplaceAll(orders []*order.Order) {
	m.Called(orders)
}

func (m *MockOrderCache) All() []*order.Order {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*order.Order)
}

func (m *MockOrderCache) Drop() {
	m.Called()
}

type MockJobStopper struct{ mock.Mock }

func (m *MockJobStopper) StopAll() {
	m.Called()
}

func restoreOrderInStatus(t require.TestingT, status order.Status) *order.Order {
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "wheat", "aurora", "LOT-7", status,
		"", nil, nil, order.TreatmentNumbers{},
	)
	require.NoError(t, err)
	return o
}

func labUser(t require.TestingT) account.User {
	user, err := account.NewUser("Lena", "lena@example.com", []account.Role{account.Laboratory}, true)
	require.NoError(t, err)
	return user
}

func operatorUser(t require.TestingT) account.User {
	user, err := account.NewUser("Olaf", "olaf@example.com", []account.Role{account.Operator}, false)
	require.NoError(t, err)
	return user
}
