package commands_test

import (
	"context"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUoW struct {
	mock.Mock
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestAdvanceDeliveriesCommandHandler_Handle_AdvancesEachDeliveryOneStep(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ready := testPlacedOrder(t, 100, 10, 1)
	inProgress := testPlacedOrder(t, 200, 5, 2)
	require.NoError(t, inProgress.Delivery().Advance())

	cmd := commands.NewAdvanceDeliveriesCommand()

	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetAllInPlacedStatus", ctx).Return([]*order.Order{ready, inProgress}, nil).Once(),
		mockOrderRepo.On("Update", ctx, ready).Return(nil).Once(),
		mockOrderRepo.On("Update", ctx, inProgress).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceDeliveriesCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.DeliveryInProgress, ready.Delivery().Status())
	assert.Equal(t, order.DeliveryCompleted, inProgress.Delivery().Status())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestAdvanceDeliveriesCommandHandler_Handle_SkipsCompletedDeliveries(t *testing.T) {
	// Arrange
	ctx := t.Context()
	completed := testPlacedOrder(t, 100, 10, 1)
	require.NoError(t, completed.Delivery().Advance())
	require.NoError(t, completed.Delivery().Advance())
	require.True(t, completed.Delivery().IsCompleted())

	cmd := commands.NewAdvanceDeliveriesCommand()

	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetAllInPlacedStatus", ctx).Return([]*order.Order{completed}, nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceDeliveriesCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.DeliveryCompleted, completed.Delivery().Status())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestAdvanceDeliveriesCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.AdvanceDeliveriesCommand // zero value command

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewAdvanceDeliveriesCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAdvanceDeliveriesCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}
