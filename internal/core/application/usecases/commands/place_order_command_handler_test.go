package commands_test

import (
	"errors"
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create command with items", func(t *testing.T) {
		customerID := kernel.NewUUID()
		canteenID := kernel.NewUUID()

		cmd, err := commands.NewPlaceOrderCommand(customerID, canteenID, testSessionTs,
			[]commands.PlaceOrderItem{
				{ItemName: "Veg Thali", Quantity: 2, TotalAmount: 18000,
					Method: order.Delivery, Address: "Hostel Block C"},
				{ItemName: "Lassi", Quantity: 1, TotalAmount: 4000, Method: order.Pickup},
			})

		require.NoError(t, err)
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.Len(t, cmd.Items(), 2)
		assert.Equal(t, "Veg Thali", cmd.Items()[0].ItemName)
		assert.Equal(t, order.Pickup, cmd.Items()[1].Method)
	})

	t.Run("should fail with invalid session key", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), 0,
			[]commands.PlaceOrderItem{
				{ItemName: "Veg Thali", Quantity: 2, TotalAmount: 18000, Method: order.Pickup},
			})

		require.ErrorIs(t, err, commands.ErrSessionTsIsInvalid)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), testSessionTs, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPlaceOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should persist whole batch in one transaction", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), testSessionTs,
			[]commands.PlaceOrderItem{
				{ItemName: "Veg Thali", Quantity: 2, TotalAmount: 18000,
					Method: order.Delivery, Address: "Hostel Block C"},
				{ItemName: "Lassi", Quantity: 1, TotalAmount: 4000, Method: order.Pickup},
			})
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler, err := commands.NewPlaceOrderCommandHandler(factory)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		first := orderRepo.Calls[0].Arguments[1].(*order.Order)
		second := orderRepo.Calls[1].Arguments[1].(*order.Order)
		assert.Equal(t, cmd.SessionTs(), first.SessionTs())
		assert.Equal(t, cmd.SessionTs(), second.SessionTs())
		assert.Equal(t, order.Pending, first.Status())
		assert.Equal(t, first.ExpiresAt(), second.ExpiresAt())
		assert.False(t, first.ID().IsEqual(second.ID()))
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("domain rules reject delivery without address before any write", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), testSessionTs,
			[]commands.PlaceOrderItem{
				{ItemName: "Veg Thali", Quantity: 2, TotalAmount: 18000,
					Method: order.Pickup},
				{ItemName: "Lassi", Quantity: 1, TotalAmount: 4000,
					Method: order.Delivery}, // no address
			})
		require.NoError(t, err)

		factory := new(MockOrderUoWFactory)
		handler, err := commands.NewPlaceOrderCommandHandler(factory)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		// The valid first item must not have been persisted on its own.
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("mid-batch store failure commits nothing", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), testSessionTs,
			[]commands.PlaceOrderItem{
				{ItemName: "Veg Thali", Quantity: 2, TotalAmount: 18000, Method: order.Pickup},
				{ItemName: "Lassi", Quantity: 1, TotalAmount: 4000, Method: order.Pickup},
			})
		require.NoError(t, err)

		storeErr := errors.New("connection reset")
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(storeErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler, err := commands.NewPlaceOrderCommandHandler(factory)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, storeErr)
		uow.AssertNotCalled(t, "Commit", ctx)
		uow.AssertExpectations(t)
	})
}
