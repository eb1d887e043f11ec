package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateSessionStatusCommand(t *testing.T) {
	t.Run("should accept kitchen statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Placed, order.Cooking, order.Ready, order.Picked} {
			_, err := commands.NewUpdateSessionStatusCommand(kernel.NewUUID(), testSessionTs, s)
			require.NoError(t, err, s.String())
		}
	})

	t.Run("should reject statuses owned by other flows", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.OutForDelivery, order.Delivered} {
			_, err := commands.NewUpdateSessionStatusCommand(kernel.NewUUID(), testSessionTs, s)
			require.ErrorIs(t, err, commands.ErrStatusNotSettable, s.String())
		}
	})
}

func TestUpdateSessionStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should move whole session to cooking", func(t *testing.T) {
		ctx := t.Context()
		canteenID := kernel.NewUUID()
		cmd, err := commands.NewUpdateSessionStatusCommand(canteenID, testSessionTs, order.Cooking)
		require.NoError(t, err)

		placed1 := restoredOrder(t, canteenID, order.Delivery, order.Placed)
		placed2 := restoredOrder(t, canteenID, order.Pickup, order.Placed)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetSessionOrders", ctx, canteenID, testSessionTs).
				Return([]*order.Order{placed1, placed2}, nil).Once(),
			orderRepo.On("BulkUpdateStatus", ctx, mock.Anything, order.Cooking).
				Return(2, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler, err := commands.NewUpdateSessionStatusCommandHandler(factory)
		require.NoError(t, err)

		affected, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, affected)
		assert.Equal(t, order.Cooking, placed1.Status())
		assert.Equal(t, order.Cooking, placed2.Status())
	})

	t.Run("picked only affects pickup orders", func(t *testing.T) {
		ctx := t.Context()
		canteenID := kernel.NewUUID()
		cmd, err := commands.NewUpdateSessionStatusCommand(canteenID, testSessionTs, order.Picked)
		require.NoError(t, err)

		deliveryReady := restoredOrder(t, canteenID, order.Delivery, order.Ready)
		pickupReady := restoredOrder(t, canteenID, order.Pickup, order.Ready)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetSessionOrders", ctx, canteenID, testSessionTs).
				Return([]*order.Order{deliveryReady, pickupReady}, nil).Once(),
			orderRepo.On("BulkUpdateStatus", ctx, []kernel.UUID{pickupReady.ID()}, order.Picked).
				Return(1, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler, err := commands.NewUpdateSessionStatusCommandHandler(factory)
		require.NoError(t, err)

		affected, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, affected)
		assert.Equal(t, order.Picked, pickupReady.Status())
		assert.Equal(t, order.Ready, deliveryReady.Status())
	})

	t.Run("illegal jump fails the whole command", func(t *testing.T) {
		ctx := t.Context()
		canteenID := kernel.NewUUID()
		cmd, err := commands.NewUpdateSessionStatusCommand(canteenID, testSessionTs, order.Ready)
		require.NoError(t, err)

		stillPlaced := restoredOrder(t, canteenID, order.Delivery, order.Placed)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetSessionOrders", ctx, canteenID, testSessionTs).
				Return([]*order.Order{stillPlaced}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler, err := commands.NewUpdateSessionStatusCommandHandler(factory)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		orderRepo.AssertNotCalled(t, "BulkUpdateStatus", ctx, mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("empty session has nothing to update", func(t *testing.T) {
		ctx := t.Context()
		canteenID := kernel.NewUUID()
		cmd, err := commands.NewUpdateSessionStatusCommand(canteenID, testSessionTs, order.Cooking)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetSessionOrders", ctx, canteenID, testSessionTs).
				Return([]*order.Order{}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler, err := commands.NewUpdateSessionStatusCommandHandler(factory)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrNoOrdersToUpdate)
	})
}
