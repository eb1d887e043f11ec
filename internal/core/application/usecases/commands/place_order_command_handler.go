package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// CheckoutWindow is how long a freshly placed order stays pending before
// the promotion job advances it into the kitchen queue.
const CheckoutWindow = 5 * time.Minute

// PlaceOrderCommandHandler persists a checkout as pending orders sharing one
// session key. All orders of the batch are written in a single transaction;
// a rejected item aborts the whole checkout, so no partial session can
// appear. The checkout window is stamped at handling time; once it expires
// the promotion job moves the orders to placed.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) (PlaceOrderCommandHandler, error) {
	if uowFactory == nil {
		return PlaceOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}, nil
}

// Handle processes the order placement command.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	// Construct the whole batch before touching the store: a bad item
	// fails the checkout before any write.
	expiresAt := time.Now().UTC().Add(CheckoutWindow)
	newOrders := make([]*order.Order, 0, len(command.Items()))
	for _, item := range command.Items() {
		newOrder, err := order.NewOrder(
			kernel.NewUUID(),
			command.CustomerID(),
			command.CanteenID(),
			command.SessionTs(),
			item.ItemName,
			item.Quantity,
			item.TotalAmount,
			item.Method,
			item.Address,
			expiresAt,
		)
		if err != nil {
			return err
		}
		newOrders = append(newOrders, newOrder)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	for _, newOrder := range newOrders {
		if err := orderRepo.Add(ctx, newOrder); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
