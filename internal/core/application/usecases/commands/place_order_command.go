package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderItem is one item of a customer's checkout.
type PlaceOrderItem struct {
	ItemName    string
	Quantity    int
	TotalAmount int
	Method      order.Method
	Address     string
}

// PlaceOrderCommand represents a customer's checkout: a batch of items that
// share the same session key and move through the kitchen as one unit. The
// whole batch is persisted in one transaction, so a checkout either creates
// every order or none.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, canteenID, sessionTs,
//	    []commands.PlaceOrderItem{
//	        {ItemName: "Veg Thali", Quantity: 2, TotalAmount: 18000,
//	            Method: order.Delivery, Address: "Hostel Block C, Room 112"},
//	    })
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	canteenID  kernel.UUID
	sessionTs  int64
	items      []PlaceOrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to check out a batch of items.
// Per-item validation beyond the session key is deferred to the Order
// aggregate constructor, which owns the business rules (positive quantity,
// address required for delivery, and so on).
func NewPlaceOrderCommand(
	customerID, canteenID kernel.UUID,
	sessionTs int64,
	items []PlaceOrderItem,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setCanteenID(canteenID),
		command.setSessionTs(sessionTs),
		command.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CanteenID returns the serving canteen's identifier.
func (c PlaceOrderCommand) CanteenID() kernel.UUID {
	return c.canteenID
}

// SessionTs returns the checkout session key.
func (c PlaceOrderCommand) SessionTs() int64 {
	return c.sessionTs
}

// Items returns the checked-out items.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	return c.items
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setCanteenID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.canteenID = id
	return nil
}

func (c *PlaceOrderCommand) setSessionTs(sessionTs int64) error {
	if sessionTs <= 0 {
		return ErrSessionTsIsInvalid
	}

	c.sessionTs = sessionTs
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
