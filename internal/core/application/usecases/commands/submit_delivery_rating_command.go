package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrSubmitDeliveryRatingCommandIsNotConstructed = errors.New(
	"SubmitDeliveryRatingCommand must be created via NewSubmitDeliveryRatingCommand constructor",
)

// SubmitDeliveryRatingCommand represents a customer's one-shot rating of a
// completed delivery. The rating value is validated against the [0,5] range
// at construction, so an out-of-range submission never reaches the handler.
//
// Example:
//
//	cmd, err := NewSubmitDeliveryRatingCommand(orderID, customerID, 4.5)
//	if err != nil {
//	    // rating out of range or ids missing
//	}
//	err = handler.Handle(ctx, cmd)
type SubmitDeliveryRatingCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     kernel.Rating

	guard guard.ConstructorGuard
}

// NewSubmitDeliveryRatingCommand creates a command to rate a delivered order.
func NewSubmitDeliveryRatingCommand(orderID, customerID kernel.UUID, rating float64) (SubmitDeliveryRatingCommand, error) {
	command := SubmitDeliveryRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setRating(rating),
	); err != nil {
		return SubmitDeliveryRatingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDeliveryRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryRatingCommandIsNotConstructed)
}

// OrderID returns the rated order's identifier.
func (c SubmitDeliveryRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the submitting customer's identifier.
func (c SubmitDeliveryRatingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the submitted rating value.
func (c SubmitDeliveryRatingCommand) Rating() kernel.Rating {
	return c.rating
}

func (c *SubmitDeliveryRatingCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *SubmitDeliveryRatingCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *SubmitDeliveryRatingCommand) setRating(value float64) error {
	rating, err := kernel.NewRating(value)
	if err != nil {
		return err
	}

	c.rating = rating
	return nil
}
