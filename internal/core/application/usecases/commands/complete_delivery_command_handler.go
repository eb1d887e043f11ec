package commands

import (
	"context"
	"errors"
	"time"

	"canteen/internal/pkg/errs"
)

// ErrDeliveryMissingAssignment is returned when completing an order that
// never went through the assignment flow.
var ErrDeliveryMissingAssignment = errors.New("order has no assignment record")

// CompleteDeliveryCommandHandler finishes a delivery: the order moves to
// delivered and the assignment record receives its deliveredAt stamp, which
// unlocks the customer's rating.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) (CompleteDeliveryCommandHandler, error) {
	if uowFactory == nil {
		return CompleteDeliveryCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}, nil
}

// Handle processes the delivery completion command.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assignmentRepo := uow.AssignmentRepository()

	deliveredOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = deliveredOrder.CompleteDelivery(); err != nil {
		return err
	}

	record, err := assignmentRepo.GetByOrder(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDeliveryMissingAssignment
	}
	if err != nil {
		return err
	}

	if err = record.MarkDelivered(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, deliveredOrder); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
