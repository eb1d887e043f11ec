package commands

import (
	"context"

	"canteen/internal/core/domain/model/courier"
	"canteen/internal/pkg/errs"
)

// SetCourierStatusCommandHandler toggles a courier's availability for the
// assignment pool.
type SetCourierStatusCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierStatusCommandHandler creates a handler for courier status changes.
func NewSetCourierStatusCommandHandler(uowFactory CourierUoWFactory) (SetCourierStatusCommandHandler, error) {
	if uowFactory == nil {
		return SetCourierStatusCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return SetCourierStatusCommandHandler{
		uowFactory: uowFactory,
	}, nil
}

// Handle processes the status change command.
func (h SetCourierStatusCommandHandler) Handle(ctx context.Context, command SetCourierStatusCommand) error {
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

	courierRepo := uow.CourierRepository()

	target, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	switch command.Status() {
	case courier.Active:
		target.Activate()
	case courier.Inactive:
		target.Deactivate()
	}

	if err = courierRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
