package commands

import (
	"context"

	"canteen/internal/core/domain/model/courier"
	"canteen/internal/pkg/errs"
)

// CreateCourierCommandHandler persists newly registered couriers.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) (CreateCourierCommandHandler, error) {
	if uowFactory == nil {
		return CreateCourierCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}, nil
}

// Handle processes the courier creation command.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, command CreateCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newCourier, err := courier.NewCourier(command.CourierID(), command.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
