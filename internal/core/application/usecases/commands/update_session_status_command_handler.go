package commands

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// ErrNoOrdersToUpdate is returned when the session holds no order that can
// take the requested status.
var ErrNoOrdersToUpdate = errors.New("no orders to update in session")

// UpdateSessionStatusCommandHandler moves a checkout session through the
// kitchen workflow as one batch. Every order's own state machine is
// consulted, so an illegal jump (placed straight to ready, say) fails the
// whole command instead of leaving the session half-moved.
//
// When the target is picked, only pickup orders are affected; delivery
// orders of a mixed session stay ready for the assignment flow.
type UpdateSessionStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateSessionStatusCommandHandler creates a handler for session status updates.
func NewUpdateSessionStatusCommandHandler(uowFactory OrderUoWFactory) (UpdateSessionStatusCommandHandler, error) {
	if uowFactory == nil {
		return UpdateSessionStatusCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return UpdateSessionStatusCommandHandler{
		uowFactory: uowFactory,
	}, nil
}

// Handle processes the session status update and reports how many orders
// were advanced.
func (h UpdateSessionStatusCommandHandler) Handle(ctx context.Context, command UpdateSessionStatusCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	sessionOrders, err := orderRepo.GetSessionOrders(ctx, command.CanteenID(), command.SessionTs())
	if err != nil {
		return 0, err
	}

	var ids []kernel.UUID
	for _, o := range sessionOrders {
		if command.Status() == order.Picked && o.Method() != order.Pickup {
			continue
		}

		if err = h.advance(o, command.Status()); err != nil {
			return 0, err
		}
		ids = append(ids, o.ID())
	}
	if len(ids) == 0 {
		return 0, ErrNoOrdersToUpdate
	}

	affected, err := orderRepo.BulkUpdateStatus(ctx, ids, command.Status())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}

func (h UpdateSessionStatusCommandHandler) advance(o *order.Order, target order.Status) error {
	switch target {
	case order.Placed:
		return o.Place()
	case order.Cooking:
		return o.StartCooking()
	case order.Ready:
		return o.MarkReady()
	case order.Picked:
		return o.Pick()
	default:
		return ErrStatusNotSettable
	}
}
