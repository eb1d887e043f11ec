package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// PromotePendingOrdersCommandHandler advances pending orders whose checkout
// window has closed into placed status, entering them into the kitchen
// queue. Runs periodically from the job scheduler.
type PromotePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPromotePendingOrdersCommandHandler creates a handler for pending order promotion.
func NewPromotePendingOrdersCommandHandler(uowFactory OrderUoWFactory) (PromotePendingOrdersCommandHandler, error) {
	if uowFactory == nil {
		return PromotePendingOrdersCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return PromotePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}, nil
}

// Handle processes the promotion command and reports how many orders were
// advanced. A run finding nothing to promote is a successful no-op.
func (h PromotePendingOrdersCommandHandler) Handle(ctx context.Context, command PromotePendingOrdersCommand) (int, error) {
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

	expired, err := orderRepo.GetPendingExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]kernel.UUID, 0, len(expired))
	for _, o := range expired {
		if err = o.Place(); err != nil {
			return 0, err
		}
		ids = append(ids, o.ID())
	}

	affected, err := orderRepo.BulkUpdateStatus(ctx, ids, order.Placed)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}
