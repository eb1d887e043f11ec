package commands

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/assignment"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// Each precondition of the rating flow fails with its own error so callers
// can report the exact reason, never a generic failure.
var (
	ErrRatingNotOwner          = errors.New("order does not belong to the submitting customer")
	ErrRatingWrongMethod       = errors.New("only delivery orders can be rated")
	ErrRatingNotYetDelivered   = errors.New("order is not delivered yet")
	ErrRatingMissingAssignment = errors.New("order has no assignment record")
	ErrRatingAlreadySubmitted  = errors.New("rating was already submitted for this order")
)

// SubmitDeliveryRatingCommandHandler records a customer's delivery rating
// exactly once and folds it into the courier's running average.
//
// Both writes run in the store rather than application memory: the
// assignment side through AssignmentRepository.SetRating, whose predicate
// only matches an unrated record, and the courier side through
// CourierRepository.ApplyRating, whose incremental-average arithmetic is a
// single UPDATE. Two concurrent submissions for the same order therefore
// land exactly once.
//
// Example:
//
//	handler := NewSubmitDeliveryRatingCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrRatingAlreadySubmitted):
//	    // one rating per order
//	case errors.Is(err, ErrRatingNotYetDelivered):
//	    // wait for the courier to finish
//	}
type SubmitDeliveryRatingCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitDeliveryRatingCommandHandler creates a handler for rating submission.
func NewSubmitDeliveryRatingCommandHandler(uowFactory UoWFactory) (SubmitDeliveryRatingCommandHandler, error) {
	if uowFactory == nil {
		return SubmitDeliveryRatingCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return SubmitDeliveryRatingCommandHandler{
		uowFactory: uowFactory,
	}, nil
}

// Handle processes the rating submission command.
// Preconditions are checked in order: ownership, delivery method, delivered
// status, assignment existence, rating still unset. Each violation maps to
// its distinct error.
func (h SubmitDeliveryRatingCommandHandler) Handle(ctx context.Context, command SubmitDeliveryRatingCommand) error {
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
	courierRepo := uow.CourierRepository()
	assignmentRepo := uow.AssignmentRepository()

	ratedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !ratedOrder.CustomerID().IsEqual(command.CustomerID()) {
		return ErrRatingNotOwner
	}
	if ratedOrder.Method() != order.Delivery {
		return ErrRatingWrongMethod
	}
	if ratedOrder.Status() != order.Delivered {
		return ErrRatingNotYetDelivered
	}

	record, err := assignmentRepo.GetByOrder(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRatingMissingAssignment
	}
	if err != nil {
		return err
	}

	if err = record.Rate(command.Rating(), command.CustomerID()); err != nil {
		if errors.Is(err, assignment.ErrAlreadyRated) {
			return ErrRatingAlreadySubmitted
		}
		if errors.Is(err, assignment.ErrNotYetDelivered) {
			return ErrRatingNotYetDelivered
		}
		return err
	}

	if err = assignmentRepo.SetRating(ctx, command.OrderID(), command.Rating(), command.CustomerID()); err != nil {
		// a concurrent submission set the rating between read and write
		if errors.Is(err, errs.ErrPersistenceConflict) {
			return ErrRatingAlreadySubmitted
		}
		return err
	}

	if err = courierRepo.ApplyRating(ctx, record.CourierID(), command.Rating()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
