package commands

import (
	"context"
	"errors"
	"time"

	"canteen/internal/core/domain/model/assignment"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// DefaultFairnessWindow bounds how far back the fairness filter looks when
// counting recent assignments per courier.
const DefaultFairnessWindow = 7 * 24 * time.Hour

var (
	// ErrNoEligibleOrders is returned when the session holds no ready
	// delivery order at all.
	ErrNoEligibleOrders = errors.New("no eligible orders in session")

	// ErrSessionAlreadyAssigned is returned when every eligible order of the
	// session already bears an assignment record. Informational for the
	// caller, not a failure of state.
	ErrSessionAlreadyAssigned = errors.New("session is already assigned")

	ErrFairnessWindowIsInvalid = errors.New("fairness window must be greater than 0")
)

// AssignSessionResult reports the outcome of a session assignment.
type AssignSessionResult struct {
	CourierID     kernel.UUID
	CourierName   string
	CourierRating float64
	AffectedCount int
}

// AssignSessionCommandHandler orchestrates the session assignment transaction:
// compute the eligible order set, pick one courier through the fairness
// policy, write one assignment record per order, advance the orders to
// out_for_delivery and bump the courier's counters — all in one unit of work.
//
// Idempotency: orders already bearing an assignment record are excluded, so a
// repeated call affects nothing and reports ErrSessionAlreadyAssigned. A
// concurrent duplicate insert is caught by the ledger's uniqueness constraint
// and reported the same way.
//
// Example:
//
//	handler := NewAssignSessionCommandHandler(uowFactory, selector, DefaultFairnessWindow)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoEligibleOrders):
//	    // nothing ready for delivery in this session
//	case errors.Is(err, ErrSessionAlreadyAssigned):
//	    // previous call already did the work
//	case errors.Is(err, services.ErrNoActiveCouriers):
//	    // no courier to give the work to
//	}
type AssignSessionCommandHandler struct {
	uowFactory UoWFactory
	selector   services.CourierSelector
	window     time.Duration
}

// NewAssignSessionCommandHandler creates a handler for session assignment.
// The window is the trailing fairness horizon used for recent-assignment
// counting; DefaultFairnessWindow matches the policy default of 7 days.
func NewAssignSessionCommandHandler(
	uowFactory UoWFactory,
	selector services.CourierSelector,
	window time.Duration,
) (AssignSessionCommandHandler, error) {
	if uowFactory == nil {
		return AssignSessionCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if err := selector.Validate(); err != nil {
		return AssignSessionCommandHandler{}, err
	}
	if window <= 0 {
		return AssignSessionCommandHandler{}, ErrFairnessWindowIsInvalid
	}

	return AssignSessionCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
		window:     window,
	}, nil
}

// Handle processes the session assignment command.
func (h AssignSessionCommandHandler) Handle(ctx context.Context, command AssignSessionCommand) (AssignSessionResult, error) {
	if err := command.Validate(); err != nil {
		return AssignSessionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignSessionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()
	assignmentRepo := uow.AssignmentRepository()

	sessionOrders, err := orderRepo.GetSessionOrders(ctx, command.CanteenID(), command.SessionTs())
	if err != nil {
		return AssignSessionResult{}, err
	}

	var ready []*order.Order
	for _, o := range sessionOrders {
		if o.IsAssignable() {
			ready = append(ready, o)
		}
	}
	if len(ready) == 0 {
		return AssignSessionResult{}, ErrNoEligibleOrders
	}

	eligible, err := h.excludeAssigned(ctx, assignmentRepo, ready)
	if err != nil {
		return AssignSessionResult{}, err
	}
	if len(eligible) == 0 {
		return AssignSessionResult{}, ErrSessionAlreadyAssigned
	}

	couriers, err := courierRepo.GetAllActive(ctx)
	if err != nil {
		return AssignSessionResult{}, err
	}

	now := time.Now().UTC()
	recentCounts, err := assignmentRepo.CountAssignedSince(ctx, now.Add(-h.window))
	if err != nil {
		return AssignSessionResult{}, err
	}

	chosen, err := h.selector.Select(couriers, recentCounts)
	if err != nil {
		return AssignSessionResult{}, err
	}

	records := make([]*assignment.Assignment, 0, len(eligible))
	orderIDs := make([]kernel.UUID, 0, len(eligible))
	for _, o := range eligible {
		record, err := assignment.NewAssignment(o.ID(), chosen.ID(), now)
		if err != nil {
			return AssignSessionResult{}, err
		}
		records = append(records, record)
		orderIDs = append(orderIDs, o.ID())
	}

	if err = assignmentRepo.AddBatch(ctx, records); err != nil {
		// a concurrent writer won the race for at least one order
		if errors.Is(err, errs.ErrPersistenceConflict) {
			return AssignSessionResult{}, ErrSessionAlreadyAssigned
		}
		return AssignSessionResult{}, err
	}

	for _, o := range eligible {
		if err = o.StartDelivery(); err != nil {
			return AssignSessionResult{}, err
		}
	}
	if _, err = orderRepo.BulkUpdateStatus(ctx, orderIDs, order.OutForDelivery); err != nil {
		return AssignSessionResult{}, err
	}

	if err = courierRepo.IncrementAssigned(ctx, chosen.ID(), len(eligible), now); err != nil {
		return AssignSessionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignSessionResult{}, err
	}

	return AssignSessionResult{
		CourierID:     chosen.ID(),
		CourierName:   chosen.Name(),
		CourierRating: chosen.Rating().Value(),
		AffectedCount: len(eligible),
	}, nil
}

// excludeAssigned drops ready orders that already bear an assignment record,
// making repeated calls for the same session idempotent.
func (h AssignSessionCommandHandler) excludeAssigned(
	ctx context.Context,
	assignmentRepo ports.AssignmentRepository,
	ready []*order.Order,
) ([]*order.Order, error) {
	ids := make([]kernel.UUID, 0, len(ready))
	for _, o := range ready {
		ids = append(ids, o.ID())
	}

	existing, err := assignmentRepo.GetByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	assigned := make(map[kernel.UUID]struct{}, len(existing))
	for _, a := range existing {
		assigned[a.OrderID()] = struct{}{}
	}

	var eligible []*order.Order
	for _, o := range ready {
		if _, ok := assigned[o.ID()]; !ok {
			eligible = append(eligible, o)
		}
	}

	return eligible, nil
}
