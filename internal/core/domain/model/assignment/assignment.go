package assignment

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

// Domain errors for assignment operations.
var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

	// ErrAlreadyDelivered is returned when marking a delivery complete twice.
	ErrAlreadyDelivered = errors.New("delivery is already completed")

	// ErrNotYetDelivered is returned when rating an assignment before delivery completes.
	ErrNotYetDelivered = errors.New("delivery is not completed yet")

	// ErrAlreadyRated is returned on a second rating attempt; ratings are immutable once set.
	ErrAlreadyRated = errors.New("delivery is already rated")
)

// Assignment is the durable record that one courier was assigned one order.
// It is the unit of the assignment ledger: the fairness window counts these
// records by courier and assignment time, and the rating flow stores the
// customer's one-shot delivery score here before folding it into the
// courier's running average.
//
// Invariants:
//   - Exactly one Assignment may exist per order (enforced by storage with a
//     uniqueness constraint on the order reference)
//   - assignedAt is set at creation and immutable
//   - deliveredAt is set at most once
//   - rating and ratedBy are set together, at most once, and only after
//     deliveredAt is set
type Assignment struct {
	// orderID references the assigned order (unique across the ledger)
	orderID kernel.UUID

	// courierID references the courier carrying the order
	courierID kernel.UUID

	// assignedAt is the assignment timestamp, immutable after creation
	assignedAt time.Time

	// deliveredAt is the delivery completion time, nil while in flight
	deliveredAt *time.Time

	// rating is the customer's delivery score, nil until submitted
	rating *kernel.Rating

	// ratedBy identifies the customer who submitted the rating
	ratedBy *kernel.UUID

	// guard ensures the assignment was created via a constructor
	guard guard.ConstructorGuard
}

// NewAssignment creates a fresh Assignment at the moment a courier is chosen
// for an order. The record starts undelivered and unrated.
func NewAssignment(orderID, courierID kernel.UUID, assignedAt time.Time) (*Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := courierID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}
	if assignedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignedAt")
	}

	return &Assignment{
		orderID:    orderID,
		courierID:  courierID,
		assignedAt: assignedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage.
// The delivered/rated fields may be nil for in-flight assignments; a non-nil
// rating requires a non-nil deliveredAt and ratedBy, mirroring the write path.
func RestoreAssignment(
	orderID, courierID kernel.UUID,
	assignedAt time.Time,
	deliveredAt *time.Time,
	rating *kernel.Rating,
	ratedBy *kernel.UUID,
) (*Assignment, error) {
	a, err := NewAssignment(orderID, courierID, assignedAt)
	if err != nil {
		return nil, err
	}

	if deliveredAt != nil {
		at := *deliveredAt
		a.deliveredAt = &at
	}

	if rating != nil {
		if a.deliveredAt == nil {
			return nil, ErrNotYetDelivered
		}
		if ratedBy == nil {
			return nil, errs.NewValueIsRequiredError("ratedBy")
		}
		if err = rating.Validate(); err != nil {
			return nil, err
		}
		if err = ratedBy.Validate(); err != nil {
			return nil, err
		}
		r := *rating
		by := *ratedBy
		a.rating = &r
		a.ratedBy = &by
	}

	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// OrderID returns the assigned order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// CourierID returns the assigned courier's identifier.
func (a *Assignment) CourierID() kernel.UUID {
	return a.courierID
}

// AssignedAt returns the assignment timestamp.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// DeliveredAt returns the delivery completion time, or nil while in flight.
func (a *Assignment) DeliveredAt() *time.Time {
	if a.deliveredAt == nil {
		return nil
	}
	at := *a.deliveredAt
	return &at
}

// Rating returns the customer's delivery score, or nil if not yet rated.
func (a *Assignment) Rating() *kernel.Rating {
	if a.rating == nil {
		return nil
	}
	r := *a.rating
	return &r
}

// RatedBy returns the identifier of the rating customer, or nil if not yet rated.
func (a *Assignment) RatedBy() *kernel.UUID {
	if a.ratedBy == nil {
		return nil
	}
	by := *a.ratedBy
	return &by
}

// IsDelivered reports whether the delivery has completed.
func (a *Assignment) IsDelivered() bool {
	return a.deliveredAt != nil
}

// IsRated reports whether a rating has been submitted.
func (a *Assignment) IsRated() bool {
	return a.rating != nil
}

// MarkDelivered stamps the delivery completion time.
// Returns ErrAlreadyDelivered on a second attempt; deliveredAt is write-once.
func (a *Assignment) MarkDelivered(at time.Time) error {
	if a.deliveredAt != nil {
		return ErrAlreadyDelivered
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}

	a.deliveredAt = &at
	return nil
}

// Rate records the customer's one-shot delivery score.
// The delivery must be completed first, and a rating can never be replaced.
func (a *Assignment) Rate(rating kernel.Rating, ratedBy kernel.UUID) error {
	if a.deliveredAt == nil {
		return ErrNotYetDelivered
	}
	if a.rating != nil {
		return ErrAlreadyRated
	}
	if err := rating.Validate(); err != nil {
		return err
	}
	if err := ratedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ratedBy", err)
	}

	a.rating = &rating
	a.ratedBy = &ratedBy
	return nil
}
