package queries

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrGetOrderSessionsQueryIsNotConstructed = errors.New(
	"GetOrderSessionsQuery must be created via NewGetOrderSessionsQuery constructor",
)

// GetOrderSessionsQuery retrieves a canteen's checkout sessions as the
// kitchen dashboard sees them: one row per session with item count, amount,
// batch status and the assigned courier when one exists.
//
// Example:
//
//	query, err := NewGetOrderSessionsQuery(canteenID)
//	if err != nil {
//	    return err
//	}
//	sessions, err := handler.Handle(ctx, query)
type GetOrderSessionsQuery struct { //nolint:recvcheck //using for validation
	canteenID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSessionsQuery creates a query for one canteen's sessions.
func NewGetOrderSessionsQuery(canteenID kernel.UUID) (GetOrderSessionsQuery, error) {
	query := GetOrderSessionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCanteenID(canteenID); err != nil {
		return GetOrderSessionsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSessionsQueryIsNotConstructed)
}

// CanteenID returns the canteen whose sessions are requested.
func (q GetOrderSessionsQuery) CanteenID() kernel.UUID {
	return q.canteenID
}

func (q *GetOrderSessionsQuery) setCanteenID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.canteenID = id
	return nil
}

// GetOrderSessionsQueryResponse represents one checkout session in the read
// model. Status is the batch status shared by the session's orders, or the
// literal "finished" once every order reached a terminal state. Courier
// fields are nil for sessions not yet assigned.
type GetOrderSessionsQueryResponse struct {
	SessionTs     int64
	ItemCount     int
	TotalAmount   int
	Status        string
	CourierName   *string
	CourierRating *float64
}
