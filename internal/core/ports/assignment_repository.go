package ports

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/assignment"
	"canteen/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for the assignment
// ledger. The ledger enforces at most one record per order through a
// uniqueness constraint; AddBatch surfaces a violation as
// errs.ErrPersistenceConflict so callers can treat a concurrent duplicate
// as "already assigned" instead of a corruption.
type AssignmentRepository interface {
	// AddBatch persists one assignment record per eligible order of a
	// session. Fails with a persistence conflict if any order already
	// bears a record.
	AddBatch(ctx context.Context, assignments []*assignment.Assignment) error

	// GetByOrder retrieves the assignment record for one order.
	// Returns errs.ErrObjectNotFound if the order was never assigned.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// GetByOrders retrieves the assignment records existing for any of the
	// given orders. Orders without a record are simply absent from the
	// result.
	GetByOrders(ctx context.Context, orderIDs []kernel.UUID) ([]*assignment.Assignment, error)

	// Update persists changes to an existing assignment record, such as a
	// delivery completion stamp.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// SetRating writes a submitted rating into an existing record,
	// conditioned in the store on no rating being present yet. A record
	// already rated fails with errs.ErrPersistenceConflict, a missing
	// record with errs.ErrObjectNotFound.
	SetRating(ctx context.Context, orderID kernel.UUID, rating kernel.Rating, ratedBy kernel.UUID) error

	// CountAssignedSince counts, per courier, the assignment records whose
	// assignedAt falls at or after since. Couriers without recent records
	// are absent from the map and count as zero.
	CountAssignedSince(ctx context.Context, since time.Time) (map[kernel.UUID]int, error)
}
