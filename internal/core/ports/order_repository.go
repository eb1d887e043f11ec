package ports

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are addressed individually by id and in batches by their session
// key, because the kitchen workflow and the assignment policy both operate
// on whole checkout sessions.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by one customer,
	// most recent session first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetSessionOrders retrieves all orders of one checkout session
	// within one canteen.
	GetSessionOrders(ctx context.Context, canteenID kernel.UUID, sessionTs int64) ([]*order.Order, error)

	// UpdateSessionStatus transitions every order of a session to the given
	// status in one bulk write and reports the number of rows affected.
	UpdateSessionStatus(ctx context.Context, canteenID kernel.UUID, sessionTs int64, status order.Status) (int, error)

	// BulkUpdateStatus transitions the listed orders to the given status in
	// one write and reports the number of rows affected.
	BulkUpdateStatus(ctx context.Context, ids []kernel.UUID, status order.Status) (int, error)

	// GetPendingExpired retrieves orders still pending whose checkout
	// window closed at or before the given time. Used by the promotion job
	// to advance abandoned-checkout orders into the kitchen queue.
	GetPendingExpired(ctx context.Context, before time.Time) ([]*order.Order, error)
}
