// Package ports defines repository interfaces for the canteen delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/courier"
	"canteen/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Besides plain aggregate CRUD it exposes two atomic counter operations,
// because assignment and rating statistics for one courier can be updated
// concurrently and a read-modify-write from application memory would lose
// updates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllActive retrieves every courier with active status.
	// These form the eligible pool for the assignment policy.
	GetAllActive(ctx context.Context) ([]*courier.Courier, error)

	// IncrementAssigned atomically adds count to the courier's lifetime
	// assignment total and stamps lastAssignedAt. The increment is applied
	// by the store, not computed in application memory.
	IncrementAssigned(ctx context.Context, id kernel.UUID, count int, at time.Time) error

	// ApplyRating atomically folds a new rating submission into the
	// courier's running average and increments its ratings count, using
	// newAvg = (oldAvg*oldCount + submitted) / (oldCount+1) evaluated by
	// the store in a single update.
	ApplyRating(ctx context.Context, id kernel.UUID, submitted kernel.Rating) error
}
