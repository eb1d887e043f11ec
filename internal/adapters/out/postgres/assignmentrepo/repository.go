package assignmentrepo

import (
	"context"
	"errors"
	"time"

	"canteen/internal/core/domain/model/assignment"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch persists one assignment record per order of a session in a single
// insert. A duplicate-key violation on order_id means some order was already
// assigned, surfaced as a persistence conflict so the caller can treat the
// race as "already assigned".
func (r *GormAssignmentRepository) AddBatch(
	ctx context.Context, assignments []*assignment.Assignment,
) error {
	if len(assignments) == 0 {
		return errs.NewValueIsRequiredError("assignments")
	}

	dtos := make([]AssignmentDTO, 0, len(assignments))
	for _, record := range assignments {
		if err := record.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(record))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewPersistenceConflictErrorWithCause(
				"assignment", dtos[0].OrderID.String(), err)
		}
		return err
	}

	for _, record := range assignments {
		r.tracker.TrackAggregate(record.OrderID(), record)
	}
	return nil
}

// GetByOrder retrieves the assignment record for one order.
func (r *GormAssignmentRepository) GetByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrders retrieves the assignment records existing for any of the given
// orders. Orders without a record are simply absent from the result.
func (r *GormAssignmentRepository) GetByOrders(
	ctx context.Context, orderIDs []kernel.UUID,
) ([]*assignment.Assignment, error) {
	if len(orderIDs) == 0 {
		return []*assignment.Assignment{}, nil
	}

	raw := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id IN ?", raw).Error; err != nil {
		return nil, err
	}

	records := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Update persists changes to an existing assignment record, such as a
// delivery completion stamp or a submitted rating.
func (r *GormAssignmentRepository) Update(
	ctx context.Context, aggregate *assignment.Assignment,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("order_id = ?", dto.OrderID).
		Select("*").Omit("order_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// SetRating writes a submitted rating into an existing assignment record.
// The write carries its own `rating IS NULL` predicate, so the one-shot rule
// holds even when two submissions race: the store accepts exactly one.
func (r *GormAssignmentRepository) SetRating(
	ctx context.Context, orderID kernel.UUID, rating kernel.Rating, ratedBy kernel.UUID,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := ratedBy.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("order_id = ? AND rating IS NULL", orderID.Bytes()).
		Updates(map[string]any{
			"rating":   rating.Value(),
			"rated_by": ratedBy.Bytes(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
			Where("order_id = ?", orderID.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return errs.NewPersistenceConflictError("assignment", orderID.String())
	}

	return nil
}

// CountAssignedSince counts, per courier, the assignment records whose
// assignedAt falls at or after since. Couriers without recent records are
// absent from the map.
func (r *GormAssignmentRepository) CountAssignedSince(
	ctx context.Context, since time.Time,
) (map[kernel.UUID]int, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT courier_id, COUNT(*)
		FROM assignments
		WHERE assigned_at >= ?
		GROUP BY courier_id
	`, since).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[kernel.UUID]int)
	for rows.Next() {
		var courierID uuid.UUID
		var count int
		if err = rows.Scan(&courierID, &count); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(courierID[:])
		if idErr != nil {
			return nil, idErr
		}
		counts[id] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
