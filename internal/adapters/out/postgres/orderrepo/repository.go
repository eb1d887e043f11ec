package orderrepo

import (
	"context"
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves all orders placed by one customer, newest session first.
func (r *GormOrderRepository) GetByCustomer(
	ctx context.Context, customerID kernel.UUID,
) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("session_ts DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetSessionOrders retrieves all orders of one checkout session within one canteen.
func (r *GormOrderRepository) GetSessionOrders(
	ctx context.Context, canteenID kernel.UUID, sessionTs int64,
) ([]*order.Order, error) {
	if err := canteenID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("canteen_id = ? AND session_ts = ?", canteenID.Bytes(), sessionTs).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateSessionStatus transitions every order of a session to the given status
// in one bulk write and reports the number of rows affected.
func (r *GormOrderRepository) UpdateSessionStatus(
	ctx context.Context, canteenID kernel.UUID, sessionTs int64, status order.Status,
) (int, error) {
	if err := canteenID.Validate(); err != nil {
		return 0, err
	}
	if err := status.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("canteen_id = ? AND session_ts = ?", canteenID.Bytes(), sessionTs).
		Update("status", status.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

// BulkUpdateStatus transitions the listed orders to the given status in one
// write and reports the number of rows affected.
func (r *GormOrderRepository) BulkUpdateStatus(
	ctx context.Context, ids []kernel.UUID, status order.Status,
) (int, error) {
	if err := status.Validate(); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return 0, err
		}
		raw = append(raw, id.Bytes())
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id IN ?", raw).
		Update("status", status.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

// GetPendingExpired retrieves orders still pending whose checkout window
// closed at or before the given time.
func (r *GormOrderRepository) GetPendingExpired(
	ctx context.Context, before time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at <= ?", order.Pending.String(), before).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
