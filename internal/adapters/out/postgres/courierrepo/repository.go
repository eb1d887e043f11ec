package courierrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/courier"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
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

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
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

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all couriers currently on shift.
func (r *GormCourierRepository) GetAllActive(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", courier.Active.String()).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

// IncrementAssigned atomically adds count to the courier's lifetime assignment
// total and stamps the assignment time. The counter arithmetic runs in the
// database so concurrent assignments cannot lose increments.
func (r *GormCourierRepository) IncrementAssigned(
	ctx context.Context, id kernel.UUID, count int, at time.Time,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count",
			fmt.Errorf("%d is not greater than 0", count))
	}

	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"total_assigned":   gorm.Expr("total_assigned + ?", count),
			"last_assigned_at": at,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", id.String())
	}

	return nil
}

// ApplyRating atomically folds a rating submission into the courier's running
// average: newAvg = (oldAvg*oldCount + submitted) / (oldCount+1). Average and
// counter change in one UPDATE so concurrent submissions serialize on the row.
func (r *GormCourierRepository) ApplyRating(
	ctx context.Context, id kernel.UUID, submitted kernel.Rating,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := submitted.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"rating": gorm.Expr(
				"(rating * total_ratings_count + ?) / (total_ratings_count + 1)",
				submitted.Value(),
			),
			"total_ratings_count": gorm.Expr("total_ratings_count + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", id.String())
	}

	return nil
}
