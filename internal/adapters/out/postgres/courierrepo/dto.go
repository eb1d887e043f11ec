// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"time"

	"canteen/internal/core/domain/model/courier"
	"canteen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Rating and the ratings counter are updated together by atomic SQL expressions,
// never by read-modify-write from application memory, so concurrent rating
// submissions for the same courier cannot lose updates.
type CourierDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name              string     `gorm:"type:varchar(255);not null"`
	Status            string     `gorm:"type:varchar(16);not null;index"`
	Rating            float64    `gorm:"not null;default:0"`
	TotalAssigned     int        `gorm:"not null;default:0"`
	TotalRatingsCount int        `gorm:"not null;default:0"`
	LastAssignedAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:                courier.ID().Bytes(),
		Name:              courier.Name(),
		Status:            courier.Status().String(),
		Rating:            courier.Rating().Value(),
		TotalAssigned:     courier.TotalAssigned(),
		TotalRatingsCount: courier.TotalRatingsCount(),
		LastAssignedAt:    courier.LastAssignedAt(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the complete aggregate including its statistics using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := courier.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	rating, err := kernel.NewRating(dto.Rating)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		status,
		rating,
		dto.TotalAssigned,
		dto.TotalRatingsCount,
		dto.LastAssignedAt,
	)
}
