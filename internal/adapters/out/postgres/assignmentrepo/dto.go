// Package assignmentrepo provides data transfer objects and mapping functions
// for the assignment ledger. Each record binds one order to the courier chosen
// for its session; the unique index on order_id is the ledger's idempotency
// guarantee, turning concurrent duplicate assignment into a database conflict.
package assignmentrepo

import (
	"time"

	"canteen/internal/core/domain/model/assignment"
	"canteen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment records.
type AssignmentDTO struct {
	OrderID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedAt  time.Time  `gorm:"not null;index"`
	DeliveredAt *time.Time
	Rating      *float64
	RatedBy     *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for assignment records.
// Overrides GORM's default naming convention to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment record to its database representation.
func fromDomain(record *assignment.Assignment) AssignmentDTO {
	dto := AssignmentDTO{
		OrderID:     record.OrderID().Bytes(),
		CourierID:   record.CourierID().Bytes(),
		AssignedAt:  record.AssignedAt(),
		DeliveredAt: record.DeliveredAt(),
	}

	if rating := record.Rating(); rating != nil {
		value := rating.Value()
		dto.Rating = &value
	}
	if ratedBy := record.RatedBy(); ratedBy != nil {
		raw := ratedBy.Bytes()
		dto.RatedBy = &raw
	}

	return dto
}

// toDomain converts a database DTO to an assignment record using RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	var rating *kernel.Rating
	if dto.Rating != nil {
		r, ratingErr := kernel.NewRating(*dto.Rating)
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating = &r
	}

	var ratedBy *kernel.UUID
	if dto.RatedBy != nil {
		by, byErr := kernel.UUIDFromBytes((*dto.RatedBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		ratedBy = &by
	}

	return assignment.RestoreAssignment(orderID, courierID, dto.AssignedAt, dto.DeliveredAt, rating, ratedBy)
}
