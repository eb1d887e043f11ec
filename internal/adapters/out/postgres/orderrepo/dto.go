// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite canteen/session index backs the batch operations: the kitchen
// workflow and courier assignment both address whole checkout sessions.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CanteenID   uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_session"`
	SessionTs   int64     `gorm:"not null;index:idx_orders_session"`
	ItemName    string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null"`
	TotalAmount int       `gorm:"not null"`
	Method      string    `gorm:"type:varchar(16);not null"`
	Address     string    `gorm:"type:varchar(512)"`
	Status      string    `gorm:"type:varchar(32);not null;index"`
	ExpiresAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:          order.ID().Bytes(),
		CustomerID:  order.CustomerID().Bytes(),
		CanteenID:   order.CanteenID().Bytes(),
		SessionTs:   order.SessionTs(),
		ItemName:    order.ItemName(),
		Quantity:    order.Quantity(),
		TotalAmount: order.TotalAmount(),
		Method:      order.Method().String(),
		Address:     order.Address(),
		Status:      order.Status().String(),
		ExpiresAt:   order.ExpiresAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lifecycle status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	canteenID, err := kernel.UUIDFromBytes(dto.CanteenID[:])
	if err != nil {
		return nil, err
	}

	method, err := order.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		canteenID,
		dto.SessionTs,
		dto.ItemName,
		dto.Quantity,
		dto.TotalAmount,
		method,
		dto.Address,
		status,
		dto.ExpiresAt,
	)
}
