// Package orderrepo reads the customer orders tasks are created for. Orders are
// written by the ordering side; Add exists for seeding and tests.
package orderrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure of an order.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Reference     string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerName  string     `gorm:"type:varchar(255)"`
	CustomerPhone string     `gorm:"type:varchar(64)"`
	AddressID     *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var addressID *uuid.UUID
	if id := o.AddressID(); id != nil {
		raw := id.Bytes()
		addressID = &raw
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		Reference:     o.Reference(),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		AddressID:     addressID,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var addressID *kernel.UUID
	if dto.AddressID != nil {
		aID, addrErr := kernel.UUIDFromBytes((*dto.AddressID)[:])
		if addrErr != nil {
			return nil, addrErr
		}
		addressID = &aID
	}

	return order.NewOrder(id, dto.Reference, dto.CustomerName, dto.CustomerPhone, addressID)
}
