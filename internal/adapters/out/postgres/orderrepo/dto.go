// Package orderrepo persists order aggregates with GORM. It converts between
// the domain aggregate and its row in the "orders" table.
package orderrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of an order. Only the order itself is stored; the
// delivery status is computed from created_time on every read.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID           string     `gorm:"type:varchar(128);not null;index"`
	Address          string     `gorm:"type:text"`
	CreatedTime      time.Time  `gorm:"type:timestamptz;not null;index"`
	DeliveryLocation LatLongDTO `gorm:"embedded;embeddedPrefix:delivery_"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LatLongDTO is the embedded delivery location.
type LatLongDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID(),
		Address:     aggregate.Address(),
		CreatedTime: aggregate.CreatedTime(),
		DeliveryLocation: LatLongDTO{
			Latitude:  aggregate.DeliveryLocation().Latitude(),
			Longitude: aggregate.DeliveryLocation().Longitude(),
		},
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLatLong(dto.DeliveryLocation.Latitude, dto.DeliveryLocation.Longitude)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(id, dto.UserID, dto.Address, dto.CreatedTime, location)
}
