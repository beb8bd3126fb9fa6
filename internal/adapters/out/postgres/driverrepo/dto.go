// Package driverrepo persists the driver aggregate.
package driverrepo

import (
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the row layout of the drivers table. Latitude and longitude are
// both NULL until the driver first reports a position.
type DriverDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	IsAvailable bool      `gorm:"not null;index"`
	Latitude    *float64  `gorm:"type:double precision"`
	Longitude   *float64  `gorm:"type:double precision"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:          d.ID().Bytes(),
		Name:        d.Name(),
		IsAvailable: d.IsAvailable(),
	}
	if loc := d.CurrentLocation(); loc != nil {
		lat, lon := loc.Lat(), loc.Lon()
		dto.Latitude, dto.Longitude = &lat, &lon
	}
	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPointFromOptional(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.IsAvailable, location)
}
