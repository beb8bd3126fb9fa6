// Package addressrepo persists customer address records.
package addressrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullAddress string    `gorm:"type:text;not null"`
	Latitude    *float64  `gorm:"type:double precision"`
	Longitude   *float64  `gorm:"type:double precision"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) Add(ctx context.Context, a *address.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAddressRepository) Update(ctx context.Context, a *address.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).Model(&AddressDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", a.ID().String())
	}

	return nil
}

func fromDomain(a *address.Address) AddressDTO {
	dto := AddressDTO{
		ID:          a.ID().Bytes(),
		FullAddress: a.FullAddress(),
	}
	if p := a.Location().Point(); p != nil {
		lat, lon := p.Lat(), p.Lon()
		dto.Latitude, dto.Longitude = &lat, &lon
	}
	return dto
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPointFromOptional(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewAddress(dto.FullAddress, point)
	if err != nil {
		return nil, err
	}

	return address.NewAddress(id, location)
}
