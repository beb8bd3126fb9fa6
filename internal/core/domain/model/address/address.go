package address

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a customer address record. Tasks copy its street and coordinates at
// creation time; geocoding a task writes the coordinates back here so the next
// task for the same address starts out routable.
type Address struct {
	id            kernel.UUID
	location      kernel.Address
	isConstructed bool
}

func NewAddress(id kernel.UUID, location kernel.Address) (*Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Address{id: id, location: location, isConstructed: true}, nil
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() kernel.UUID {
	return a.id
}

// Location returns the street and, once geocoded, its coordinates.
func (a *Address) Location() kernel.Address {
	return a.location
}

func (a *Address) FullAddress() string {
	return a.location.Street()
}

func (a *Address) Geocode(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	a.location = a.location.WithPoint(point)
	return nil
}
