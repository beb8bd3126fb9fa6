package kernel

import (
	"strings"

	"logistics/internal/pkg/errs"
)

// Address is a street text with optional coordinates. Coordinates are absent until geocoded.
type Address struct {
	street string
	point  *GeoPoint
}

func NewAddress(street string, point *GeoPoint) (Address, error) {
	street = strings.TrimSpace(street)
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return Address{}, err
		}
	}
	return Address{street: street, point: copyPoint(point)}, nil
}

func (a Address) Street() string {
	return a.street
}

// Point returns the coordinates or nil if the address has not been geocoded.
func (a Address) Point() *GeoPoint {
	return copyPoint(a.point)
}

func (a Address) HasCoordinates() bool {
	return a.point != nil
}

// WithPoint returns a copy of the address located at point.
func (a Address) WithPoint(point GeoPoint) Address {
	return Address{street: a.street, point: &point}
}

func copyPoint(p *GeoPoint) *GeoPoint {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
