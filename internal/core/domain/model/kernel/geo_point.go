package kernel

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean earth radius used by every distance in the service.
const EarthRadiusKm = 6371.0

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a zero-value GeoPoint is validated.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is an immutable WGS84 coordinate pair.
//
// It is stored as an orb.Point so it can be handed to orb/geojson without conversion.
// Note that orb.Point is ordered [lon, lat].
//
// Example:
//
//	shop, err := kernel.NewGeoPoint(36.8065, 10.1815)
//	if err != nil {
//	    return err
//	}
//	km := shop.DistanceKm(customer)
type GeoPoint struct {
	point orb.Point
	guard guard.ConstructorGuard
}

// NewGeoPoint validates latitude in [-90, 90] and longitude in [-180, 180].
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	var rangeErrs []error
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude))
	}
	if math.IsNaN(lon) || lon < MinLongitude || lon > MaxLongitude {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("longitude", lon, MinLongitude, MaxLongitude))
	}
	if err := errors.Join(rangeErrs...); err != nil {
		return GeoPoint{}, err
	}

	return GeoPoint{
		point: orb.Point{lon, lat},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewGeoPointFromOptional builds a point only when both coordinates are present.
// A single missing coordinate yields (nil, nil): the location is unknown.
func NewGeoPointFromOptional(lat, lon *float64) (*GeoPoint, error) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	p, err := NewGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (p GeoPoint) Lat() float64 {
	return p.point.Lat()
}

func (p GeoPoint) Lon() float64 {
	return p.point.Lon()
}

// Point returns the orb representation ([lon, lat]).
func (p GeoPoint) Point() orb.Point {
	return p.point
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.point.Equal(other.point)
}

// DistanceKm is the great-circle distance to other.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	return DistanceKm(p.Lat(), p.Lon(), other.Lat(), other.Lon())
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat(), p.Lon())
}

// DistanceKm computes the haversine distance in kilometres with EarthRadiusKm.
// It is symmetric and returns 0 for identical points.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceBetween returns the distance between two optional points.
// The second result is false when either point is unknown.
func DistanceBetween(a, b *GeoPoint) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	return a.DistanceKm(*b), true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
