package kernel

import (
	"fmt"

	"meddrone/internal/pkg/errs"
)

const (
	// GeoLatMin and GeoLatMax bound valid latitudes in degrees.
	GeoLatMin = -90.0
	GeoLatMax = 90.0

	// GeoLngMin and GeoLngMax bound valid longitudes in degrees.
	GeoLngMin = -180.0
	GeoLngMax = 180.0
)

// GeoPoint is a value object holding a WGS84 coordinate pair.
// It locates hospitals and villages for the distance policy.
//
// GeoPoint is immutable; construct through NewGeoPoint. The zero value
// (0, 0) is a technically valid coordinate, so reference records that have
// no known position carry a nil *GeoPoint rather than a zero one.
type GeoPoint struct {
	lat float64
	lng float64
}

// NewGeoPoint creates a GeoPoint after range-checking both coordinates.
//
// Returns:
//   - GeoPoint: the validated point
//   - error: ValueIsOutOfRangeError if either coordinate is outside its range
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	point := GeoPoint{}

	if err := point.setLat(lat); err != nil {
		return GeoPoint{}, err
	}
	if err := point.setLng(lng); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual compares two points for exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String renders the point as "(lat, lng)" for logs and errors.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.7f, %.7f)", p.lat, p.lng)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoLatMin || lat > GeoLatMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoLatMin, GeoLatMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < GeoLngMin || lng > GeoLngMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, GeoLngMin, GeoLngMax)
	}
	p.lng = lng
	return nil
}
