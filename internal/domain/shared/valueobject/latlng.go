package valueobject

import (
	"fmt"

	"github.com/catalog/backend/internal/domain/shared"
)

// LatLng is a WGS84 geographic coordinate pair
type LatLng struct {
	latitude  float64
	longitude float64
}

// NewLatLng creates a coordinate pair, validating the WGS84 ranges:
// latitude in [-90, +90], longitude in [-180, +180].
func NewLatLng(latitude, longitude float64) (LatLng, error) {
	if latitude < -90 || latitude > 90 {
		return LatLng{}, shared.NewDomainError(shared.ErrInvalidCoordinate.Code,
			fmt.Sprintf("latitude %v is outside [-90, 90]", latitude))
	}
	if longitude < -180 || longitude > 180 {
		return LatLng{}, shared.NewDomainError(shared.ErrInvalidCoordinate.Code,
			fmt.Sprintf("longitude %v is outside [-180, 180]", longitude))
	}
	return LatLng{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in degrees
func (l LatLng) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees
func (l LatLng) Longitude() float64 {
	return l.longitude
}

// Equals returns true if both coordinates are identical
func (l LatLng) Equals(other LatLng) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// String returns a "lat,lng" representation
func (l LatLng) String() string {
	return fmt.Sprintf("%v,%v", l.latitude, l.longitude)
}
