package kernel

import (
	"fmt"
	"math"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0

	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when a Location was not created via
// NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a geographic point used for courier positions and store
// addresses. It is an immutable value object; coordinates are validated on
// construction and the zero value fails validation.
//
// Example:
//
//	loc, err := kernel.NewLocation(33.589886, -7.603869)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location from latitude and longitude in decimal
// degrees. Returns an out-of-range error when either coordinate is outside
// its valid interval or not a finite number.
func NewLocation(latitude, longitude float64) (Location, error) {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return Location{}, errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return Location{}, errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	return Location{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual reports whether two locations carry the same coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// DistanceKmTo returns the great-circle distance to other in kilometers,
// computed with the haversine formula. Used for display only; the proximity
// filter of the available-orders query is applied by the server.
func (l Location) DistanceKmTo(other Location) float64 {
	latA := l.latitude * math.Pi / 180
	latB := other.latitude * math.Pi / 180
	dLat := latB - latA
	dLon := (other.longitude - l.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// String returns the location as "lat,lon" with six decimal places.
func (l Location) String() string {
	return fmt.Sprintf("%.6f,%.6f", l.latitude, l.longitude)
}

// Validate returns ErrLocationIsNotConstructed when the Location was not
// created via NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}
