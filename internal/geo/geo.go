// Package geo provides the spherical-earth distance math used by the trip
// calculator.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Coordinate range limits in degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinate validation errors.
var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Location is a named point on the globe in decimal degrees.
type Location struct {
	// ID is the IATA code or helipad identifier, e.g. "JMK".
	ID   string  `json:"id,omitempty"   yaml:"id,omitempty"`
	Name string  `json:"name"           yaml:"name"`
	Lat  float64 `json:"lat"            yaml:"lat"`
	Lon  float64 `json:"lon"            yaml:"lon"`
}

// String returns "Name (ID)" or just the name when no ID is set.
func (l Location) String() string {
	if l.ID == "" {
		return l.Name
	}
	return fmt.Sprintf("%s (%s)", l.Name, l.ID)
}

// Distance returns the great-circle distance in kilometres between two points
// given in degrees, using the haversine formula on a sphere of EarthRadiusKm.
// The result is always finite and non-negative for finite inputs.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// Rounding can push a a hair outside [0,1] for antipodal points.
	a = math.Min(1, math.Max(0, a))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// DistanceBetween returns the great-circle distance in kilometres between two locations.
func DistanceBetween(from, to Location) float64 {
	return Distance(from.Lat, from.Lon, to.Lat, to.Lon)
}

// ValidateCoords checks that lat and lon are inside the valid degree ranges.
func ValidateCoords(lat, lon float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return fmt.Errorf("%w: got %f", ErrInvalidLatitude, lat)
	}
	if math.IsNaN(lon) || lon < MinLongitude || lon > MaxLongitude {
		return fmt.Errorf("%w: got %f", ErrInvalidLongitude, lon)
	}
	return nil
}

// Validate checks the location's coordinates.
func (l Location) Validate() error {
	return ValidateCoords(l.Lat, l.Lon)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
