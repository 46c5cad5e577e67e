// Package travel computes the traveler footprint: the flight or helicopter
// trip to the island and the daily transport on the island.
package travel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/geo"
	"github.com/rshade/isleprint/internal/greenops"
)

// Mode is the way the traveler reaches the island.
type Mode string

// Supported travel modes.
const (
	ModeFlight     Mode = "flight"
	ModeHelicopter Mode = "helicopter"
)

// Leg multipliers.
const (
	OneWayLegs    = 1
	RoundTripLegs = 2
)

// Validation errors.
var (
	ErrInvalidMode      = errors.New("mode must be 'flight' or 'helicopter'")
	ErrNegativeDistance = errors.New("distance cannot be negative")
	ErrNegativeFactor   = errors.New("emission factor cannot be negative")
	ErrInvalidDays      = errors.New("days on island must be at least 1")
)

// ParseMode converts user input ("flight", "airplane", "heli", ...) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flight", "airplane", "plane", "":
		return ModeFlight, nil
	case "helicopter", "heli":
		return ModeHelicopter, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidMode, s)
	}
}

// Legs returns the leg multiplier: 2 for a round trip, 1 otherwise.
func Legs(roundTrip bool) int {
	if roundTrip {
		return RoundTripLegs
	}
	return OneWayLegs
}

// TripEmissions returns kgCO2e for distanceKm flown legs times at paxFactor
// kgCO2e per passenger-km.
func TripEmissions(distanceKm float64, legs int, paxFactor float64) float64 {
	return distanceKm * float64(legs) * paxFactor
}

// TripRequest selects a trip. Flights depart from the country's airport and
// land at the catalog's flight destination; helicopters depart from the
// catalog's helicopter origin and land on Island.
type TripRequest struct {
	Mode       Mode   `json:"mode"`
	Country    string `json:"country,omitempty"`
	Island     string `json:"island,omitempty"`
	Aircraft   string `json:"aircraft,omitempty"`
	Helicopter string `json:"helicopter,omitempty"`
	RoundTrip  bool   `json:"round_trip"`

	// DistanceOverrideKm, when positive, replaces the great-circle one-way
	// distance for every downstream value.
	DistanceOverrideKm float64 `json:"distance_override_km,omitempty"`
}

// TripResult is a fully computed trip.
type TripResult struct {
	Mode          Mode         `json:"mode"`
	Origin        geo.Location `json:"origin"`
	Destination   geo.Location `json:"destination"`
	FactorName    string       `json:"factor_name"`
	PaxFactor     float64      `json:"kgco2e_per_pax_km"`
	GreatCircleKm float64      `json:"great_circle_km"`
	OneWayKm      float64      `json:"one_way_km"`
	Overridden    bool         `json:"distance_overridden"`
	Legs          int          `json:"legs"`
	TotalKm       float64      `json:"total_km"`
	KgCO2e        float64      `json:"kgco2e"`
}

// RoundTrip reports whether the result covers both directions.
func (r TripResult) RoundTrip() bool {
	return r.Legs == RoundTripLegs
}

// Details renders the trip as "Narrow-body (A320/B737) × 5,104 km (round-trip)".
func (r TripResult) Details() string {
	direction := "one-way"
	if r.RoundTrip() {
		direction = "round-trip"
	}
	return fmt.Sprintf("%s × %s km (%s)", r.FactorName, greenops.FormatFloat(r.TotalKm, 0), direction)
}

// PlanTrip resolves the request against the catalog and computes distance and emissions.
func PlanTrip(cat *catalog.Catalog, req TripRequest) (TripResult, error) {
	mode := req.Mode
	if mode == "" {
		mode = ModeFlight
	}

	var (
		origin, dest geo.Location
		factorName   string
		factor       float64
		err          error
	)

	switch mode {
	case ModeFlight:
		country := valueOr(req.Country, catalog.DefaultCountry)
		if origin, err = cat.CountryAirport(country); err != nil {
			return TripResult{}, err
		}
		dest = cat.FlightDestination()
		factorName = valueOr(req.Aircraft, catalog.DefaultAircraft)
		if factor, err = cat.AircraftFactor(factorName); err != nil {
			return TripResult{}, err
		}
	case ModeHelicopter:
		origin = cat.HelicopterOrigin()
		if dest, err = cat.Island(valueOr(req.Island, catalog.DefaultIsland)); err != nil {
			return TripResult{}, err
		}
		factorName = valueOr(req.Helicopter, catalog.DefaultHelicopter)
		if factor, err = cat.HelicopterFactor(factorName); err != nil {
			return TripResult{}, err
		}
	default:
		return TripResult{}, fmt.Errorf("%w: got %q", ErrInvalidMode, mode)
	}

	return ComputeTrip(mode, origin, dest, factorName, factor, req.RoundTrip, req.DistanceOverrideKm)
}

// ComputeTrip computes a trip between two explicit locations.
func ComputeTrip(
	mode Mode,
	origin, dest geo.Location,
	factorName string,
	paxFactor float64,
	roundTrip bool,
	overrideKm float64,
) (TripResult, error) {
	if paxFactor < 0 || math.IsNaN(paxFactor) {
		return TripResult{}, fmt.Errorf("%w: got %f", ErrNegativeFactor, paxFactor)
	}
	if overrideKm < 0 || math.IsNaN(overrideKm) {
		return TripResult{}, fmt.Errorf("%w: override %f", ErrNegativeDistance, overrideKm)
	}

	greatCircle := geo.DistanceBetween(origin, dest)
	oneWay := greatCircle
	overridden := overrideKm > 0
	if overridden {
		oneWay = overrideKm
	}

	legs := Legs(roundTrip)
	total := oneWay * float64(legs)

	return TripResult{
		Mode:          mode,
		Origin:        origin,
		Destination:   dest,
		FactorName:    factorName,
		PaxFactor:     paxFactor,
		GreatCircleKm: greatCircle,
		OneWayKm:      oneWay,
		Overridden:    overridden,
		Legs:          legs,
		TotalKm:       total,
		KgCO2e:        TripEmissions(oneWay, legs, paxFactor),
	}, nil
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
