// Package catalog holds the static reference data behind the traveler
// calculator: origin airports per country, island destinations, and the
// per-kilometre emission factors for aircraft, helicopters, and on-island
// vehicles.
//
// A Catalog is built once with Default and passed to the calculators. It is
// never mutated after construction; every accessor returns a copy, so a
// Catalog can be shared freely between goroutines.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rshade/isleprint/internal/geo"
)

// Lookup errors.
var (
	ErrUnknownCountry    = errors.New("unknown country")
	ErrUnknownIsland     = errors.New("unknown island")
	ErrUnknownAircraft   = errors.New("unknown aircraft type")
	ErrUnknownHelicopter = errors.New("unknown helicopter class")
	ErrUnknownVehicle    = errors.New("unknown vehicle type")
)

// Default selections used when the caller does not pick one.
const (
	DefaultCountry    = "United Kingdom"
	DefaultIsland     = "Mykonos (JMK)"
	DefaultAircraft   = "Narrow-body (A320/B737)"
	DefaultHelicopter = "Light single (e.g., H125)"
	DefaultVehicle    = "Car (petrol)"
)

// Factor is a named emission coefficient in kgCO2e per passenger-km or per km.
type Factor struct {
	Name  string  `json:"name"          yaml:"name"`
	Value float64 `json:"kgco2e_per_km" yaml:"kgco2e_per_km"`
}

// Catalog is the immutable set of reference tables.
type Catalog struct {
	flightDestination geo.Location
	heliOrigin        geo.Location
	countryAirports   map[string]geo.Location
	islands           map[string]geo.Location
	aircraft          map[string]float64
	helicopters       map[string]float64
	vehicles          map[string]float64
}

// New builds a Catalog from caller-supplied tables. The maps are copied.
func New(
	flightDestination, heliOrigin geo.Location,
	countryAirports, islands map[string]geo.Location,
	aircraft, helicopters, vehicles map[string]float64,
) *Catalog {
	return &Catalog{
		flightDestination: flightDestination,
		heliOrigin:        heliOrigin,
		countryAirports:   copyMap(countryAirports),
		islands:           copyMap(islands),
		aircraft:          copyMap(aircraft),
		helicopters:       copyMap(helicopters),
		vehicles:          copyMap(vehicles),
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(
		mykonosAirport, athensAirport,
		countryAirports, greekIslands,
		aircraftFactors, helicopterFactors, islandVehicleFactors,
	)
}

// FlightDestination is the arrival airport for flights.
func (c *Catalog) FlightDestination() geo.Location { return c.flightDestination }

// HelicopterOrigin is the departure pad for helicopter transfers.
func (c *Catalog) HelicopterOrigin() geo.Location { return c.heliOrigin }

// CountryAirport returns the representative origin airport for a country.
func (c *Catalog) CountryAirport(country string) (geo.Location, error) {
	loc, ok := c.countryAirports[country]
	if !ok {
		return geo.Location{}, fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	return loc, nil
}

// Island returns the destination airport for a Greek island.
func (c *Catalog) Island(name string) (geo.Location, error) {
	loc, ok := c.islands[name]
	if !ok {
		return geo.Location{}, fmt.Errorf("%w: %q", ErrUnknownIsland, name)
	}
	return loc, nil
}

// AircraftFactor returns kgCO2e per passenger-km for an aircraft type.
func (c *Catalog) AircraftFactor(name string) (float64, error) {
	v, ok := c.aircraft[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAircraft, name)
	}
	return v, nil
}

// HelicopterFactor returns kgCO2e per passenger-km for a helicopter class.
func (c *Catalog) HelicopterFactor(name string) (float64, error) {
	v, ok := c.helicopters[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHelicopter, name)
	}
	return v, nil
}

// VehicleFactor returns kgCO2e per km for an on-island vehicle.
func (c *Catalog) VehicleFactor(name string) (float64, error) {
	v, ok := c.vehicles[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVehicle, name)
	}
	return v, nil
}

// Countries returns the country names in alphabetical order.
func (c *Catalog) Countries() []string { return sortedKeys(c.countryAirports) }

// Islands returns the island names in alphabetical order.
func (c *Catalog) Islands() []string { return sortedKeys(c.islands) }

// Aircraft returns aircraft factors sorted by name.
func (c *Catalog) Aircraft() []Factor { return sortedFactors(c.aircraft) }

// Helicopters returns helicopter factors sorted by name.
func (c *Catalog) Helicopters() []Factor { return sortedFactors(c.helicopters) }

// Vehicles returns vehicle factors sorted by name.
func (c *Catalog) Vehicles() []Factor { return sortedFactors(c.vehicles) }

// CountryAirports returns a copy of the country → airport table.
func (c *Catalog) CountryAirports() map[string]geo.Location { return copyMap(c.countryAirports) }

// IslandAirports returns a copy of the island → airport table.
func (c *Catalog) IslandAirports() map[string]geo.Location { return copyMap(c.islands) }

func copyMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFactors(in map[string]float64) []Factor {
	out := make([]Factor, 0, len(in))
	for _, k := range sortedKeys(in) {
		out = append(out, Factor{Name: k, Value: in[k]})
	}
	return out
}
