package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/isleprint/internal/geo"
)

func TestDefault_Sizes(t *testing.T) {
	c := Default()

	assert.Len(t, c.Countries(), 45)
	assert.Len(t, c.Islands(), 12)
	assert.Len(t, c.Aircraft(), 6)
	assert.Len(t, c.Helicopters(), 3)
	assert.Len(t, c.Vehicles(), 8)
}

func TestDefault_Defaults(t *testing.T) {
	c := Default()

	_, err := c.CountryAirport(DefaultCountry)
	require.NoError(t, err)
	_, err = c.Island(DefaultIsland)
	require.NoError(t, err)
	_, err = c.AircraftFactor(DefaultAircraft)
	require.NoError(t, err)
	_, err = c.HelicopterFactor(DefaultHelicopter)
	require.NoError(t, err)
	_, err = c.VehicleFactor(DefaultVehicle)
	require.NoError(t, err)
}

func TestLookups(t *testing.T) {
	c := Default()

	lhr, err := c.CountryAirport("United Kingdom")
	require.NoError(t, err)
	assert.Equal(t, "LHR", lhr.ID)
	assert.InDelta(t, 51.47, lhr.Lat, 1e-9)

	jtr, err := c.Island("Santorini (JTR)")
	require.NoError(t, err)
	assert.Equal(t, "JTR", jtr.ID)

	f, err := c.AircraftFactor("Narrow-body (A320/B737)")
	require.NoError(t, err)
	assert.InDelta(t, 0.13, f, 1e-12)

	f, err = c.HelicopterFactor("Medium twin (e.g., AW139)")
	require.NoError(t, err)
	assert.InDelta(t, 0.35, f, 1e-12)

	f, err = c.VehicleFactor("Bicycle")
	require.NoError(t, err)
	assert.Zero(t, f)

	assert.Equal(t, "JMK", c.FlightDestination().ID)
	assert.Equal(t, "ATH", c.HelicopterOrigin().ID)
}

func TestLookups_Unknown(t *testing.T) {
	c := Default()

	_, err := c.CountryAirport("Atlantis")
	require.ErrorIs(t, err, ErrUnknownCountry)
	_, err = c.Island("Atlantis")
	require.ErrorIs(t, err, ErrUnknownIsland)
	_, err = c.VehicleFactor("Hovercraft")
	require.ErrorIs(t, err, ErrUnknownVehicle)

	// The two flight tables are disjoint: a helicopter class is not an aircraft.
	_, err = c.AircraftFactor(DefaultHelicopter)
	require.ErrorIs(t, err, ErrUnknownAircraft)
	_, err = c.HelicopterFactor(DefaultAircraft)
	require.ErrorIs(t, err, ErrUnknownHelicopter)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	airports := c.CountryAirports()
	airports["United Kingdom"] = geo.Location{Name: "mutated"}
	delete(airports, "Greece")

	lhr, err := c.CountryAirport("United Kingdom")
	require.NoError(t, err)
	assert.Equal(t, "LHR", lhr.ID)
	_, err = c.CountryAirport("Greece")
	require.NoError(t, err)

	islands := c.IslandAirports()
	delete(islands, DefaultIsland)
	_, err = c.Island(DefaultIsland)
	require.NoError(t, err)
}

func TestNew_CopiesInputs(t *testing.T) {
	vehicles := map[string]float64{"Car": 0.2}
	c := New(geo.Location{}, geo.Location{}, nil, nil, nil, nil, vehicles)
	vehicles["Car"] = 99

	f, err := c.VehicleFactor("Car")
	require.NoError(t, err)
	assert.InDelta(t, 0.2, f, 1e-12)
}

func TestSortedListings(t *testing.T) {
	c := Default()

	assert.True(t, sort.StringsAreSorted(c.Countries()))
	assert.True(t, sort.StringsAreSorted(c.Islands()))

	names := make([]string, 0)
	for _, f := range c.Vehicles() {
		names = append(names, f.Name)
	}
	assert.True(t, sort.StringsAreSorted(names))
}

func TestAllLocationsValid(t *testing.T) {
	c := Default()
	for name, loc := range c.CountryAirports() {
		assert.NoError(t, loc.Validate(), name)
	}
	for name, loc := range c.IslandAirports() {
		assert.NoError(t, loc.Validate(), name)
	}
}
