package travel

import (
	"fmt"
	"math"

	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/greenops"
)

// DailyEmissions returns kgCO2e for one day of driving kmPerDay at vehicleFactor kgCO2e/km.
func DailyEmissions(vehicleFactor, kmPerDay float64) float64 {
	return vehicleFactor * kmPerDay
}

// TotalEmissions returns kgCO2e for days of daily emissions.
func TotalEmissions(daily float64, days int) float64 {
	return daily * float64(days)
}

// IslandTransportRequest selects on-island daily transport.
type IslandTransportRequest struct {
	Vehicle  string  `json:"vehicle,omitempty"`
	KmPerDay float64 `json:"km_per_day"`
	Days     int     `json:"days"`
}

// IslandTransportResult is the computed on-island footprint.
type IslandTransportResult struct {
	Vehicle  string  `json:"vehicle"`
	Factor   float64 `json:"kgco2e_per_km"`
	KmPerDay float64 `json:"km_per_day"`
	Days     int     `json:"days"`
	DailyKg  float64 `json:"daily_kgco2e"`
	KgCO2e   float64 `json:"kgco2e"`
}

// Details renders the result as "Car (petrol) × 30 km/day × 3 days".
func (r IslandTransportResult) Details() string {
	return fmt.Sprintf("%s × %s km/day × %d days", r.Vehicle, greenops.FormatFloat(r.KmPerDay, 0), r.Days)
}

// Validate checks the numeric inputs.
func (r IslandTransportRequest) Validate() error {
	if r.Days < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDays, r.Days)
	}
	if r.KmPerDay < 0 || math.IsNaN(r.KmPerDay) {
		return fmt.Errorf("%w: km/day %f", ErrNegativeDistance, r.KmPerDay)
	}
	return nil
}

// PlanIslandTransport resolves the vehicle and computes daily and total emissions.
func PlanIslandTransport(cat *catalog.Catalog, req IslandTransportRequest) (IslandTransportResult, error) {
	if err := req.Validate(); err != nil {
		return IslandTransportResult{}, err
	}

	vehicle := valueOr(req.Vehicle, catalog.DefaultVehicle)
	factor, err := cat.VehicleFactor(vehicle)
	if err != nil {
		return IslandTransportResult{}, err
	}

	daily := DailyEmissions(factor, req.KmPerDay)
	return IslandTransportResult{
		Vehicle:  vehicle,
		Factor:   factor,
		KmPerDay: req.KmPerDay,
		Days:     req.Days,
		DailyKg:  daily,
		KgCO2e:   TotalEmissions(daily, req.Days),
	}, nil
}
