package travel

import (
	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/greenops"
)

// Component names in the traveler summary table.
const (
	ComponentTrip   = "Trip to island"
	ComponentIsland = "On-island transport"
)

// Request is everything the traveler calculator needs.
type Request struct {
	Trip   TripRequest            `json:"trip"`
	Island IslandTransportRequest `json:"island"`
}

// Component is one row of the two-row traveler summary.
type Component struct {
	Name    string  `json:"component"`
	Details string  `json:"details"`
	KgCO2e  float64 `json:"kgco2e"`
	TCO2e   float64 `json:"tco2e"`
}

// Summary is the traveler footprint: both parts, their rows, and headline metrics.
type Summary struct {
	Trip       TripResult            `json:"trip"`
	Island     IslandTransportResult `json:"island"`
	Components []Component           `json:"components"`
	TotalKg    float64               `json:"total_kgco2e"`
	TotalT     float64               `json:"total_tco2e"`

	// TripSharePct is the trip's share of the total in percent; 0 when the total is 0.
	TripSharePct float64                    `json:"trip_share_pct"`
	Equivalency  greenops.EquivalencyOutput `json:"equivalency"`
}

// Plan computes the full traveler summary.
func Plan(cat *catalog.Catalog, req Request) (Summary, error) {
	trip, err := PlanTrip(cat, req.Trip)
	if err != nil {
		return Summary{}, err
	}
	island, err := PlanIslandTransport(cat, req.Island)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(trip, island), nil
}

// Summarize builds the summary rows and metrics from computed parts.
func Summarize(trip TripResult, island IslandTransportResult) Summary {
	components := []Component{
		{
			Name:    ComponentTrip,
			Details: trip.Details(),
			KgCO2e:  trip.KgCO2e,
			TCO2e:   greenops.KgToTonnes(trip.KgCO2e),
		},
		{
			Name:    ComponentIsland,
			Details: island.Details(),
			KgCO2e:  island.KgCO2e,
			TCO2e:   greenops.KgToTonnes(island.KgCO2e),
		},
	}

	total := trip.KgCO2e + island.KgCO2e
	share := 0.0
	if total > 0 {
		share = trip.KgCO2e / total * 100
	}

	return Summary{
		Trip:         trip,
		Island:       island,
		Components:   components,
		TotalKg:      total,
		TotalT:       greenops.KgToTonnes(total),
		TripSharePct: share,
		Equivalency:  greenops.CalculateKg(total),
	}
}
