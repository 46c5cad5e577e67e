package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/geo"
	"github.com/rshade/isleprint/internal/logging"
	"github.com/rshade/isleprint/internal/report"
	"github.com/rshade/isleprint/internal/travel"
	"github.com/rshade/isleprint/internal/tui"
)

//nolint:gochecknoglobals // fixed list of formats the traveler summary renders
var tripFormats = []report.Format{report.FormatTable, report.FormatJSON, report.FormatNDJSON, report.FormatPDF}

// tripParams holds the flags of `isleprint trip`.
type tripParams struct {
	mode       string
	country    string
	island     string
	aircraft   string
	helicopter string
	oneWay     bool
	distance   float64
	vehicle    string
	kmPerDay   float64
	days       int

	originLat  float64
	originLon  float64
	originName string

	interactive bool
	output      outputFlags
}

func newTripCmd(rt *runtime) *cobra.Command {
	var params tripParams

	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Estimate the footprint of a trip to the island and on-island transport",
		Long: `Estimates CO2e for the flight or helicopter trip to the island plus daily
on-island transport. Flights depart from the country's main airport and land
on the flight destination; helicopters depart from Athens and land on the
chosen island. Unset flags take their defaults from the traveler section of
the configuration.`,
		Example: `  # Default round trip from the configured country
  isleprint trip

  # One-way wide-body flight from Australia with a known route distance
  isleprint trip --country Australia --aircraft "Wide-body (A350/B787)" --one-way --distance 15200

  # Helicopter to Paros, five days on a scooter
  isleprint trip --mode helicopter --island "Paros (PAS)" --vehicle Scooter --days 5

  # Custom departure point
  isleprint trip --origin-lat 48.3538 --origin-lon 11.7861 --origin-name Munich

  # Tweak the inputs interactively
  isleprint trip --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrip(cmd, rt, &params)
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.mode, "mode", string(travel.ModeFlight), "travel mode: flight or helicopter")
	f.StringVar(&params.country, "country", "", "departure country for flights")
	f.StringVar(&params.island, "island", "", "destination island for helicopters")
	f.StringVar(&params.aircraft, "aircraft", "", "aircraft class for flights")
	f.StringVar(&params.helicopter, "helicopter", "", "helicopter class")
	f.BoolVar(&params.oneWay, "one-way", false, "count a single leg instead of a round trip")
	f.Float64Var(&params.distance, "distance", 0, "one-way distance in km replacing the great-circle distance")
	f.StringVar(&params.vehicle, "vehicle", "", "on-island vehicle")
	f.Float64Var(&params.kmPerDay, "km-per-day", 0, "km driven per day on the island")
	f.IntVar(&params.days, "days", 0, "days on the island")
	f.Float64Var(&params.originLat, "origin-lat", 0, "custom departure latitude")
	f.Float64Var(&params.originLon, "origin-lon", 0, "custom departure longitude")
	f.StringVar(&params.originName, "origin-name", "Custom origin", "label for the custom departure point")
	f.BoolVar(&params.interactive, "interactive", false, "launch the interactive calculator")
	cmd.MarkFlagsRequiredTogether("origin-lat", "origin-lon")
	params.output.register(cmd, tripFormats)

	return cmd
}

// buildRequest merges flags over the configured traveler defaults.
func (p *tripParams) buildRequest(cmd *cobra.Command, rt *runtime) (travel.Request, error) {
	mode, err := travel.ParseMode(p.mode)
	if err != nil {
		return travel.Request{}, err
	}
	defaults := rt.cfg.Traveler

	req := travel.Request{
		Trip: travel.TripRequest{
			Mode:               mode,
			Country:            valueOr(p.country, defaults.Country),
			Island:             p.island,
			Aircraft:           valueOr(p.aircraft, defaults.Aircraft),
			Helicopter:         p.helicopter,
			RoundTrip:          defaults.RoundTrip,
			DistanceOverrideKm: p.distance,
		},
		Island: travel.IslandTransportRequest{
			Vehicle:  valueOr(p.vehicle, defaults.Vehicle),
			KmPerDay: defaults.KmPerDay,
			Days:     defaults.Days,
		},
	}
	if cmd.Flags().Changed("one-way") {
		req.Trip.RoundTrip = !p.oneWay
	}
	if cmd.Flags().Changed("km-per-day") {
		req.Island.KmPerDay = p.kmPerDay
	}
	if cmd.Flags().Changed("days") {
		req.Island.Days = p.days
	}
	return req, nil
}

func (p *tripParams) customOrigin(cmd *cobra.Command) (geo.Location, bool, error) {
	if !cmd.Flags().Changed("origin-lat") {
		return geo.Location{}, false, nil
	}
	if err := geo.ValidateCoords(p.originLat, p.originLon); err != nil {
		return geo.Location{}, false, err
	}
	return geo.Location{Name: p.originName, Lat: p.originLat, Lon: p.originLon}, true, nil
}

func runTrip(cmd *cobra.Command, rt *runtime, params *tripParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx).With().Str("operation", "trip").Logger()

	req, err := params.buildRequest(cmd, rt)
	if err != nil {
		return err
	}
	format, err := params.output.resolve(rt.cfg.Output.DefaultFormat, tripFormats)
	if err != nil {
		return err
	}

	if params.interactive {
		if !isInteractiveTerminal(cmd) {
			cmd.PrintErrln("Interactive mode needs a terminal; printing the summary instead.")
		} else {
			return runTripTUI(cmd, rt, req)
		}
	}

	summary, err := planTrip(cmd, rt, params, req)
	if err != nil {
		return err
	}
	log.Debug().
		Str("mode", string(summary.Trip.Mode)).
		Float64("one_way_km", summary.Trip.OneWayKm).
		Bool("distance_overridden", summary.Trip.Overridden).
		Float64("total_kgco2e", summary.TotalKg).
		Msg("trip computed")

	opts := report.Options{
		Format:    format,
		Precision: rt.cfg.Output.Precision,
		Styled:    styledOutput(cmd, &params.output),
	}
	return params.output.render(cmd, format, func(w io.Writer) error {
		return report.RenderTravel(w, summary, opts)
	})
}

// planTrip runs the catalog planner, or ComputeTrip when a custom origin
// was given.
func planTrip(cmd *cobra.Command, rt *runtime, params *tripParams, req travel.Request) (travel.Summary, error) {
	origin, custom, err := params.customOrigin(cmd)
	if err != nil {
		return travel.Summary{}, err
	}
	if !custom {
		return travel.Plan(rt.catalog, req)
	}

	var (
		dest       geo.Location
		factorName string
		factor     float64
	)
	switch req.Trip.Mode {
	case travel.ModeHelicopter:
		factorName = valueOr(req.Trip.Helicopter, catalog.DefaultHelicopter)
		if dest, err = rt.catalog.Island(valueOr(req.Trip.Island, catalog.DefaultIsland)); err != nil {
			return travel.Summary{}, err
		}
		if factor, err = rt.catalog.HelicopterFactor(factorName); err != nil {
			return travel.Summary{}, err
		}
	default:
		factorName = valueOr(req.Trip.Aircraft, catalog.DefaultAircraft)
		dest = rt.catalog.FlightDestination()
		if factor, err = rt.catalog.AircraftFactor(factorName); err != nil {
			return travel.Summary{}, err
		}
	}

	trip, err := travel.ComputeTrip(req.Trip.Mode, origin, dest, factorName, factor,
		req.Trip.RoundTrip, req.Trip.DistanceOverrideKm)
	if err != nil {
		return travel.Summary{}, err
	}
	island, err := travel.PlanIslandTransport(rt.catalog, req.Island)
	if err != nil {
		return travel.Summary{}, err
	}
	return travel.Summarize(trip, island), nil
}

func runTripTUI(cmd *cobra.Command, rt *runtime, req travel.Request) error {
	model := tui.NewTripModel(rt.catalog, req)
	program := tea.NewProgram(model, tea.WithContext(cmd.Context()))

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running interactive TUI: %w", err)
	}

	tripModel, ok := finalModel.(*tui.TripModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T, expected *tui.TripModel", finalModel)
	}
	if tripModel.Err() != nil {
		return nil
	}
	cmd.Println("\nFinal estimate:")
	return report.RenderTravel(cmd.OutOrStdout(), tripModel.Summary(), report.Options{
		Precision: rt.cfg.Output.Precision,
		Styled:    true,
	})
}
