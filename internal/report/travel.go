package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/isleprint/internal/greenops"
	"github.com/rshade/isleprint/internal/travel"
)

// RenderTravel writes a traveler summary in opts.Format.
func RenderTravel(w io.Writer, s travel.Summary, opts Options) error {
	switch opts.format() {
	case FormatTable:
		return renderTravelTable(w, s, opts)
	case FormatJSON:
		return writeJSON(w, s)
	case FormatNDJSON:
		return writeNDJSON(w, s.Components)
	case FormatPDF:
		return TravelPDF(w, s)
	default:
		return fmt.Errorf("%w for traveler summary: %s", ErrUnsupportedFormat, opts.Format)
	}
}

func renderTravelTable(w io.Writer, s travel.Summary, opts Options) error {
	prec := opts.precision()
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintln(tw, "COMPONENT\tDETAILS\tkgCO2e\ttCO2e"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "---------\t-------\t------\t-----"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, c := range s.Components {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			c.Name, c.Details,
			greenops.FormatFloat(c.KgCO2e, prec),
			greenops.FormatFloat(c.TCO2e, tonnePrecision),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	total := fmt.Sprintf("Total: %s tCO2e", greenops.FormatFloat(s.TotalT, tonnePrecision))
	if opts.Styled {
		total = lipgloss.NewStyle().Bold(true).Render(total)
	}
	lines := []string{
		"",
		total,
		"Trip share: " + greenops.FormatPercent(s.TripSharePct),
	}
	if !s.Equivalency.IsEmpty {
		lines = append(lines, s.Equivalency.DisplayText)
	}
	if s.Trip.Overridden {
		lines = append(lines, fmt.Sprintf("Distance override: %s km one-way (great-circle %s km)",
			greenops.FormatFloat(s.Trip.OneWayKm, 0), greenops.FormatFloat(s.Trip.GreatCircleKm, 0)))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	if s.TotalKg > 0 {
		shares := []Share{
			{Label: travel.ComponentTrip, Pct: s.TripSharePct},
			{Label: travel.ComponentIsland, Pct: 100 - s.TripSharePct},
		}
		if _, err := fmt.Fprint(w, "\nShare of components (kgCO2e)\n"+ShareBars(shares, defaultBarWidth, opts.Styled)); err != nil {
			return err
		}
	}
	return nil
}
