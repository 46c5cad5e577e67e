package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/isleprint/internal/greenops"
)

// RenderEquivalency writes the everyday equivalents of a CO2e total.
func RenderEquivalency(w io.Writer, out greenops.EquivalencyOutput, opts Options) error {
	switch opts.format() {
	case FormatTable:
		return renderEquivalencyTable(w, out, opts)
	case FormatJSON:
		return writeJSON(w, out)
	case FormatNDJSON:
		return writeNDJSON(w, out.Results)
	default:
		return fmt.Errorf("%w for equivalencies: %s", ErrUnsupportedFormat, opts.Format)
	}
}

func renderEquivalencyTable(w io.Writer, out greenops.EquivalencyOutput, opts Options) error {
	if _, err := fmt.Fprintf(w, "Total: %s kgCO2e\n\n", greenops.FormatFloat(out.InputKg, opts.precision())); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	if out.IsEmpty {
		_, err := fmt.Fprintf(w, "Below %s kgCO2e, no equivalencies to show.\n",
			greenops.FormatFloat(greenops.MinEquivalencyThresholdKg, 0))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintln(tw, "EQUIVALENT\tAMOUNT"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "----------\t------"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, r := range out.Results {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.Label, r.FormattedValue); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "\n"+out.DisplayText)
	return err
}
