package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/isleprint/internal/engine"
	"github.com/rshade/isleprint/internal/greenops"
	"github.com/rshade/isleprint/internal/ledger"
)

// LedgerOptions extends Options for ledger reports.
type LedgerOptions struct {
	Options

	// Details includes the per-row table.
	Details bool
}

// RenderLedger writes an evaluated ledger in opts.Format. src must be the
// ledger rep was built from; it supplies the original columns for CSV.
func RenderLedger(w io.Writer, src *ledger.Ledger, rep *engine.Report, opts LedgerOptions) error {
	switch opts.format() {
	case FormatTable:
		return renderLedgerTable(w, rep, opts)
	case FormatJSON:
		return writeJSON(w, rep)
	case FormatNDJSON:
		return writeNDJSON(w, rep.Results)
	case FormatCSV:
		return WriteLedgerCSV(w, src, rep)
	case FormatPDF:
		return LedgerPDF(w, rep)
	default:
		return fmt.Errorf("%w for ledger report: %s", ErrUnsupportedFormat, opts.Format)
	}
}

// WriteLedgerCSV writes the source ledger with kgCO2e and tCO2e appended.
func WriteLedgerCSV(w io.Writer, src *ledger.Ledger, rep *engine.Report) error {
	kg := make([]float64, len(rep.Results))
	for i, r := range rep.Results {
		kg[i] = r.KgCO2e
	}
	return ledger.WriteCSV(w, src, kg)
}

func renderLedgerTable(w io.Writer, rep *engine.Report, opts LedgerOptions) error {
	prec := opts.precision()
	s := rep.Summary

	title := "Summary"
	if opts.Styled {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}
	header := []string{
		title,
		"Total (tCO2e):           " + greenops.FormatFloat(s.TotalT, prec),
		"Mean per record (tCO2e): " + greenops.FormatFloat(s.MeanT, prec),
		"Records:                 " + greenops.FormatNumber(int64(s.Count)),
	}
	if s.UnmatchedCount > 0 {
		header = append(header, fmt.Sprintf("Unmatched records:       %d (counted as 0)", s.UnmatchedCount))
	}
	if s.InvalidCount > 0 {
		header = append(header, fmt.Sprintf("Invalid quantities:      %d (counted as 0)", s.InvalidCount))
	}
	header = append(header, "Factors:                 "+rep.FactorsSource)
	if !s.Equivalency.IsEmpty {
		header = append(header, s.Equivalency.DisplayText)
	}
	for _, l := range header {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "\nBy category"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintln(tw, "CATEGORY\tRECORDS\ttCO2e\tSHARE"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	shares := make([]Share, 0, len(s.ByCategory))
	for _, c := range s.ByCategory {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			c.Category, c.Records, greenops.FormatFloat(c.TCO2e, prec), greenops.FormatPercent(c.SharePct),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
		shares = append(shares, Share{Label: c.Category, Pct: c.SharePct})
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if s.TotalKg > 0 {
		if _, err := fmt.Fprint(w, "\nShare by category (% tCO2e)\n"+ShareBars(shares, defaultBarWidth, opts.Styled)); err != nil {
			return err
		}
	}

	if opts.Details {
		return renderLedgerRows(w, rep.Results, prec)
	}
	return nil
}

func renderLedgerRows(w io.Writer, results []engine.Result, prec int) error {
	if _, err := fmt.Fprintln(w, "\nDetailed results"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintln(tw, "LINE\tYEAR\tMONTH\tCATEGORY\tSUBCATEGORY\tUNIT\tQUANTITY\tkgCO2e\ttCO2e\tRULE"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range results {
		qty := greenops.FormatFloat(r.Quantity, prec)
		if !r.QuantityValid {
			qty = "invalid"
		}
		rule := r.Rule
		if !r.Matched {
			rule = "-"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			strconv.Itoa(r.Line), dash(r.Year), dash(r.Month), r.Category, dash(r.Subcategory), r.Unit,
			qty, greenops.FormatFloat(r.KgCO2e, prec), greenops.FormatFloat(r.TCO2e, tonnePrecision), rule,
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
