package cli

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/isleprint/internal/cli/pagination"
	"github.com/rshade/isleprint/internal/engine"
	"github.com/rshade/isleprint/internal/engine/batch"
	"github.com/rshade/isleprint/internal/ledger"
	"github.com/rshade/isleprint/internal/logging"
	"github.com/rshade/isleprint/internal/report"
	"github.com/rshade/isleprint/internal/tui"
)

//nolint:gochecknoglobals // fixed list of formats the ledger report renders
var ledgerFormats = []report.Format{
	report.FormatTable, report.FormatJSON, report.FormatNDJSON, report.FormatCSV, report.FormatPDF,
}

// ledgerParams holds the flags of `isleprint ledger`.
type ledgerParams struct {
	sample      bool
	concurrency int
	batchSize   int
	details     bool
	interactive bool
	sort        string
	paging      pagination.Params
	output      outputFlags
}

// windowed reports whether sorting or paging was requested.
func (p *ledgerParams) windowed() bool {
	return p.sort != "" || p.paging.IsEnabled()
}

// window returns rep with its results sorted and paged. The summary always
// covers every row.
func (p *ledgerParams) window(rep *engine.Report) (*engine.Report, pagination.Meta, error) {
	results := rep.Results
	if p.sort != "" {
		field, order, err := pagination.ParseSort(p.sort)
		if err != nil {
			return nil, pagination.Meta{}, err
		}
		if results, err = pagination.NewResultSorter().Sort(results, field, order); err != nil {
			return nil, pagination.Meta{}, err
		}
	}
	out := *rep
	out.Results = pagination.Apply(p.paging, results)
	return &out, pagination.NewMeta(p.paging, len(rep.Results)), nil
}

func newLedgerCmd(rt *runtime) *cobra.Command {
	var params ledgerParams

	cmd := &cobra.Command{
		Use:   "ledger [FILE]",
		Short: "Compute emissions for an activity ledger",
		Long: `Reads an activity ledger (CSV with English or Greek column names, comma or
semicolon separated), applies the emission rules using the active factor
table and prints totals, a per-category breakdown and optionally every row.
Rows no rule matches count as zero and are reported as unmatched.

Quantities must be plain non-negative numbers. A single comma with no dot is
read as a decimal comma ("1,250" is 1.25); thousands separators are not
supported. Blank, non-numeric or negative quantities count as zero and are
reported as invalid.`,
		Example: `  # Evaluate the bundled sample ledger
  isleprint ledger --sample

  # Per-row detail with a custom factor table
  isleprint ledger activity.csv --factors factors.yaml --details

  # Export the input with kgCO2e and tCO2e columns appended
  isleprint ledger activity.csv --output csv --out results.csv

  # Ten largest emitters
  isleprint ledger activity.csv --details --sort tco2e:desc --limit 10

  # Browse the results
  isleprint ledger activity.csv --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedger(cmd, rt, &params, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&params.sample, "sample", false, "use the bundled sample ledger")
	f.IntVar(&params.concurrency, "concurrency", 0, "number of row batches evaluated in parallel (0 or 1 = sequential)")
	f.IntVar(&params.batchSize, "batch-size", 0, "rows per batch (0 = default)")
	f.BoolVar(&params.details, "details", false, "include every evaluated row in table output")
	f.BoolVar(&params.interactive, "interactive", false, "browse the results interactively")
	f.StringVar(&params.sort, "sort", "", "sort rows by field[:asc|desc] (line, period, category, quantity, kgco2e, tco2e)")
	f.IntVar(&params.paging.Limit, "limit", 0, "show at most N rows")
	f.IntVar(&params.paging.Offset, "offset", 0, "skip the first N rows")
	f.IntVar(&params.paging.Page, "page", 0, "page number (1-based, requires --page-size)")
	f.IntVar(&params.paging.PageSize, "page-size", 0, "rows per page")
	params.output.register(cmd, ledgerFormats)

	return cmd
}

func runLedger(cmd *cobra.Command, rt *runtime, params *ledgerParams, args []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx).With().Str("operation", "ledger").Logger()

	if params.concurrency < 0 || params.batchSize < 0 {
		return errors.New("--concurrency and --batch-size cannot be negative")
	}
	format, err := params.output.resolve(rt.cfg.Output.DefaultFormat, ledgerFormats)
	if err != nil {
		return err
	}
	if err = params.paging.Validate(); err != nil {
		return err
	}
	if params.windowed() && (format == report.FormatCSV || format == report.FormatPDF) {
		return fmt.Errorf("--sort and paging flags do not apply to %s output", format)
	}

	src, err := readLedger(params, args)
	if errors.Is(err, ledger.ErrLedgerUnavailable) {
		log.Info().Err(err).Msg("ledger not available, nothing computed")
		cmd.PrintErrf("Ledger not available: %v\n", err)
		cmd.PrintErrln("Pass a readable CSV file or use --sample to try the bundled dataset.")
		return nil
	}
	if err != nil {
		return err
	}
	for _, row := range src.InvalidQuantities() {
		log.Debug().Int("line", row.Line).Str("category", row.Category).Msg("quantity is not a number, counted as 0")
	}

	opts := engine.Options{
		BatchSize:   params.batchSize,
		Concurrency: params.concurrency,
		OnProgress: func(s batch.Snapshot) {
			log.Debug().
				Int("processed", s.ProcessedItems).
				Int("total", s.TotalItems).
				Float64("percent", s.PercentComplete).
				Msg("evaluation progress")
		},
	}
	rep, err := engine.BuildReport(ctx, src.Rows, rt.factors, opts)
	if err != nil {
		return err
	}
	rep.Source = ledgerSourceName(params, args)

	if params.interactive {
		if isInteractiveTerminal(cmd) {
			return runLedgerTUI(cmd, rep)
		}
		cmd.PrintErrln("Interactive mode needs a terminal; printing the report instead.")
	}

	ropts := report.LedgerOptions{
		Options: report.Options{
			Format:    format,
			Precision: rt.cfg.Output.Precision,
			Styled:    styledOutput(cmd, &params.output),
		},
		Details: params.details,
	}
	if !params.windowed() {
		return params.output.render(cmd, format, func(w io.Writer) error {
			return report.RenderLedger(w, src, rep, ropts)
		})
	}

	paged, meta, err := params.window(rep)
	if err != nil {
		return err
	}
	ropts.Details = true
	if err = params.output.render(cmd, format, func(w io.Writer) error {
		return report.RenderLedger(w, src, paged, ropts)
	}); err != nil {
		return err
	}
	if params.paging.IsEnabled() {
		cmd.PrintErrln(meta.String())
	}
	return nil
}

func readLedger(params *ledgerParams, args []string) (*ledger.Ledger, error) {
	switch {
	case params.sample && len(args) > 0:
		return nil, errors.New("pass either FILE or --sample, not both")
	case params.sample:
		return ledger.ReadSample()
	case len(args) == 0:
		return nil, fmt.Errorf("%w: no file given", ledger.ErrLedgerUnavailable)
	default:
		return ledger.ReadFile(args[0])
	}
}

func ledgerSourceName(params *ledgerParams, args []string) string {
	if params.sample {
		return "sample dataset"
	}
	return args[0]
}

func runLedgerTUI(cmd *cobra.Command, rep *engine.Report) error {
	program := tea.NewProgram(tui.NewLedgerModel(rep), tea.WithContext(cmd.Context()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running interactive TUI: %w", err)
	}
	return nil
}
