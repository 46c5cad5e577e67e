package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/isleprint/internal/greenops"
	"github.com/rshade/isleprint/internal/report"
)

//nolint:gochecknoglobals // fixed list of formats the equivalency view renders
var equivalentFormats = []report.Format{report.FormatTable, report.FormatJSON, report.FormatNDJSON}

func newEquivalentCmd(rt *runtime) *cobra.Command {
	var output outputFlags
	cmd := &cobra.Command{
		Use:   "equivalent VALUE [UNIT]",
		Short: "Express a CO2e amount as everyday equivalents",
		Long: `Converts a CO2e amount into kilometres driven in a petrol car, smartphone
charges and tree seedlings grown for ten years.

UNIT is one of g, kg, t or lb, optionally suffixed with CO2e. It defaults to kg.`,
		Example: `  isleprint equivalent 663.55
  isleprint equivalent 21.6 tCO2e
  isleprint equivalent 1500 lb --output json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			unit := "kg"
			if len(args) == 2 {
				unit = args[1]
			}
			out, err := greenops.Calculate(value, unit)
			if err != nil {
				return fmt.Errorf("%s %s: %w", args[0], unit, err)
			}

			format, err := output.resolve(rt.cfg.Output.DefaultFormat, equivalentFormats)
			if err != nil {
				return err
			}
			return output.render(cmd, format, func(w io.Writer) error {
				return report.RenderEquivalency(w, out, report.Options{Format: format, Precision: rt.cfg.Output.Precision})
			})
		},
	}
	output.register(cmd, equivalentFormats)
	return cmd
}
