package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/isleprint/internal/report"
)

//nolint:gochecknoglobals // fixed list of formats the catalog renders
var catalogFormats = []report.Format{report.FormatTable, report.FormatJSON, report.FormatYAML}

func newCatalogCmd(rt *runtime) *cobra.Command {
	var output outputFlags
	cmd := &cobra.Command{
		Use:   "catalog [countries|islands|aircraft|helicopters|vehicles]",
		Short: "List the reference airports, islands and transport factors",
		Example: `  isleprint catalog
  isleprint catalog islands
  isleprint catalog aircraft --output json`,
		Args: cobra.MaximumNArgs(1),
		ValidArgs: []string{
			report.SectionCountries, report.SectionIslands, report.SectionAircraft,
			report.SectionHelicopters, report.SectionVehicles,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) == 1 {
				section = args[0]
			}
			view, err := report.NewCatalogView(rt.catalog).Only(section)
			if err != nil {
				return err
			}
			format, err := output.resolve(rt.cfg.Output.DefaultFormat, catalogFormats)
			if err != nil {
				return err
			}
			return output.render(cmd, format, func(w io.Writer) error {
				return report.RenderCatalogView(w, rt.catalog, view, report.Options{Format: format})
			})
		},
	}
	output.register(cmd, catalogFormats)
	return cmd
}
