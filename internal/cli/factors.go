package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/isleprint/internal/config"
	"github.com/rshade/isleprint/internal/factors"
	"github.com/rshade/isleprint/internal/report"
)

//nolint:gochecknoglobals // fixed list of formats the factor table renders
var factorsFormats = []report.Format{report.FormatTable, report.FormatJSON, report.FormatNDJSON, report.FormatYAML}

func newFactorsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Inspect, validate and create emission factor tables",
	}
	cmd.AddCommand(newFactorsShowCmd(rt), newFactorsValidateCmd(), newFactorsInitCmd(rt))
	return cmd
}

func newFactorsShowCmd(rt *runtime) *cobra.Command {
	var output outputFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active factor table",
		Example: `  isleprint factors show
  isleprint factors show --factors factors.yaml --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.resolve(rt.cfg.Output.DefaultFormat, factorsFormats)
			if err != nil {
				return err
			}
			return output.render(cmd, format, func(w io.Writer) error {
				return report.RenderFactors(w, rt.factors.Table, rt.factors.Source, report.Options{Format: format})
			})
		},
	}
	output.register(cmd, factorsFormats)
	return cmd
}

func newFactorsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a factors file without using it",
		Long: `Parses FILE and checks every value. A file that fails here would be
replaced by the built-in table at run time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := factors.ParseFile(args[0])
			if err == nil {
				err = table.Validate()
			}
			if err != nil {
				return fmt.Errorf("factors file %s is invalid: %w", args[0], err)
			}

			entries := 0
			for _, cat := range table.Categories() {
				entries += len(table.Keys(cat))
			}
			cmd.Printf("%s is valid: %d categories, %d factors\n", args[0], len(table.Categories()), entries)
			defaults := factors.Default()
			for _, cat := range defaults.Categories() {
				for _, key := range defaults.Keys(cat) {
					if !table.Has(cat, key) {
						cmd.Printf("  note: %s.%s not set, counts as 0\n", cat, key)
					}
				}
			}
			return nil
		},
	}
}

func newFactorsInitCmd(rt *runtime) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the built-in factor table to a YAML file for editing",
		Long: `Writes the built-in factor table as a versioned YAML document. Without
PATH the file goes to the project .isleprint directory when one is found,
otherwise to the isleprint home directory.`,
		Example: `  isleprint factors init
  isleprint factors init ./factors.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := factorsInitPath(rt, args)
			if err != nil {
				return err
			}
			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				} else if !errors.Is(statErr, os.ErrNotExist) {
					return fmt.Errorf("cannot access %s: %w", path, statErr)
				}
			}

			data, err := factors.Marshal(factors.Default())
			if err != nil {
				return err
			}
			if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return fmt.Errorf("creating directory for %s: %w", path, err)
			}
			if err = os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			cmd.Printf("Factor table written to %s\n", path)
			cmd.Printf("Use it with --factors %s or set factors.path in the config\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func factorsInitPath(rt *runtime, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return config.DefaultFactorsPath(rt.projectDir)
}
