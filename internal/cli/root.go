// Package cli implements the isleprint command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/config"
	"github.com/rshade/isleprint/internal/factors"
	"github.com/rshade/isleprint/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int on supported platforms
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// runtime is the state every subcommand shares once the root pre-run has
// loaded configuration and factors.
type runtime struct {
	cfg        *config.Config
	projectDir string
	catalog    *catalog.Catalog
	factors    factors.LoadResult
	logResult  *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the isleprint CLI.
func NewRootCmd(ver string) *cobra.Command {
	rt := &runtime{catalog: catalog.Default()}

	cmd := &cobra.Command{
		Use:     "isleprint",
		Short:   "Island travel and operations carbon calculator",
		Long:    "isleprint: estimate CO2e for trips to an island, on-island transport and activity ledgers",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(rt.logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $ISLEPRINT_HOME/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .isleprint/")
	cmd.PersistentFlags().String("factors", "", "emission factors YAML file (default: built-in table)")

	cmd.AddCommand(
		newTripCmd(rt),
		newLedgerCmd(rt),
		newFactorsCmd(rt),
		newCatalogCmd(rt),
		newEquivalentCmd(rt),
		newServeCmd(rt),
		newConfigCmd(rt),
		newVersionCmd(),
	)
	return cmd
}

const rootCmdExample = `  # Round trip from the UK with three days of car use
  isleprint trip --country "United Kingdom" --days 3

  # Helicopter hop from Athens, one way
  isleprint trip --mode helicopter --island "Paros (PAS)" --one-way

  # Evaluate the bundled activity ledger
  isleprint ledger --sample

  # Export an evaluated ledger with custom factors
  isleprint ledger activity.csv --factors factors.yaml --output csv --out results.csv

  # Start the HTTP API
  isleprint serve --addr :8080`

// annotationTolerantConfig marks commands that still run, on defaults,
// when the configuration cannot be loaded.
const annotationTolerantConfig = "isleprint/tolerant-config"

func toleratesBadConfig(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationTolerantConfig] == "true"
}

// setup loads configuration, starts logging and loads the factor table.
func (rt *runtime) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			configPath = p
		}
	}
	projectFlag, _ := cmd.Flags().GetString("project-dir")
	cwd, _ := os.Getwd()
	rt.projectDir = config.ResolveProjectDir(ctx, projectFlag, cwd)

	cfg, err := config.LoadWithProject(ctx, configPath, rt.projectDir)
	if err != nil {
		if !toleratesBadConfig(cmd) {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cmd.PrintErrf("Warning: %v; using defaults\n", err)
		cfg = config.Default()
	}
	rt.cfg = cfg

	result := setupLogging(cmd, cfg)
	rt.logResult = &result

	factorsPath, _ := cmd.Flags().GetString("factors")
	if factorsPath == "" {
		factorsPath = cfg.Factors.Path
	}
	rt.factors = factors.Load(factorsPath)
	if rt.factors.FellBack {
		logger.Warn().Ctx(cmd.Context()).Err(rt.factors.Warning).Msg("factors file rejected, using defaults")
		cmd.PrintErrf("Warning: %v\n", rt.factors.Warning)
	} else {
		logger.Debug().Ctx(cmd.Context()).Str("source", rt.factors.Source).Msg("factors loaded")
	}
	return nil
}
