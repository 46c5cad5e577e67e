package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/config"
)

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Validate a configuration file",
		Long: `Validates a configuration file (default: the user configuration) for syntax
and value ranges, and checks that the traveler defaults name entries of the
reference catalog.`,
		Example: `  isleprint config validate
  isleprint config validate ./.isleprint/config.yaml --verbose`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationTolerantConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			return runConfigValidate(cmd, path, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}

func runConfigValidate(cmd *cobra.Command, path string, verbose bool) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cat := catalog.Default()
	if err = validateTraveler(cat, cfg.Traveler); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration %s is valid\n", path)
	if verbose {
		cmd.Printf("  output:   %s (precision %d)\n", cfg.Output.DefaultFormat, cfg.Output.Precision)
		cmd.Printf("  logging:  %s, %s\n", cfg.Logging.Level, cfg.Logging.Format)
		factorsPath := cfg.Factors.Path
		if factorsPath == "" {
			factorsPath = "built-in defaults"
		}
		cmd.Printf("  factors:  %s\n", factorsPath)
		cmd.Printf("  traveler: %s, %s, %s, %d days at %g km/day\n",
			cfg.Traveler.Country, cfg.Traveler.Aircraft, cfg.Traveler.Vehicle,
			cfg.Traveler.Days, cfg.Traveler.KmPerDay)
		cmd.Printf("  server:   %s (rate %g/s, burst %d)\n", cfg.Server.Addr, cfg.Server.Rate, cfg.Server.Burst)
	}
	return nil
}

func validateTraveler(cat *catalog.Catalog, t config.TravelerConfig) error {
	if t.Country != "" {
		if _, err := cat.CountryAirport(t.Country); err != nil {
			return err
		}
	}
	if t.Aircraft != "" {
		if _, err := cat.AircraftFactor(t.Aircraft); err != nil {
			return err
		}
	}
	if t.Vehicle != "" {
		if _, err := cat.VehicleFactor(t.Vehicle); err != nil {
			return err
		}
	}
	return nil
}
