package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/isleprint/internal/config"
)

func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create, inspect and validate configuration",
	}
	cmd.AddCommand(newConfigInitCmd(rt), newConfigShowCmd(rt), newConfigValidateCmd())
	return cmd
}

// newConfigInitCmd creates the config init command. Inside a project
// (without --global) it writes .isleprint/config.yaml and a .gitignore;
// otherwise it writes the user config.
func newConfigInitCmd(rt *runtime) *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a configuration file with default values",
		Long: `Creates a configuration file with default values.

Inside a project (a directory tree holding .isleprint/, or --project-dir)
the file is written to the project directory together with a .gitignore.
Use --global to write the user configuration instead.`,
		Example: `  isleprint config init
  isleprint config init --global --force
  isleprint --project-dir . config init`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationTolerantConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rt.projectDir != "" && !global {
				return initProjectConfig(cmd, rt.projectDir, force)
			}
			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the user configuration even inside a project")
	return cmd
}

func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := config.ProjectConfigPath(projectDir)
	if err := checkWritable(configPath, force); err != nil {
		return err
	}
	if err := config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore for logs and exported reports\n")
	}
	return nil
}

func initGlobalConfig(cmd *cobra.Command, force bool) error {
	if _, err := config.EnsureHomeDir(); err != nil {
		return err
	}
	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	if err = checkWritable(configPath, force); err != nil {
		return err
	}
	if err = config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)
	return nil
}

func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return errors.New("configuration file already exists, use --force to overwrite")
	case !os.IsNotExist(err):
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	default:
		return nil
	}
}

func newConfigShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after merging the user file, the project overlay
and ISLEPRINT_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rt.projectDir != "" {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "# project: %s\n", rt.projectDir); err != nil {
					return err
				}
			}
			data, err := yaml.Marshal(rt.cfg)
			if err != nil {
				return fmt.Errorf("marshaling configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
