package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/isleprint/internal/logging"
)

// ResolveProjectDir finds the project-local .isleprint directory. It checks,
// in order, flagValue, $ISLEPRINT_PROJECT_DIR, and a walk up from startDir
// looking for an existing .isleprint directory. The result is absolute, or
// empty when no project is found.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}
	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}
	if startDir == "" {
		return ""
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	home, _ := HomeDir()
	for {
		candidate := filepath.Join(dir, dirName)
		if candidate != home {
			if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadWithProject loads the user config at path and shallow-merges
// projectDir/config.yaml on top. A missing or invalid overlay is logged and
// ignored.
func LoadWithProject(ctx context.Context, path, projectDir string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if projectDir == "" {
		return cfg, nil
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, statErr := os.Stat(overlayPath); statErr != nil {
		return cfg, nil
	}

	merged := *cfg
	logger := logging.FromContext(ctx).With().
		Str("component", "config").
		Str("operation", "merge_project_config").
		Str("overlay_path", overlayPath).
		Logger()

	if err = ShallowMergeYAML(&merged, overlayPath); err != nil {
		logger.Warn().Err(err).Msg("failed to merge project config, using user config")
		return cfg, nil
	}
	merged.ApplyEnv()
	if err = merged.Validate(); err != nil {
		logger.Warn().Err(err).Msg("project config is invalid, using user config")
		return cfg, nil
	}
	logger.Debug().Msg("project config merged")
	return &merged, nil
}

func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}
	if filepath.Base(abs) == dirName {
		return abs
	}
	return filepath.Join(abs, dirName)
}
