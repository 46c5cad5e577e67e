package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/isleprint/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.True(t, cfg.Traveler.RoundTrip)
	assert.Equal(t, 3, cfg.Traveler.Days)
	assert.InDelta(t, 30.0, cfg.Traveler.KmPerDay, 1e-9)
	assert.Equal(t, "Car (petrol)", cfg.Traveler.Vehicle)
	assert.Empty(t, cfg.Factors.Path)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("traveler:\n  days: 5\nserver:\n  addr: \":9090\"\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Traveler.Days)
	assert.Equal(t, "Car (petrol)", cfg.Traveler.Vehicle, "Load merges field by field")
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 20, cfg.Server.Burst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "json")
	t.Setenv(config.EnvFactors, "/etc/isleprint/factors.yaml")
	t.Setenv(config.EnvOutput, "ndjson")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/etc/isleprint/factors.yaml", cfg.Factors.Path)
	assert.Equal(t, "ndjson", cfg.Output.DefaultFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad format", "output:\n  default_format: xml\n", config.ErrInvalidFormat},
		{"bad precision", "output:\n  precision: 12\n", config.ErrInvalidFormat},
		{"zero days", "traveler:\n  days: 0\n", config.ErrInvalidTraveler},
		{"negative km", "traveler:\n  km_per_day: -3\n", config.ErrInvalidTraveler},
		{"zero rate", "server:\n  rate: 0\n", config.ErrInvalidServer},
		{"zero body", "server:\n  max_body_bytes: 0\n", config.ErrInvalidServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			_, err := config.Load(path)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: [x"), 0o600))
		_, err := config.Load(path)
		require.Error(t, err)
	})
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.Default()
	cfg.Traveler.Days = 9

	require.NoError(t, cfg.Save(path))
	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestHomeDirAndDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)

	home, err := config.HomeDir()
	require.NoError(t, err)
	assert.Equal(t, dir, home)

	path, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
}

func TestResolveProjectDir(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvProjectDir, "")

	root := t.TempDir()
	project := filepath.Join(root, ".isleprint")
	nested := filepath.Join(root, "ledgers", "2024")
	require.NoError(t, os.MkdirAll(project, 0o700))
	require.NoError(t, os.MkdirAll(nested, 0o700))

	ctx := context.Background()
	assert.Equal(t, project, config.ResolveProjectDir(ctx, "", nested))
	assert.Equal(t, project, config.ResolveProjectDir(ctx, root, ""))
	assert.Equal(t, project, config.ResolveProjectDir(ctx, project, ""))

	t.Setenv(config.EnvProjectDir, root)
	assert.Equal(t, project, config.ResolveProjectDir(ctx, "", ""))
}

func TestLoadWithProject(t *testing.T) {
	t.Setenv(config.EnvOutput, "")
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"),
		[]byte("output:\n  default_format: json\n  precision: 1\n"), 0o600))

	cfg, err := config.LoadWithProject(context.Background(), "", projectDir)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, 1, cfg.Output.Precision)
	assert.Equal(t, 3, cfg.Traveler.Days)
}

func TestLoadWithProject_InvalidOverlayIgnored(t *testing.T) {
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"),
		[]byte("traveler:\n  vehicle: Bicycle\n"), 0o600))

	cfg, err := config.LoadWithProject(context.Background(), "", projectDir)
	require.NoError(t, err)
	assert.Equal(t, "Car (petrol)", cfg.Traveler.Vehicle, "overlay resets days to 0 and is rejected")
}

func TestLoadWithProject_NoOverlay(t *testing.T) {
	cfg, err := config.LoadWithProject(context.Background(), "", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	assert.Equal(t, "stderr", lc.ToLoggingConfig().Output)

	lc.File = "/tmp/isleprint.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/isleprint.log", got.File)
	assert.Equal(t, "debug", got.Level)
}
