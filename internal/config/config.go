// Package config loads isleprint's YAML configuration: the user file under
// ~/.isleprint, an optional project overlay, and ISLEPRINT_* environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables.
const (
	EnvHome       = "ISLEPRINT_HOME"
	EnvProjectDir = "ISLEPRINT_PROJECT_DIR"
	EnvLogLevel   = "ISLEPRINT_LOG_LEVEL"
	EnvLogFormat  = "ISLEPRINT_LOG_FORMAT"
	EnvFactors    = "ISLEPRINT_FACTORS"
	EnvOutput     = "ISLEPRINT_OUTPUT"
)

const (
	dirName        = ".isleprint"
	configFileName = "config.yaml"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatCSV    = "csv"
	FormatPDF    = "pdf"
	FormatYAML   = "yaml"
)

// Validation errors.
var (
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidTraveler = errors.New("invalid traveler defaults")
	ErrInvalidServer   = errors.New("invalid server settings")
)

//nolint:gochecknoglobals // fixed list of formats accepted in output.default_format
var reportFormats = []string{FormatTable, FormatJSON, FormatNDJSON, FormatCSV, FormatPDF}

// Config is the full configuration document.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
	Factors  FactorsConfig  `yaml:"factors"`
	Traveler TravelerConfig `yaml:"traveler"`
	Server   ServerConfig   `yaml:"server"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// FactorsConfig points at a custom factors file. Empty selects the built-in table.
type FactorsConfig struct {
	Path string `yaml:"path"`
}

// TravelerConfig holds the defaults of the traveler calculator.
type TravelerConfig struct {
	RoundTrip bool    `yaml:"round_trip"`
	Days      int     `yaml:"days"`
	KmPerDay  float64 `yaml:"km_per_day"`
	Vehicle   string  `yaml:"vehicle"`
	Aircraft  string  `yaml:"aircraft"`
	Country   string  `yaml:"country"`
}

// ServerConfig configures `isleprint serve`.
type ServerConfig struct {
	Addr         string  `yaml:"addr"`
	Rate         float64 `yaml:"rate"`
	Burst        int     `yaml:"burst"`
	MaxBodyBytes int64   `yaml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     2,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Traveler: TravelerConfig{
			RoundTrip: true,
			Days:      3,
			KmPerDay:  30,
			Vehicle:   "Car (petrol)",
			Aircraft:  "Narrow-body (A320/B737)",
			Country:   "United Kingdom",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			Rate:         10,
			Burst:        20,
			MaxBodyBytes: 5 << 20,
		},
	}
}

// HomeDir returns the isleprint directory: $ISLEPRINT_HOME, or ~/.isleprint.
func HomeDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns the user config file path.
func DefaultPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file at path over the defaults. A missing file is
// not an error. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies ISLEPRINT_* overrides.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvFactors); v != "" {
		c.Factors.Path = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.DefaultFormat = v
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(reportFormats, strings.ToLower(c.Output.DefaultFormat)) {
		errs = append(errs, fmt.Errorf("%w: %q (want one of %s)",
			ErrInvalidFormat, c.Output.DefaultFormat, strings.Join(reportFormats, ", ")))
	}
	if c.Output.Precision < 0 || c.Output.Precision > 6 {
		errs = append(errs, fmt.Errorf("%w: precision %d out of range 0-6", ErrInvalidFormat, c.Output.Precision))
	}
	if c.Traveler.Days < 1 {
		errs = append(errs, fmt.Errorf("%w: days must be at least 1", ErrInvalidTraveler))
	}
	if c.Traveler.KmPerDay < 0 {
		errs = append(errs, fmt.Errorf("%w: km_per_day cannot be negative", ErrInvalidTraveler))
	}
	if c.Server.Rate <= 0 || c.Server.Burst < 1 {
		errs = append(errs, fmt.Errorf("%w: rate and burst must be positive", ErrInvalidServer))
	}
	if c.Server.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidServer))
	}
	return errors.Join(errs...)
}

// Save writes c to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
