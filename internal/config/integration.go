package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const factorsFileName = "factors.yaml"

// EnsureHomeDir creates the isleprint home directory if needed and returns it.
func EnsureHomeDir() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, nil
}

// EnsureLogDir creates the parent directory of logFile. An empty path is a
// no-op.
func EnsureLogDir(logFile string) error {
	if logFile == "" {
		return nil
	}
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}

// DefaultFactorsPath returns where `factors init` writes without an
// explicit path: the project directory when there is one, the home
// directory otherwise.
func DefaultFactorsPath(projectDir string) (string, error) {
	if projectDir != "" {
		return filepath.Join(projectDir, factorsFileName), nil
	}
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, factorsFileName), nil
}

// ProjectConfigPath returns the overlay config path inside projectDir.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, configFileName)
}
