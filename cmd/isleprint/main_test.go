package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/isleprint/internal/cli"
	"github.com/rshade/isleprint/internal/config"
	"github.com/rshade/isleprint/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "isleprint", root.Use)
		assert.Equal(t, version.GetVersion(), root.Version)

		var names []string
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		for _, want := range []string{"trip", "ledger", "factors", "catalog", "serve", "config", "version"} {
			assert.Contains(t, names, want)
		}
	})
}

func TestRun(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "version", args: []string{"version"}},
		{name: "catalog", args: []string{"catalog", "vehicles", "--output", "json"}},
		{name: "unknown command", args: []string{"ferry"}, wantErr: true},
		{name: "invalid trip", args: []string{"trip", "--mode", "ferry"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
