package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"catalog/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPath(t *testing.T) {
	path := writeConfigFile(t, `
ENV=local
APP_NAME=catalog-service
APP_VERSION=0.1.0
HTTP_PORT=8081
LOGGER_LEVEL=debug
`)

	cfg, err := config.LoadPath(path)
	require.NoError(t, err)

	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "catalog-service", cfg.App.Name)
	require.Equal(t, "0.1.0", cfg.App.Version)
	require.Equal(t, "8081", cfg.HTTP.Port)
	require.Equal(t, "debug", cfg.Logger.Level)

	require.NotEmpty(t, cfg.CORS.Origins)
	require.Equal(t, "9090", cfg.Metrics.Port)
}

func TestLoadPath_MissingFile(t *testing.T) {
	_, err := config.LoadPath(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestLoadPath_ValidationFailure(t *testing.T) {
	path := writeConfigFile(t, `
ENV=sandbox
APP_NAME=catalog-service
APP_VERSION=0.1.0
`)

	_, err := config.LoadPath(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "config validation")
}
