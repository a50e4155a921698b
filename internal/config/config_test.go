package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/checkout-pricing/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"CATALOG_FILE":      "catalog.yaml",
		"APP_ENV":           "",
		"OBS_LOG_FORMAT":    "",
		"OBS_LOG_LEVEL":     "",
		"METRICS_NAMESPACE": "",
	})
	require.NoError(t, err)
	require.Equal(t, "catalog.yaml", cfg.CatalogFile)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "checkout", cfg.MetricsNamespace)
}

func TestLoadRequiresCatalog(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{"CATALOG_FILE": ""})
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"CATALOG_FILE":   "/etc/store.yaml",
		"OBS_LOG_FORMAT": "console",
		"OBS_LOG_LEVEL":  "debug",
	})
	require.NoError(t, err)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
}
