package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "charts", cfg.ChartDir)
	assert.Equal(t, filepath.Join("data", "tx_tornadoes.csv"), cfg.TornadoCSV)
	assert.Equal(t, filepath.Join("data", "lahman.sqlite"), cfg.DBPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://raw.githubusercontent.com/ds4stats/case-studies-data/main", cfg.FetchBaseURL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 256, cfg.CacheSize)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/case-studies")
	t.Setenv("CHART_DIR", "/srv/charts")
	t.Setenv("TORNADO_CSV", "/srv/tornadoes.csv")
	t.Setenv("DB_PATH", "/srv/lahman.db")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("FETCH_BASE_URL", "http://mirror.internal/datasets")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("CACHE_SIZE", "32")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/case-studies", cfg.DataDir)
	assert.Equal(t, "/srv/charts", cfg.ChartDir)
	assert.Equal(t, "/srv/tornadoes.csv", cfg.TornadoCSV)
	assert.Equal(t, "/srv/lahman.db", cfg.DBPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://mirror.internal/datasets", cfg.FetchBaseURL)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 32, cfg.CacheSize)
}

func TestLoad_FilePathsFollowDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/cases")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/var/lib/cases", "tx_tornadoes.csv"), cfg.TornadoCSV)
	assert.Equal(t, filepath.Join("/var/lib/cases", "lahman.sqlite"), cfg.DBPath)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidFetchTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
}

func TestLoad_InvalidCacheSize(t *testing.T) {
	t.Setenv("CACHE_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_SIZE")
}

func TestLoad_CacheSizeNotANumber(t *testing.T) {
	t.Setenv("CACHE_SIZE", "lots")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_SIZE")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "yaml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}
