package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all tool settings, populated from environment variables.
type Config struct {
	DataDir  string
	ChartDir string

	TornadoCSV string
	DBPath     string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Dataset download configuration.
	FetchBaseURL string
	FetchTimeout time.Duration

	// CacheSize bounds the team detail query cache.
	CacheSize int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	dataDir := envOrDefault("DATA_DIR", "data")

	cfg := &Config{
		DataDir:  dataDir,
		ChartDir: envOrDefault("CHART_DIR", "charts"),

		TornadoCSV: envOrDefault("TORNADO_CSV", filepath.Join(dataDir, "tx_tornadoes.csv")),
		DBPath:     envOrDefault("DB_PATH", filepath.Join(dataDir, "lahman.sqlite")),

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		FetchBaseURL: envOrDefault("FETCH_BASE_URL", "https://raw.githubusercontent.com/ds4stats/case-studies-data/main"),
		FetchTimeout: fetchTimeout,

		CacheSize: cacheSize,
	}

	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}
	if cfg.ChartDir == "" {
		return nil, errors.New("CHART_DIR is required")
	}
	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.FetchBaseURL == "" {
		return nil, errors.New("FETCH_BASE_URL is required")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid LOG_LEVEL")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("invalid LOG_FORMAT")
	}

	return cfg, nil
}

// envOrDefault returns the value of the named variable, or def when unset or empty.
func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseDuration(name, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(name, def))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return d, nil
}

func parseCacheSize() (int, error) {
	s := envOrDefault("CACHE_SIZE", "256")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid CACHE_SIZE")
	}
	return n, nil
}
