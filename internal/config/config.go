package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress             string
	DatabaseURI            string
	CacheAddress           string
	TokenSecret            string
	CatalogRefreshInterval time.Duration
	CatalogCacheTTL        time.Duration
	ShutdownTimeout        time.Duration
}

const (
	defaultRunAddress             = ":8080"
	defaultTokenSecret            = "change-me-in-production"
	defaultCatalogRefreshInterval = time.Minute
	defaultCatalogCacheTTL        = 5 * time.Minute
	defaultShutdownTimeout        = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:             getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:            getString(lookup, "DATABASE_URI", ""),
		CacheAddress:           getString(lookup, "CACHE_ADDRESS", ""),
		TokenSecret:            getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		CatalogRefreshInterval: getDuration(lookup, "CATALOG_REFRESH_INTERVAL", defaultCatalogRefreshInterval),
		CatalogCacheTTL:        getDuration(lookup, "CATALOG_CACHE_TTL", defaultCatalogCacheTTL),
		ShutdownTimeout:        getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("pizzapetes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		refreshIntervalStr = cfg.CatalogRefreshInterval.String()
		cacheTTLStr        = cfg.CatalogCacheTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CacheAddress, "c", cfg.CacheAddress, "Redis address for catalog cache (empty disables caching)")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&refreshIntervalStr, "catalog-refresh", refreshIntervalStr, "Interval between catalog snapshot refreshes")
	fs.StringVar(&cacheTTLStr, "catalog-ttl", cacheTTLStr, "Lifetime of cached catalog snapshots")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CatalogRefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid catalog refresh interval: %w", err)
	}

	if cfg.CatalogCacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid catalog cache ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.CatalogRefreshInterval <= 0 {
		cfg.CatalogRefreshInterval = defaultCatalogRefreshInterval
	}

	if cfg.CatalogCacheTTL <= 0 {
		cfg.CatalogCacheTTL = defaultCatalogCacheTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
