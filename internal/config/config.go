// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

// Package config defines the service configuration and its layered loader.
// Precedence is ENV > config file > built-in defaults.
package config

import (
	"fmt"
	"time"

	"github.com/reelmind/reelmind/internal/recommend"
	"github.com/reelmind/reelmind/internal/store"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Store     StoreConfig      `koanf:"store"`
	Data      DataConfig       `koanf:"data"`
	API       APIConfig        `koanf:"api"`
	Recommend recommend.Config `koanf:"recommend"`
	Refresh   RefreshConfig    `koanf:"refresh"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selects and configures the interaction store backend.
type StoreConfig struct {
	// Backend is "fs" or "badger".
	Backend string `koanf:"backend"`

	// Path is the store root: a directory for the fs backend, a Badger
	// database directory for the badger backend.
	Path string `koanf:"path"`
}

// DataConfig locates the static model artifacts loaded at startup.
type DataConfig struct {
	// CatalogPath is the JSON movie catalog file.
	CatalogPath string `koanf:"catalog_path"`

	// SimilarityPath is the JSON content-similarity matrix file, row and
	// column aligned with the catalog.
	SimilarityPath string `koanf:"similarity_path"`
}

// APIConfig controls the HTTP API surface.
type APIConfig struct {
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
}

// RefreshConfig controls the background model refresh service.
type RefreshConfig struct {
	// Enabled turns the periodic refresh on. Request paths rebuild the
	// model on demand either way; the refresher only keeps rebuild latency
	// out of user requests.
	Enabled bool `koanf:"enabled"`

	// Interval is how often the refresher rebuilds the model.
	Interval time.Duration `koanf:"interval"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is trace, debug, info, warn, error, or fatal.
	Level string `koanf:"level"`

	// Format is "json" or "console".
	Format string `koanf:"format"`

	// Caller adds file:line to every entry.
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config with all defaults applied. Defaults load
// first, then the config file, then environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8088,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Backend: store.BackendFS,
			Path:    "/data/interactions",
		},
		Data: DataConfig{
			CatalogPath:    "/data/movies.json",
			SimilarityPath: "/data/similarity.json",
		},
		API: APIConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: 1 * time.Minute,
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Recommend: *recommend.DefaultConfig(),
		Refresh: RefreshConfig{
			Enabled:  true,
			Interval: 15 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Store.Backend != store.BackendFS && c.Store.Backend != store.BackendBadger {
		return fmt.Errorf("store.backend must be %q or %q, got %q", store.BackendFS, store.BackendBadger, c.Store.Backend)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Data.CatalogPath == "" {
		return fmt.Errorf("data.catalog_path is required")
	}
	if c.Data.SimilarityPath == "" {
		return fmt.Errorf("data.similarity_path is required")
	}
	if c.API.RateLimitReqs < 1 {
		return fmt.Errorf("api.rate_limit_reqs must be positive, got %d", c.API.RateLimitReqs)
	}
	if c.API.DefaultPageSize < 1 || c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api page sizes invalid: default=%d max=%d", c.API.DefaultPageSize, c.API.MaxPageSize)
	}
	if c.Refresh.Enabled && c.Refresh.Interval < time.Second {
		return fmt.Errorf("refresh.interval must be at least 1s, got %s", c.Refresh.Interval)
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}
