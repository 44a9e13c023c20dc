// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ModelUpdater is the slice of the recommendation engine the refresher
// needs, kept narrow to avoid an import cycle and to ease testing.
type ModelUpdater interface {
	// UpdateModel forces a rebuild of the preference model.
	UpdateModel(ctx context.Context) (users, movies int, err error)
}

// RefreshServiceConfig configures the background model refresher.
type RefreshServiceConfig struct {
	// Interval is how often the model is rebuilt.
	Interval time.Duration

	// RefreshOnStartup triggers a rebuild as soon as the service starts,
	// so the first user request never pays for the initial build.
	RefreshOnStartup bool

	// Timeout bounds a single rebuild. Default: 5m.
	Timeout time.Duration
}

// RefreshService periodically rebuilds the preference model so request
// paths mostly hit a warm cache. Rebuild failures are logged and retried on
// the next tick; they never crash the service.
type RefreshService struct {
	engine ModelUpdater
	config RefreshServiceConfig
	logger zerolog.Logger
	name   string
}

// NewRefreshService creates a RefreshService.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefreshService(engine ModelUpdater, cfg RefreshServiceConfig, logger zerolog.Logger) *RefreshService {
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &RefreshService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "model-refresh").Logger(),
		name:   "model-refresh-service",
	}
}

// Serve implements the suture.Service interface.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Bool("refresh_on_startup", s.config.RefreshOnStartup).
		Msg("model refresh service starting")

	if s.config.RefreshOnStartup {
		if err := s.refresh(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("startup refresh failed (will retry on schedule)")
		}
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("model refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.refresh(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled refresh failed")
			}
		}
	}
}

func (s *RefreshService) refresh(ctx context.Context) error {
	refreshCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	users, movies, err := s.engine.UpdateModel(refreshCtx)
	if err != nil {
		return err
	}

	s.logger.Info().
		Int("users", users).
		Int("movies", movies).
		Dur("duration", time.Since(start)).
		Msg("model refreshed")
	return nil
}

// String returns the service name for logging.
func (s *RefreshService) String() string {
	return s.name
}
