// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelmind/reelmind/internal/catalog"
	"github.com/reelmind/reelmind/internal/metrics"
	"github.com/reelmind/reelmind/internal/store"
)

// ErrMissingQuery is returned by Recommend when the caller supplies neither
// a movie title nor a user ID. Every other degraded input yields empty
// results instead of an error.
var ErrMissingQuery = errors.New("recommend: movie title or user id required")

// Engine orchestrates the full recommendation pipeline over one store, one
// catalog, and one content-similarity matrix.
//
// The engine keeps a version-gated model cache: RecordInteraction bumps a
// monotonic log version, and request paths rebuild the preference model
// only when the cached snapshot is older than the log. Snapshots are
// immutable, so concurrent readers share them safely.
type Engine struct {
	store   store.Store
	catalog *catalog.Catalog
	cfg     *Config
	logger  zerolog.Logger

	agg           *Aggregator
	content       *ContentRanker
	collaborative *CollaborativeRanker

	logVersion atomic.Int64

	mu      sync.Mutex
	model   *Model
	rebuild sync.Mutex // serializes rebuilds without blocking cache reads
}

// NewEngine creates an Engine. The config is cloned; later mutation by the
// caller does not affect the engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(st store.Store, c *catalog.Catalog, m *catalog.SimilarityMatrix, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	e := &Engine{
		store:         st,
		catalog:       c,
		cfg:           cfg.Clone(),
		logger:        logger.With().Str("component", "engine").Logger(),
		agg:           NewAggregator(),
		content:       NewContentRanker(c, m),
		collaborative: NewCollaborativeRanker(c, cfg.Neighbors),
	}
	// Version 1 with no cached model forces a build on first use.
	e.logVersion.Store(1)
	return e, nil
}

// RecordInteraction validates, clamps, timestamps, and persists one event,
// then marks the cached model stale.
func (e *Engine) RecordInteraction(ctx context.Context, ev *store.Event) error {
	if ev.UserID == "" {
		return errors.New("recommend: user id required")
	}
	if ev.MovieID <= 0 {
		return fmt.Errorf("recommend: invalid movie id %d", ev.MovieID)
	}
	if ev.Timestamp == 0 {
		ev.Timestamp = float64(time.Now().UnixNano()) / 1e9
	}
	ev.Clamp()

	if err := e.store.Record(ctx, ev); err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	e.logVersion.Add(1)

	e.logger.Debug().
		Str("user_id", ev.UserID).
		Int("movie_id", ev.MovieID).
		Str("type", string(ev.Type)).
		Msg("Interaction recorded")
	return nil
}

// Recommend returns up to n hybrid recommendations. Either side of the
// query may be absent: a title alone yields pure content results, a user ID
// alone yields pure collaborative results, and both yield the weighted
// blend. Supplying neither is a caller error (ErrMissingQuery). n <= 0
// falls back to the configured default, and n above the configured maximum
// is capped.
func (e *Engine) Recommend(ctx context.Context, title, userID string, n int) ([]RecommendationItem, error) {
	if title == "" && userID == "" {
		return nil, ErrMissingQuery
	}
	if n <= 0 {
		n = e.cfg.DefaultN
	}
	if n > e.cfg.MaxN {
		n = e.cfg.MaxN
	}

	// Both rankers run with 2n headroom so the merged union still holds n
	// strong candidates after blending reorders it.
	headroom := 2 * n

	var content []RecommendationItem
	if title != "" {
		content = e.content.Rank(title, headroom)
	}

	var collaborative []RecommendationItem
	if userID != "" {
		model, err := e.currentModel(ctx)
		if err != nil {
			return nil, err
		}
		collaborative = e.collaborative.Rank(model, userID, headroom)
	}

	items := Merge(content, collaborative, e.cfg.Weights, n)
	metrics.RecommendationsTotal.WithLabelValues(recommendSource(title, userID, items)).Inc()

	e.logger.Debug().
		Str("title", title).
		Str("user_id", userID).
		Int("n", n).
		Int("results", len(items)).
		Msg("Recommendations served")
	return items, nil
}

// UserPreferences returns the current aggregated preference vector for a
// user, rebuilding the model first if stale. Unknown users yield an empty
// vector.
func (e *Engine) UserPreferences(ctx context.Context, userID string) (PreferenceVector, error) {
	model, err := e.currentModel(ctx)
	if err != nil {
		return nil, err
	}
	prefs, ok := model.Preferences(userID)
	if !ok {
		return PreferenceVector{}, nil
	}
	return prefs, nil
}

// UpdateModel forces an immediate rebuild of the preference model
// regardless of cache freshness and returns the new snapshot's user and
// movie counts. Bumping the log version first keeps the rebuild from being
// short-circuited by the cache, so events appended to the store by other
// writers are picked up.
func (e *Engine) UpdateModel(ctx context.Context) (users, movies int, err error) {
	model, err := e.rebuildModel(ctx, e.logVersion.Add(1))
	if err != nil {
		return 0, 0, err
	}
	return len(model.Users), len(model.Movies), nil
}

// ModelVersion returns the version of the cached snapshot, or 0 when no
// model has been built yet.
func (e *Engine) ModelVersion() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.model == nil {
		return 0
	}
	return e.model.Version
}

// currentModel returns a snapshot at least as fresh as the log version at
// call time, rebuilding when the cache is stale.
func (e *Engine) currentModel(ctx context.Context) (*Model, error) {
	want := e.logVersion.Load()

	e.mu.Lock()
	cached := e.model
	e.mu.Unlock()
	if cached != nil && cached.Version >= want {
		return cached, nil
	}
	return e.rebuildModel(ctx, want)
}

// rebuildModel builds and publishes a fresh snapshot. Rebuilds serialize on
// their own mutex; a racer that lost can reuse the winner's snapshot when
// it is fresh enough.
func (e *Engine) rebuildModel(ctx context.Context, version int64) (*Model, error) {
	e.rebuild.Lock()
	defer e.rebuild.Unlock()

	e.mu.Lock()
	cached := e.model
	e.mu.Unlock()
	if cached != nil && cached.Version >= version {
		return cached, nil
	}

	start := time.Now()
	model, err := BuildModel(ctx, e.store, e.agg, e.cfg.MaxEventsPerUser, version)
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	e.mu.Lock()
	e.model = model
	e.mu.Unlock()

	elapsed := time.Since(start)
	metrics.ObserveModelRebuild(elapsed, model.Version, len(model.Users), len(model.Movies))
	e.logger.Info().
		Int64("version", model.Version).
		Int("users", len(model.Users)).
		Int("movies", len(model.Movies)).
		Dur("elapsed", elapsed).
		Msg("Preference model rebuilt")
	return model, nil
}

// recommendSource labels a served request for metrics.
func recommendSource(title, userID string, items []RecommendationItem) string {
	switch {
	case len(items) == 0:
		return "empty"
	case title != "" && userID != "":
		return "hybrid"
	case title != "":
		return "content"
	default:
		return "collaborative"
	}
}
