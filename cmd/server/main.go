// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

// Package main is the entry point for the Reelmind server.
//
// Reelmind is a hybrid movie recommendation service. It records user-movie
// interaction events, aggregates them into per-user preference vectors, and
// serves ranked recommendations that blend precomputed content similarity
// with collaborative filtering over similar users.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, YAML file, env)
//  2. Logging: zerolog, configured from the loaded settings
//  3. Model data: movie catalog and content-similarity matrix (fatal on error)
//  4. Store: filesystem or Badger interaction event log
//  5. Engine: the hybrid recommendation pipeline with its model cache
//  6. Supervisor tree: HTTP server and background model refresher
//
// # Configuration
//
// All settings can come from REELMIND_* environment variables or a YAML
// file (REELMIND_CONFIG overrides the search path). Common variables:
//
//	REELMIND_SERVER_PORT=8088
//	REELMIND_STORE_BACKEND=fs|badger
//	REELMIND_STORE_PATH=/data/interactions
//	REELMIND_CATALOG_PATH=/data/movies.json
//	REELMIND_SIMILARITY_PATH=/data/similarity.json
//	REELMIND_LOG_LEVEL=info
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the HTTP server drains
// in-flight requests within the configured timeout, the refresher stops,
// and the store is closed.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/reelmind/reelmind/internal/api"
	"github.com/reelmind/reelmind/internal/catalog"
	"github.com/reelmind/reelmind/internal/config"
	"github.com/reelmind/reelmind/internal/logging"
	"github.com/reelmind/reelmind/internal/recommend"
	"github.com/reelmind/reelmind/internal/store"
	"github.com/reelmind/reelmind/internal/supervisor"
	"github.com/reelmind/reelmind/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config is not available yet, so this uses the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("store_backend", cfg.Store.Backend).
		Str("catalog_path", cfg.Data.CatalogPath).
		Msg("Starting Reelmind")

	// The catalog and similarity matrix are the static halves of the
	// model; without them the content ranker cannot run at all.
	movieCatalog, err := catalog.Load(cfg.Data.CatalogPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load movie catalog")
	}
	similarity, err := catalog.LoadSimilarity(cfg.Data.SimilarityPath, movieCatalog.Len())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load similarity matrix")
	}
	logging.Info().Int("movies", movieCatalog.Len()).Msg("Catalog loaded")

	eventStore, err := store.New(cfg.Store.Backend, cfg.Store.Path, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open interaction store")
	}
	defer func() {
		if err := eventStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	engine, err := recommend.NewEngine(eventStore, movieCatalog, similarity, &cfg.Recommend, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handler := api.NewHandler(engine, movieCatalog, eventStore, cfg.API.DefaultPageSize, cfg.API.MaxPageSize, logging.Logger())
	router := api.NewRouter(handler, &api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.API.CORSOrigins,
		RateLimitRequests:  cfg.API.RateLimitReqs,
		RateLimitWindow:    cfg.API.RateLimitWindow,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Bridge zerolog to slog for suture's event hook.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if cfg.Refresh.Enabled {
		tree.AddBackgroundService(services.NewRefreshService(engine, services.RefreshServiceConfig{
			Interval:         cfg.Refresh.Interval,
			RefreshOnStartup: true,
		}, logging.Logger()))
	}

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Server listening")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree exited with error")
		os.Exit(1)
	}
	logging.Info().Msg("Shutdown complete")
}
