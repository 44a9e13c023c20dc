// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the service's HTTP handler tree.
type Router struct {
	handler *Handler
	mwCfg   *MiddlewareConfig
}

// NewRouter creates a Router. A nil middleware config uses defaults.
func NewRouter(handler *Handler, mwCfg *MiddlewareConfig) *Router {
	if mwCfg == nil {
		mwCfg = DefaultMiddlewareConfig()
	}
	return &Router{handler: handler, mwCfg: mwCfg}
}

// Setup wires all routes and the shared middleware stack.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global stack, applied to every route. CORS is global so OPTIONS
	// preflights are answered before route matching.
	r.Use(RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(router.mwCfg.CORSAllowedOrigins))

	// Health endpoints stay outside the rate limiter so orchestration
	// probes are never throttled.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimit(router.mwCfg.RateLimitRequests, router.mwCfg.RateLimitWindow))
		r.Use(PrometheusMetrics())

		r.Post("/interactions", router.handler.RecordInteraction)
		r.Get("/interactions/{userID}", router.handler.UserInteractions)
		r.Get("/users/{userID}/preferences", router.handler.UserPreferences)

		r.Get("/recommendations", router.handler.Recommendations)
		r.Post("/model/update", router.handler.UpdateModel)

		r.Get("/movies", router.handler.Movies)
		r.Get("/movies/search", router.handler.SearchMovies)
	})

	// Prometheus scrape endpoint, unwrapped.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
