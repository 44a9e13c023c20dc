// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Interaction Store Metrics
	StoreWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_store_writes_total",
			Help: "Total number of interaction events written",
		},
		[]string{"backend", "type"},
	)

	StoreWriteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_store_write_errors_total",
			Help: "Total number of failed interaction writes",
		},
		[]string{"backend"},
	)

	StoreReadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_store_read_errors_total",
			Help: "Total number of skipped unreadable event records",
		},
		[]string{"backend"},
	)

	// Recommendation Engine Metrics
	ModelRebuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_model_rebuild_duration_seconds",
			Help:    "Duration of user-similarity model rebuilds in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_model_version",
			Help: "Current recommendation model version (bumped on every write)",
		},
	)

	ModelUserCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_model_users",
			Help: "Number of users in the last built user-movie matrix",
		},
	)

	ModelMovieCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_model_movies",
			Help: "Number of distinct movies in the last built user-movie matrix",
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by source of results",
		},
		[]string{"source"}, // "content", "collaborative", "hybrid", "empty"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordAPIRequest records metrics for a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// ObserveModelRebuild records a completed model rebuild.
func ObserveModelRebuild(duration time.Duration, version int64, users, movies int) {
	ModelRebuildDuration.Observe(duration.Seconds())
	ModelVersion.Set(float64(version))
	ModelUserCount.Set(float64(users))
	ModelMovieCount.Set(float64(movies))
}
