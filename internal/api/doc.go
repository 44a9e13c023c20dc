// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

// Package api implements the HTTP surface of the recommendation service:
// Chi routing, the standardized JSON response envelope, request validation,
// and the per-request middleware stack (request IDs, CORS, rate limiting,
// Prometheus instrumentation).
package api
