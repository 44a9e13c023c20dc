// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package api

import "net/http"

// Health handles GET /api/v1/health: overall service status plus component
// detail.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	storeStatus := "ok"
	status := "ok"
	if _, err := h.store.Users(r.Context()); err != nil {
		storeStatus = "error"
		status = "degraded"
	}

	data := map[string]interface{}{
		"status": status,
		"components": map[string]string{
			"store":   storeStatus,
			"catalog": "ok",
		},
		"catalog_size":  h.catalog.Len(),
		"model_version": h.engine.ModelVersion(),
	}
	if status != "ok" {
		rw.writeJSON(http.StatusServiceUnavailable, APIResponse{Success: false, Data: data})
		return
	}
	rw.Success(data)
}

// HealthLive handles GET /api/v1/health/live: process liveness only.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready: the service can answer
// requests, meaning the store is reachable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if _, err := h.store.Users(r.Context()); err != nil {
		rw.ServiceUnavailable("store not reachable")
		return
	}
	rw.Success(map[string]string{"status": "ready"})
}
