// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/reelmind/reelmind/internal/catalog"
	"github.com/reelmind/reelmind/internal/recommend"
	"github.com/reelmind/reelmind/internal/store"
)

// validate is the shared, concurrency-safe validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Handler carries the dependencies of every endpoint.
type Handler struct {
	engine  *recommend.Engine
	catalog *catalog.Catalog
	store   store.Store
	logger  zerolog.Logger

	defaultPageSize int
	maxPageSize     int
}

// NewHandler creates a Handler.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(engine *recommend.Engine, c *catalog.Catalog, st store.Store, defaultPageSize, maxPageSize int, logger zerolog.Logger) *Handler {
	return &Handler{
		engine:          engine,
		catalog:         c,
		store:           st,
		logger:          logger.With().Str("component", "api").Logger(),
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// interactionRequest is the POST /interactions body. The interaction type
// is free-form on purpose: unknown types are stored and scored with the
// default weight rather than rejected.
type interactionRequest struct {
	UserID        string   `json:"user_id" validate:"required,max=128"`
	MovieID       int      `json:"movie_id" validate:"required,gt=0"`
	Type          string   `json:"interaction_type" validate:"required,max=64"`
	Rating        *float64 `json:"rating,omitempty"`
	WatchDuration *int     `json:"watch_duration,omitempty"`
}

// validationDetails flattens validator errors into field/tag pairs for the
// error envelope.
func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	type fieldError struct {
		Field string `json:"field"`
		Tag   string `json:"tag"`
	}
	details := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return details
}

// RecordInteraction handles POST /api/v1/interactions.
func (h *Handler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rw.ValidationError("invalid interaction", validationDetails(err))
		return
	}

	ev := &store.Event{
		UserID:        req.UserID,
		MovieID:       req.MovieID,
		Type:          store.InteractionType(req.Type),
		Rating:        req.Rating,
		WatchDuration: req.WatchDuration,
	}
	if err := h.engine.RecordInteraction(r.Context(), ev); err != nil {
		rw.StoreError(err)
		return
	}

	rw.Created(map[string]interface{}{
		"user_id":  ev.UserID,
		"movie_id": ev.MovieID,
		"type":     ev.Type,
	})
}

// Recommendations handles GET /api/v1/recommendations. At least one of
// movie_title and user_id is required.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	title := r.URL.Query().Get("movie_title")
	userID := r.URL.Query().Get("user_id")
	n := h.intParam(r, "n", 0)

	items, err := h.engine.Recommend(r.Context(), title, userID, n)
	if err != nil {
		if errors.Is(err, recommend.ErrMissingQuery) {
			rw.BadRequest("movie_title or user_id is required")
			return
		}
		rw.StoreError(err)
		return
	}

	rw.Success(map[string]interface{}{
		"recommendations": items,
		"count":           len(items),
	})
}

// UpdateModel handles POST /api/v1/model/update: a forced rebuild of the
// preference model.
func (h *Handler) UpdateModel(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	users, movies, err := h.engine.UpdateModel(r.Context())
	if err != nil {
		rw.StoreError(err)
		return
	}

	rw.Success(map[string]interface{}{
		"users":   users,
		"movies":  movies,
		"version": h.engine.ModelVersion(),
	})
}

// UserInteractions handles GET /api/v1/interactions/{userID}. Supports
// limit and a comma-separated types filter.
func (h *Handler) UserInteractions(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		rw.BadRequest("user id is required")
		return
	}

	opts := store.ListOptions{Limit: h.intParam(r, "limit", 0)}
	if raw := r.URL.Query().Get("types"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				opts.Types = append(opts.Types, store.InteractionType(part))
			}
		}
	}

	events, err := h.store.List(r.Context(), userID, opts)
	if err != nil {
		rw.StoreError(err)
		return
	}

	rw.Success(map[string]interface{}{
		"user_id":      userID,
		"interactions": events,
		"count":        len(events),
	})
}

// UserPreferences handles GET /api/v1/users/{userID}/preferences: the
// user's current aggregated preference vector.
func (h *Handler) UserPreferences(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		rw.BadRequest("user id is required")
		return
	}

	prefs, err := h.engine.UserPreferences(r.Context(), userID)
	if err != nil {
		rw.StoreError(err)
		return
	}

	rw.Success(map[string]interface{}{
		"user_id":     userID,
		"preferences": prefs,
	})
}

// Movies handles GET /api/v1/movies: the catalog, paginated.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page := h.intParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := h.pageSize(r)

	movies := h.catalog.Page(page, limit)
	rw.SuccessWithPagination(movies, &PaginationMeta{
		Count:   len(movies),
		Page:    page,
		Limit:   limit,
		HasMore: page*limit < h.catalog.Len(),
	})
}

// SearchMovies handles GET /api/v1/movies/search?q=...: case-insensitive
// substring title search.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	query := r.URL.Query().Get("q")
	if query == "" {
		query = r.URL.Query().Get("query")
	}
	if query == "" {
		rw.BadRequest("query parameter q is required")
		return
	}

	movies := h.catalog.Search(query, h.pageSize(r))
	rw.Success(map[string]interface{}{
		"query":   query,
		"results": movies,
		"count":   len(movies),
	})
}

// intParam parses an integer query parameter, falling back on absence or
// garbage.
func (h *Handler) intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// pageSize resolves the limit parameter against the configured bounds.
func (h *Handler) pageSize(r *http.Request) int {
	limit := h.intParam(r, "limit", h.defaultPageSize)
	if limit < 1 {
		limit = h.defaultPageSize
	}
	if limit > h.maxPageSize {
		limit = h.maxPageSize
	}
	return limit
}
