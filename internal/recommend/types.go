// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

// PreferenceVector maps movie IDs to aggregated, non-negative interest
// scores for a single user. It is derived state, recomputed from the user's
// event history and never persisted.
type PreferenceVector map[int]float64

// RecommendationItem is a single ranked result. Score semantics differ by
// ranker: raw content similarity for the content ranker, similarity-weighted
// aggregated preference for the collaborative ranker, and the weighted blend
// for hybrid results.
type RecommendationItem struct {
	// MovieID is the external movie identifier.
	MovieID int `json:"id"`

	// Title is the movie title from the catalog.
	Title string `json:"title"`

	// Score is the ranking score; higher is better.
	Score float64 `json:"score"`
}
