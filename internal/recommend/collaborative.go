// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import (
	"sort"

	"github.com/reelmind/reelmind/internal/catalog"
)

// CollaborativeRanker scores movies for a user from the preferences of the
// most similar other users in a model snapshot.
type CollaborativeRanker struct {
	catalog   *catalog.Catalog
	neighbors int
}

// NewCollaborativeRanker returns a CollaborativeRanker consulting up to
// neighbors similar users per request.
func NewCollaborativeRanker(c *catalog.Catalog, neighbors int) *CollaborativeRanker {
	return &CollaborativeRanker{catalog: c, neighbors: neighbors}
}

// Rank scores candidate movies for userID: for each of the top similar
// users, every movie they prefer and the target has not interacted with
// accumulates similarity * preference. Results are sorted highest first,
// capped at topN. A user absent from the model, or a model without a
// similarity matrix, yields an empty list.
func (r *CollaborativeRanker) Rank(model *Model, userID string, topN int) []RecommendationItem {
	if topN <= 0 || model == nil || model.Similarity == nil {
		return []RecommendationItem{}
	}
	userIdx, ok := model.UserIndex(userID)
	if !ok {
		return []RecommendationItem{}
	}
	userPrefs := model.Prefs[userID]

	scores := make(map[int]float64)
	for _, nb := range r.topNeighbors(model, userIdx) {
		neighborPrefs := model.Prefs[model.Users[nb.index]]
		for movieID, pref := range neighborPrefs {
			if _, seen := userPrefs[movieID]; seen {
				continue
			}
			scores[movieID] += nb.similarity * pref
		}
	}
	if len(scores) == 0 {
		return []RecommendationItem{}
	}

	items := make([]RecommendationItem, 0, len(scores))
	for movieID, score := range scores {
		item := RecommendationItem{MovieID: movieID, Score: score}
		if movie, ok := r.catalog.ByID(movieID); ok {
			item.Title = movie.Title
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].MovieID < items[j].MovieID
	})
	if len(items) > topN {
		items = items[:topN]
	}
	return items
}

type neighbor struct {
	index      int
	similarity float64
}

// topNeighbors returns up to r.neighbors other users ordered by descending
// similarity to the target row. Ties break on user order for determinism.
func (r *CollaborativeRanker) topNeighbors(model *Model, userIdx int) []neighbor {
	row := model.Similarity[userIdx]
	neighbors := make([]neighbor, 0, len(row)-1)
	for i, sim := range row {
		if i == userIdx {
			continue
		}
		neighbors = append(neighbors, neighbor{index: i, similarity: sim})
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].similarity > neighbors[j].similarity
	})
	if len(neighbors) > r.neighbors {
		neighbors = neighbors[:r.neighbors]
	}
	return neighbors
}
