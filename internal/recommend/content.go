// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import (
	"sort"

	"github.com/reelmind/reelmind/internal/catalog"
)

// ContentRanker ranks movies by precomputed content similarity to a query
// movie. It is stateless beyond the loaded catalog and matrix.
type ContentRanker struct {
	catalog *catalog.Catalog
	matrix  *catalog.SimilarityMatrix
}

// NewContentRanker returns a ContentRanker over the given catalog and
// similarity matrix.
func NewContentRanker(c *catalog.Catalog, m *catalog.SimilarityMatrix) *ContentRanker {
	return &ContentRanker{catalog: c, matrix: m}
}

// Rank returns the topN movies most similar to the exactly-titled query
// movie, highest first. The query movie itself is never included. An
// unknown title yields an empty list.
func (r *ContentRanker) Rank(title string, topN int) []RecommendationItem {
	if topN <= 0 {
		return []RecommendationItem{}
	}
	queryIdx, ok := r.catalog.IndexByTitle(title)
	if !ok {
		return []RecommendationItem{}
	}
	row, ok := r.matrix.Row(queryIdx)
	if !ok {
		return []RecommendationItem{}
	}

	type scored struct {
		index int
		score float64
	}
	candidates := make([]scored, len(row))
	for i, s := range row {
		candidates[i] = scored{index: i, score: s}
	}
	// Stable keeps catalog order among ties, so equal-scored movies rank
	// deterministically.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	items := make([]RecommendationItem, 0, topN)
	for _, cand := range candidates {
		if cand.index == queryIdx {
			continue
		}
		movie, ok := r.catalog.At(cand.index)
		if !ok {
			continue
		}
		items = append(items, RecommendationItem{
			MovieID: movie.ID,
			Title:   movie.Title,
			Score:   cand.score,
		})
		if len(items) == topN {
			break
		}
	}
	return items
}
