// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import "sort"

// Merge blends a content-ranked list and a collaborative-ranked list into a
// single hybrid ranking over the union of both candidate sets. Each movie's
// blended score is weights.Content*contentScore + weights.Collaborative*
// collaborativeScore, with a missing side contributing zero. When only one
// list is non-empty it is returned unchanged, raw scores intact. Metadata
// from the content side wins when both sides carry the same movie.
func Merge(content, collaborative []RecommendationItem, weights Weights, topN int) []RecommendationItem {
	if topN <= 0 {
		return []RecommendationItem{}
	}
	if len(content) == 0 && len(collaborative) == 0 {
		return []RecommendationItem{}
	}
	if len(collaborative) == 0 {
		return capItems(content, topN)
	}
	if len(content) == 0 {
		return capItems(collaborative, topN)
	}

	merged := make([]RecommendationItem, 0, len(content)+len(collaborative))
	position := make(map[int]int, len(content)+len(collaborative))

	for _, item := range content {
		if _, seen := position[item.MovieID]; seen {
			continue
		}
		position[item.MovieID] = len(merged)
		merged = append(merged, RecommendationItem{
			MovieID: item.MovieID,
			Title:   item.Title,
			Score:   weights.Content * item.Score,
		})
	}
	for _, item := range collaborative {
		if i, seen := position[item.MovieID]; seen {
			merged[i].Score += weights.Collaborative * item.Score
			continue
		}
		position[item.MovieID] = len(merged)
		merged = append(merged, RecommendationItem{
			MovieID: item.MovieID,
			Title:   item.Title,
			Score:   weights.Collaborative * item.Score,
		})
	}

	// Stable over union order: ties rank content-side candidates first.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	return capItems(merged, topN)
}

func capItems(items []RecommendationItem, topN int) []RecommendationItem {
	if len(items) > topN {
		items = items[:topN]
	}
	return items
}
