// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import "testing"

func TestMerge(t *testing.T) {
	weights := Weights{Content: 0.7, Collaborative: 0.3}

	t.Run("blends overlapping candidates", func(t *testing.T) {
		content := []RecommendationItem{
			{MovieID: 1, Title: "A", Score: 0.9},
			{MovieID: 2, Title: "B", Score: 0.4},
		}
		collaborative := []RecommendationItem{
			{MovieID: 2, Title: "B (stale)", Score: 0.8},
			{MovieID: 3, Title: "C", Score: 0.6},
		}

		items := Merge(content, collaborative, weights, 5)
		if len(items) != 3 {
			t.Fatalf("Merge() returned %d items, want 3", len(items))
		}
		// A: 0.7*0.9 = 0.63. B: 0.7*0.4 + 0.3*0.8 = 0.52. C: 0.3*0.6 = 0.18.
		want := []RecommendationItem{
			{MovieID: 1, Title: "A", Score: 0.63},
			{MovieID: 2, Title: "B", Score: 0.52},
			{MovieID: 3, Title: "C", Score: 0.18},
		}
		for i := range want {
			if items[i].MovieID != want[i].MovieID || !almostEqual(items[i].Score, want[i].Score) {
				t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
			}
		}
	})

	t.Run("content metadata wins on overlap", func(t *testing.T) {
		items := Merge(
			[]RecommendationItem{{MovieID: 2, Title: "B", Score: 0.4}},
			[]RecommendationItem{{MovieID: 2, Title: "B (stale)", Score: 0.8}},
			weights, 5,
		)
		if len(items) != 1 || items[0].Title != "B" {
			t.Errorf("Merge() = %+v, want title from the content side", items)
		}
	})

	t.Run("empty collaborative side passes content through unweighted", func(t *testing.T) {
		content := []RecommendationItem{{MovieID: 1, Title: "A", Score: 0.9}}
		items := Merge(content, nil, weights, 5)
		if len(items) != 1 || !almostEqual(items[0].Score, 0.9) {
			t.Errorf("Merge(content only) = %+v, want raw content scores", items)
		}
	})

	t.Run("empty content side passes collaborative through unweighted", func(t *testing.T) {
		collaborative := []RecommendationItem{{MovieID: 3, Title: "C", Score: 0.6}}
		items := Merge(nil, collaborative, weights, 5)
		if len(items) != 1 || !almostEqual(items[0].Score, 0.6) {
			t.Errorf("Merge(collaborative only) = %+v, want raw collaborative scores", items)
		}
	})

	t.Run("both sides empty yields empty list", func(t *testing.T) {
		if items := Merge(nil, nil, weights, 5); len(items) != 0 {
			t.Errorf("Merge(nil, nil) = %+v, want empty", items)
		}
	})

	t.Run("top_n caps the blended list", func(t *testing.T) {
		content := []RecommendationItem{
			{MovieID: 1, Score: 0.9},
			{MovieID: 2, Score: 0.4},
		}
		collaborative := []RecommendationItem{
			{MovieID: 3, Score: 0.6},
		}
		items := Merge(content, collaborative, weights, 2)
		if len(items) != 2 {
			t.Errorf("Merge(n=2) returned %d items, want 2", len(items))
		}
	})

	t.Run("ties keep content-side candidates first", func(t *testing.T) {
		// 0.3 * 0.7 on the collaborative side equals 0.7 * 0.3 on the
		// content side; union order puts the content candidate first.
		content := []RecommendationItem{{MovieID: 1, Score: 0.3}}
		collaborative := []RecommendationItem{{MovieID: 2, Score: 0.7}}
		items := Merge(content, collaborative, weights, 5)
		if len(items) != 2 || items[0].MovieID != 1 {
			t.Errorf("Merge() = %+v, want content candidate first on tie", items)
		}
	})
}
