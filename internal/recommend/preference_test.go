// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import (
	"testing"

	"github.com/reelmind/reelmind/internal/store"
)

func TestEventWeight(t *testing.T) {
	agg := NewAggregator()

	tests := []struct {
		name  string
		event store.Event
		want  float64
	}{
		{
			name:  "view base weight",
			event: store.Event{Type: store.InteractionView},
			want:  1.0,
		},
		{
			name:  "click base weight",
			event: store.Event{Type: store.InteractionClick},
			want:  2.0,
		},
		{
			name:  "recommend base weight",
			event: store.Event{Type: store.InteractionRecommend},
			want:  0.5,
		},
		{
			name:  "unknown type defaults to one",
			event: store.Event{Type: "bookmark"},
			want:  1.0,
		},
		{
			name:  "max rating doubles the rate weight",
			event: store.Event{Type: store.InteractionRate, Rating: floatPtr(5.0)},
			want:  10.0,
		},
		{
			name:  "neutral rating keeps the base weight",
			event: store.Event{Type: store.InteractionRate, Rating: floatPtr(2.5)},
			want:  5.0,
		},
		{
			name:  "two hour watch doubles the watch weight",
			event: store.Event{Type: store.InteractionWatch, WatchDuration: intPtr(7200)},
			want:  6.0,
		},
		{
			name:  "watch duration bonus caps at two hours",
			event: store.Event{Type: store.InteractionWatch, WatchDuration: intPtr(10800)},
			want:  6.0,
		},
		{
			name:  "half hour watch",
			event: store.Event{Type: store.InteractionWatch, WatchDuration: intPtr(1800)},
			want:  3.75,
		},
		{
			name:  "rating and duration multipliers compound",
			event: store.Event{Type: store.InteractionRate, Rating: floatPtr(5.0), WatchDuration: intPtr(7200)},
			want:  20.0,
		},
		{
			name:  "zero duration is a no-op multiplier",
			event: store.Event{Type: store.InteractionWatch, WatchDuration: intPtr(0)},
			want:  3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agg.EventWeight(tt.event)
			if !almostEqual(got, tt.want) {
				t.Errorf("EventWeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	agg := NewAggregator()

	t.Run("empty history yields empty vector", func(t *testing.T) {
		prefs := agg.Aggregate(nil)
		if len(prefs) != 0 {
			t.Errorf("Aggregate(nil) = %v, want empty", prefs)
		}
	})

	t.Run("distinct movies keep their own scores", func(t *testing.T) {
		prefs := agg.Aggregate([]store.Event{
			{MovieID: 1, Type: store.InteractionView},
			{MovieID: 2, Type: store.InteractionClick},
		})
		if !almostEqual(prefs[1], 1.0) || !almostEqual(prefs[2], 2.0) {
			t.Errorf("Aggregate() = %v, want {1:1, 2:2}", prefs)
		}
	})

	t.Run("repeat movie averages in", func(t *testing.T) {
		prefs := agg.Aggregate([]store.Event{
			{MovieID: 1, Type: store.InteractionRate, Rating: floatPtr(5.0)}, // 10.0
			{MovieID: 1, Type: store.InteractionView},                       // (10+1)/2
		})
		if !almostEqual(prefs[1], 5.5) {
			t.Errorf("Aggregate() movie 1 = %v, want 5.5", prefs[1])
		}
	})

	t.Run("fold is order dependent", func(t *testing.T) {
		forward := agg.Aggregate([]store.Event{
			{MovieID: 1, Type: store.InteractionRate, Rating: floatPtr(5.0)},
			{MovieID: 1, Type: store.InteractionView},
			{MovieID: 1, Type: store.InteractionClick},
		})
		backward := agg.Aggregate([]store.Event{
			{MovieID: 1, Type: store.InteractionClick},
			{MovieID: 1, Type: store.InteractionView},
			{MovieID: 1, Type: store.InteractionRate, Rating: floatPtr(5.0)},
		})
		// forward: ((10+1)/2 + 2)/2 = 3.75; backward: ((2+1)/2 + 10)/2 = 5.75
		if !almostEqual(forward[1], 3.75) {
			t.Errorf("forward fold = %v, want 3.75", forward[1])
		}
		if !almostEqual(backward[1], 5.75) {
			t.Errorf("backward fold = %v, want 5.75", backward[1])
		}
	})

	t.Run("events without a movie id are skipped", func(t *testing.T) {
		prefs := agg.Aggregate([]store.Event{
			{MovieID: 0, Type: store.InteractionView},
			{MovieID: -3, Type: store.InteractionView},
			{MovieID: 7, Type: store.InteractionView},
		})
		if len(prefs) != 1 || !almostEqual(prefs[7], 1.0) {
			t.Errorf("Aggregate() = %v, want {7:1}", prefs)
		}
	})
}
