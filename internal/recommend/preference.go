// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import (
	"math"

	"github.com/reelmind/reelmind/internal/store"
)

// baseWeights maps interaction types to their base preference weight.
// Unknown types fall back to 1.0.
var baseWeights = map[store.InteractionType]float64{
	store.InteractionView:      1.0,
	store.InteractionClick:     2.0,
	store.InteractionRate:      5.0,
	store.InteractionWatch:     3.0,
	store.InteractionRecommend: 0.5,
}

// Aggregator folds interaction events into per-user preference vectors.
type Aggregator struct{}

// NewAggregator returns an Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// EventWeight computes the preference weight of a single event: the base
// weight of the interaction type, scaled by rating/2.5 when a rating is
// present, and by 1 + min(duration/3600, 2)/2 when a watch duration is
// present. Both multipliers apply when both fields are set.
func (a *Aggregator) EventWeight(ev store.Event) float64 {
	weight, ok := baseWeights[ev.Type]
	if !ok {
		weight = 1.0
	}

	if ev.Rating != nil {
		weight *= *ev.Rating / 2.5
	}
	if ev.WatchDuration != nil {
		hours := math.Min(float64(*ev.WatchDuration)/3600.0, 2.0)
		weight *= 1.0 + hours/2.0
	}
	return weight
}

// Aggregate folds a user's events into a preference vector. Events are
// folded in the order given: the first event for a movie sets its score,
// and each later event for the same movie averages in, score = (old+new)/2.
// The fold is order dependent, so callers must pass events in a stable
// order. Events without a positive movie ID are skipped.
func (a *Aggregator) Aggregate(events []store.Event) PreferenceVector {
	prefs := make(PreferenceVector, len(events))
	for _, ev := range events {
		if ev.MovieID <= 0 {
			continue
		}
		weight := a.EventWeight(ev)
		if old, ok := prefs[ev.MovieID]; ok {
			prefs[ev.MovieID] = (old + weight) / 2.0
		} else {
			prefs[ev.MovieID] = weight
		}
	}
	return prefs
}
