// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InteractionType classifies a user-movie interaction.
type InteractionType string

// Known interaction types. Unknown values are accepted by the store and
// scored with the default weight by the preference aggregator.
const (
	InteractionView      InteractionType = "view"
	InteractionClick     InteractionType = "click"
	InteractionRate      InteractionType = "rate"
	InteractionWatch     InteractionType = "watch"
	InteractionRecommend InteractionType = "recommend"
)

// Valid reports whether t is one of the known interaction types.
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionView, InteractionClick, InteractionRate, InteractionWatch, InteractionRecommend:
		return true
	default:
		return false
	}
}

// Event is an immutable record of a single user-movie interaction.
// Rating and WatchDuration are optional; nil means absent, which the
// preference aggregator treats differently from a zero value.
type Event struct {
	// UserID identifies the user the event belongs to.
	UserID string `json:"user_id"`

	// MovieID is the catalog identifier of the movie.
	MovieID int `json:"movie_id"`

	// Type is the interaction type (view, click, rate, watch, recommend).
	Type InteractionType `json:"interaction_type"`

	// Timestamp is seconds since epoch, fractional.
	Timestamp float64 `json:"timestamp"`

	// Rating is an optional user rating, clamped to [1, 5] on record.
	Rating *float64 `json:"rating,omitempty"`

	// WatchDuration is an optional watched duration in seconds,
	// clamped to >= 0 on record.
	WatchDuration *int `json:"watch_duration,omitempty"`
}

// Time returns the event timestamp as a time.Time.
func (e *Event) Time() time.Time {
	sec := int64(e.Timestamp)
	nsec := int64((e.Timestamp - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// Clamp normalizes the optional fields in place: rating into [1, 5] and
// watch duration to >= 0. Safe to call on events without those fields.
func (e *Event) Clamp() {
	if e.Rating != nil {
		if *e.Rating < 1.0 {
			*e.Rating = 1.0
		}
		if *e.Rating > 5.0 {
			*e.Rating = 5.0
		}
	}
	if e.WatchDuration != nil && *e.WatchDuration < 0 {
		*e.WatchDuration = 0
	}
}

// eventKey builds the storage key for an event: a zero-padded nanosecond
// timestamp plus a short random suffix. Descending lexicographic order of
// keys is newest-first, and the suffix makes same-nanosecond writes for one
// user collision-free.
func eventKey(ts time.Time) string {
	return fmt.Sprintf("%019d-%s", ts.UnixNano(), uuid.New().String()[:8])
}
