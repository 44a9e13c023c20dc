// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package store

import "context"

// DefaultListLimit caps List results when the caller does not set a limit.
const DefaultListLimit = 100

// ListOptions controls List behavior.
type ListOptions struct {
	// Limit caps the number of returned events. Zero means DefaultListLimit.
	Limit int

	// Types filters the returned events to the given interaction types.
	// Empty means no filtering. The cap is applied to the newest Limit
	// events before filtering, matching the original log semantics.
	Types []InteractionType
}

// Store is the durable, append-only interaction event log.
// Implementations must be safe for concurrent use; writers for different
// users never conflict.
type Store interface {
	// Record persists a single event. The event's Timestamp must already be
	// set and its optional fields clamped (see Event.Clamp).
	Record(ctx context.Context, ev *Event) error

	// List returns a user's events newest-first, capped at opts.Limit.
	// A user with no stored events yields an empty slice and nil error.
	List(ctx context.Context, userID string, opts ListOptions) ([]Event, error)

	// Users returns every user ID with at least one stored event.
	Users(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// typeSet builds a lookup set from a type filter slice.
func typeSet(types []InteractionType) map[InteractionType]struct{} {
	if len(types) == 0 {
		return nil
	}
	set := make(map[InteractionType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// filterTypes drops events whose type is not in the set. A nil set keeps
// everything.
func filterTypes(events []Event, set map[InteractionType]struct{}) []Event {
	if set == nil {
		return events
	}
	kept := events[:0]
	for _, ev := range events {
		if _, ok := set[ev.Type]; ok {
			kept = append(kept, ev)
		}
	}
	return kept
}
