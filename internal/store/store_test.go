// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/reelmind/reelmind/internal/logging"
)

// backends returns a fresh instance of every Store implementation, so each
// behavior test runs against both.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	logger := logging.NewTestLogger(io.Discard)

	fs, err := NewFSStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("fs store: %v", err)
	}
	badger, err := NewBadgerStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("badger store: %v", err)
	}
	t.Cleanup(func() {
		_ = fs.Close()
		_ = badger.Close()
	})
	return map[string]Store{"fs": fs, "badger": badger}
}

func ts(offset int) float64 {
	return float64(time.Now().Add(time.Duration(offset) * time.Second).UnixNano()) / 1e9
}

func TestStoreRecordAndList(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			rating := 4.5
			ev := &Event{
				UserID:    "alice",
				MovieID:   101,
				Type:      InteractionRate,
				Timestamp: ts(0),
				Rating:    &rating,
			}
			if err := st.Record(ctx, ev); err != nil {
				t.Fatalf("Record() error = %v", err)
			}

			events, err := st.List(ctx, "alice", ListOptions{})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			got := events[0]
			if got.UserID != "alice" || got.MovieID != 101 || got.Type != InteractionRate {
				t.Errorf("event = %+v, want the recorded one", got)
			}
			if got.Rating == nil || *got.Rating != 4.5 {
				t.Errorf("rating = %v, want 4.5", got.Rating)
			}
			if got.WatchDuration != nil {
				t.Errorf("watch duration = %v, want nil for absent field", got.WatchDuration)
			}
		})
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 0; i < 5; i++ {
				ev := &Event{
					UserID:    "alice",
					MovieID:   100 + i,
					Type:      InteractionView,
					Timestamp: ts(i),
				}
				if err := st.Record(ctx, ev); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}

			events, err := st.List(ctx, "alice", ListOptions{})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(events) != 5 {
				t.Fatalf("got %d events, want 5", len(events))
			}
			for i := 1; i < len(events); i++ {
				if events[i-1].MovieID < events[i].MovieID {
					t.Fatalf("events not newest-first: %d before %d", events[i-1].MovieID, events[i].MovieID)
				}
			}
		})
	}
}

func TestStoreListLimitBeforeFilter(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			// Oldest three are views, newest two are rates.
			types := []InteractionType{
				InteractionView, InteractionView, InteractionView,
				InteractionRate, InteractionRate,
			}
			for i, typ := range types {
				ev := &Event{UserID: "alice", MovieID: 100 + i, Type: typ, Timestamp: ts(i)}
				if err := st.Record(ctx, ev); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}

			// The limit applies to the newest events before the type
			// filter: the two newest events are both rates, so a view
			// filter over limit 2 finds nothing.
			events, err := st.List(ctx, "alice", ListOptions{
				Limit: 2,
				Types: []InteractionType{InteractionView},
			})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(events) != 0 {
				t.Errorf("got %d events, want 0 (cap applies before filter)", len(events))
			}

			// With headroom the views come back.
			events, err = st.List(ctx, "alice", ListOptions{
				Limit: 5,
				Types: []InteractionType{InteractionView},
			})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(events) != 3 {
				t.Errorf("got %d events, want 3 views", len(events))
			}
		})
	}
}

func TestStoreListUnknownUser(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			events, err := st.List(context.Background(), "nobody", ListOptions{})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if events == nil || len(events) != 0 {
				t.Errorf("List(unknown) = %v, want empty non-nil slice", events)
			}
		})
	}
}

func TestStoreUsers(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, user := range []string{"carol", "alice", "bob"} {
				ev := &Event{UserID: user, MovieID: 1, Type: InteractionView, Timestamp: ts(0)}
				if err := st.Record(ctx, ev); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}

			users, err := st.Users(ctx)
			if err != nil {
				t.Fatalf("Users() error = %v", err)
			}
			sort.Strings(users)
			want := []string{"alice", "bob", "carol"}
			if len(users) != 3 {
				t.Fatalf("Users() = %v, want %v", users, want)
			}
			for i := range want {
				if users[i] != want[i] {
					t.Fatalf("Users() = %v, want %v", users, want)
				}
			}
		})
	}
}

func TestFSStoreUsersSkipsEmptyDirs(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	st, err := NewFSStore(root, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("fs store: %v", err)
	}

	ev := &Event{UserID: "alice", MovieID: 1, Type: InteractionView, Timestamp: ts(0)}
	if err := st.Record(ctx, ev); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	// A user directory with no event files, as left behind by a write that
	// failed after MkdirAll, is not a user.
	if err := os.MkdirAll(filepath.Join(root, "ghost"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	users, err := st.Users(ctx)
	if err != nil {
		t.Fatalf("Users() error = %v", err)
	}
	if len(users) != 1 || users[0] != "alice" {
		t.Errorf("Users() = %v, want [alice]", users)
	}
}

func TestStoreUsersEmpty(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			users, err := st.Users(context.Background())
			if err != nil {
				t.Fatalf("Users() error = %v", err)
			}
			if len(users) != 0 {
				t.Errorf("Users() = %v, want empty", users)
			}
		})
	}
}

func TestEventClamp(t *testing.T) {
	tests := []struct {
		name         string
		rating       *float64
		duration     *int
		wantRating   *float64
		wantDuration *int
	}{
		{"nil fields untouched", nil, nil, nil, nil},
		{"rating below range", floatPtr(0.2), nil, floatPtr(1.0), nil},
		{"rating above range", floatPtr(7.0), nil, floatPtr(5.0), nil},
		{"rating in range", floatPtr(3.5), nil, floatPtr(3.5), nil},
		{"negative duration", nil, intPtr(-10), nil, intPtr(0)},
		{"valid duration", nil, intPtr(3600), nil, intPtr(3600)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Event{Rating: tt.rating, WatchDuration: tt.duration}
			ev.Clamp()
			if (ev.Rating == nil) != (tt.wantRating == nil) {
				t.Fatalf("rating presence mismatch")
			}
			if ev.Rating != nil && *ev.Rating != *tt.wantRating {
				t.Errorf("rating = %v, want %v", *ev.Rating, *tt.wantRating)
			}
			if (ev.WatchDuration == nil) != (tt.wantDuration == nil) {
				t.Fatalf("duration presence mismatch")
			}
			if ev.WatchDuration != nil && *ev.WatchDuration != *tt.wantDuration {
				t.Errorf("duration = %v, want %v", *ev.WatchDuration, *tt.wantDuration)
			}
		})
	}
}

func TestEventKeyOrdering(t *testing.T) {
	early := eventKey(time.Unix(1000, 0))
	late := eventKey(time.Unix(2000, 0))
	if !(late > early) {
		t.Errorf("later key %q should sort after earlier key %q", late, early)
	}

	// Same-instant keys must still differ.
	now := time.Now()
	if eventKey(now) == eventKey(now) {
		t.Error("keys for the same instant should never collide")
	}
}

func TestFactory(t *testing.T) {
	logger := logging.NewTestLogger(io.Discard)

	st, err := New(BackendFS, t.TempDir(), logger)
	if err != nil {
		t.Fatalf("New(fs) error = %v", err)
	}
	if _, ok := st.(*FSStore); !ok {
		t.Errorf("New(fs) = %T, want *FSStore", st)
	}
	_ = st.Close()

	st, err = New(BackendBadger, t.TempDir(), logger)
	if err != nil {
		t.Fatalf("New(badger) error = %v", err)
	}
	if _, ok := st.(*BadgerStore); !ok {
		t.Errorf("New(badger) = %T, want *BadgerStore", st)
	}
	_ = st.Close()

	if _, err := New("redis", t.TempDir(), logger); err == nil {
		t.Error("New(redis) should fail for unknown backend")
	}
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }
