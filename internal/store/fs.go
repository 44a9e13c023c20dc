// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/reelmind/reelmind/internal/metrics"
)

// FSStore persists one JSON document per event under a directory per user.
// This mirrors the original file-per-event layout and needs no external
// services; durability relies on single-file-write atomicity.
type FSStore struct {
	root   string
	logger zerolog.Logger
}

// NewFSStore creates a filesystem-backed store rooted at the given
// directory, creating it if needed.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFSStore(root string, logger zerolog.Logger) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create store root: %w", err)
	}
	return &FSStore{
		root:   root,
		logger: logger.With().Str("component", "store").Str("backend", "fs").Logger(),
	}, nil
}

// Record writes the event as a new file in the user's directory.
func (s *FSStore) Record(ctx context.Context, ev *Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	userDir := filepath.Join(s.root, ev.UserID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		metrics.StoreWriteErrors.WithLabelValues("fs").Inc()
		return fmt.Errorf("create user dir: %w", err)
	}

	data, err := json.Marshal(ev)
	if err != nil {
		metrics.StoreWriteErrors.WithLabelValues("fs").Inc()
		return fmt.Errorf("marshal event: %w", err)
	}

	path := filepath.Join(userDir, eventKey(ev.Time())+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		metrics.StoreWriteErrors.WithLabelValues("fs").Inc()
		return fmt.Errorf("write event file: %w", err)
	}

	metrics.StoreWritesTotal.WithLabelValues("fs", string(ev.Type)).Inc()
	return nil
}

// List returns the user's events newest-first. A missing user directory is
// not an error. Unreadable or corrupt event files are skipped and logged,
// never fatal to the listing.
func (s *FSStore) List(ctx context.Context, userID string, opts ListOptions) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	userDir := filepath.Join(s.root, userID)
	entries, err := os.ReadDir(userDir)
	if os.IsNotExist(err) {
		return []Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}

	// Keys embed zero-padded nanosecond timestamps, so descending name
	// order is newest-first.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if len(names) > limit {
		names = names[:limit]
	}

	events := make([]Event, 0, len(names))
	for _, name := range names {
		var ev Event
		data, err := os.ReadFile(filepath.Join(userDir, name))
		if err != nil {
			metrics.StoreReadErrors.WithLabelValues("fs").Inc()
			s.logger.Warn().Err(err).Str("file", name).Msg("skipping unreadable event file")
			continue
		}
		if err := json.Unmarshal(data, &ev); err != nil {
			metrics.StoreReadErrors.WithLabelValues("fs").Inc()
			s.logger.Warn().Err(err).Str("file", name).Msg("skipping corrupt event file")
			continue
		}
		events = append(events, ev)
	}

	return filterTypes(events, typeSet(opts.Types)), nil
}

// Users returns every user directory with at least one event file.
func (s *FSStore) Users(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read store root: %w", err)
	}

	users := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !s.hasEvents(filepath.Join(s.root, entry.Name())) {
			continue
		}
		users = append(users, entry.Name())
	}
	return users, nil
}

// hasEvents reports whether the user directory holds at least one event
// file. A directory left behind by a failed first write counts as no user.
func (s *FSStore) hasEvents(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			return true
		}
	}
	return false
}

// Close is a no-op for the filesystem backend.
func (s *FSStore) Close() error {
	return nil
}

// Ensure interface compliance.
var _ Store = (*FSStore)(nil)
