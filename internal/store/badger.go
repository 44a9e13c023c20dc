// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/reelmind/reelmind/internal/metrics"
)

// Key prefixes for BadgerDB storage.
const (
	eventKeyPrefix = "evt:"
	userKeyPrefix  = "usr:"
)

// BadgerStore persists events in BadgerDB. Events live under
// "evt:<user>:<key>" and a marker key "usr:<user>" enables cheap user
// enumeration without scanning event values.
type BadgerStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

// NewBadgerStore opens (or creates) a BadgerDB-backed store at the given
// path.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBadgerStore(path string, logger zerolog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger's own logger is too chatty; we log at the store level

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}

	return &BadgerStore{
		db:     db,
		logger: logger.With().Str("component", "store").Str("backend", "badger").Logger(),
	}, nil
}

// Record persists the event and the user marker in one transaction.
func (s *BadgerStore) Record(ctx context.Context, ev *Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(ev)
	if err != nil {
		metrics.StoreWriteErrors.WithLabelValues("badger").Inc()
		return fmt.Errorf("marshal event: %w", err)
	}

	key := []byte(eventKeyPrefix + ev.UserID + ":" + eventKey(ev.Time()))
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set event: %w", err)
		}
		if err := txn.Set([]byte(userKeyPrefix+ev.UserID), nil); err != nil {
			return fmt.Errorf("set user marker: %w", err)
		}
		return nil
	})
	if err != nil {
		metrics.StoreWriteErrors.WithLabelValues("badger").Inc()
		return err
	}

	metrics.StoreWritesTotal.WithLabelValues("badger", string(ev.Type)).Inc()
	return nil
}

// List returns the user's events newest-first via reverse prefix iteration.
// Corrupt values are skipped, not fatal.
func (s *BadgerStore) List(ctx context.Context, userID string, opts ListOptions) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	events := make([]Event, 0, limit)
	prefix := []byte(eventKeyPrefix + userID + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Reverse = true
		iterOpts.Prefix = prefix
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		// Reverse iteration starts past the largest key with this prefix.
		seek := append(append([]byte{}, prefix...), 0xff)
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(events) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var ev Event
				if err := json.Unmarshal(val, &ev); err != nil {
					metrics.StoreReadErrors.WithLabelValues("badger").Inc()
					s.logger.Warn().Err(err).
						Str("key", string(it.Item().Key())).
						Msg("skipping corrupt event record")
					return nil
				}
				events = append(events, ev)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return filterTypes(events, typeSet(opts.Types)), nil
}

// Users enumerates the user marker keys.
func (s *BadgerStore) Users(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var users []string
	prefix := []byte(userKeyPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.PrefetchValues = false
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			users = append(users, strings.TrimPrefix(string(it.Item().Key()), userKeyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	if users == nil {
		users = []string{}
	}
	return users, nil
}

// Close closes the underlying BadgerDB.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Ensure interface compliance.
var _ Store = (*BadgerStore)(nil)
