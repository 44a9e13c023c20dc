// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package store

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Backend names accepted by New.
const (
	BackendFS     = "fs"
	BackendBadger = "badger"
)

// New creates a Store for the configured backend.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(backend, path string, logger zerolog.Logger) (Store, error) {
	switch backend {
	case BackendFS, "":
		return NewFSStore(path, logger)
	case BackendBadger:
		return NewBadgerStore(path, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want %q or %q)", backend, BackendFS, BackendBadger)
	}
}
