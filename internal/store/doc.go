// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

// Package store implements the durable, append-only interaction event log.
//
// One logical stream of events exists per user. Two backends implement the
// same Store interface: a filesystem store with one JSON document per event
// (directory per user), and a BadgerDB store using prefixed keys. Event keys
// embed a zero-padded nanosecond timestamp plus a random suffix, so writes
// for the same user in the same second never collide and newest-first
// ordering is the descending lexicographic order of keys.
//
// Events are never mutated or deleted by this package.
package store
