// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

// Package logging provides centralized zerolog-based logging for Reelmind.
//
// The package owns a single global logger configured once at startup and
// shared by every component. Components derive sub-loggers with a
// "component" field rather than constructing their own:
//
//	logger := logging.With().Str("component", "recommend").Logger()
//
// Request-scoped logging uses Ctx(ctx), which picks up the request ID
// placed in the context by the HTTP middleware.
package logging
