// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

// Package recommend implements the hybrid scoring and user-preference
// aggregation engine.
//
// Raw interaction events become per-user preference vectors (preference.go),
// preference vectors become a user-similarity space (matrix.go), content and
// collaborative rankers score candidates independently (content.go,
// collaborative.go), and the hybrid merger blends the two ranked lists under
// a tunable weight pair (hybrid.go). The Engine (engine.go) orchestrates the
// pipeline and owns the version-gated model cache: every recorded
// interaction bumps a monotonic version, and a request rebuilds the model
// only when its cached version is stale, so results are always consistent
// with the latest writes.
//
// All per-request paths degrade to empty results; the only operation that
// returns a caller error is requesting recommendations with neither a movie
// title nor a user ID.
package recommend
