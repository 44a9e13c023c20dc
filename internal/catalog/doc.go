// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

// Package catalog loads the immutable recommendation inputs: the movie
// catalog and the precomputed movie-to-movie content-similarity matrix.
//
// Both are produced offline by the training pipeline and loaded once at
// startup. Row/column N of the similarity matrix corresponds to catalog
// position N; that alignment is validated at load time and a mismatch is
// fatal, because the service cannot operate in a degraded mode without its
// immutable inputs.
package catalog
