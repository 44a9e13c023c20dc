// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

// Package metrics provides Prometheus instrumentation for Reelmind.
//
// Collectors are registered with the default registry via promauto and
// exposed on /metrics by the HTTP layer.
package metrics
