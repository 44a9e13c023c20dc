// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/reelmind/reelmind/internal/catalog"
	"github.com/reelmind/reelmind/internal/logging"
	"github.com/reelmind/reelmind/internal/store"
)

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// testCatalog writes a three-movie catalog and its similarity matrix to a
// temp dir and loads both. Matrix rows are ordered Alpha, Beta, Gamma.
func testCatalog(t *testing.T) (*catalog.Catalog, *catalog.SimilarityMatrix) {
	t.Helper()
	dir := t.TempDir()

	catalogJSON := `[
		{"movie_id": 101, "title": "Alpha"},
		{"movie_id": 102, "title": "Beta"},
		{"movie_id": 103, "title": "Gamma"}
	]`
	matrixJSON := `[
		[1.0, 0.9, 0.4],
		[0.9, 1.0, 0.2],
		[0.4, 0.2, 1.0]
	]`

	catalogPath := filepath.Join(dir, "movies.json")
	matrixPath := filepath.Join(dir, "similarity.json")
	if err := os.WriteFile(catalogPath, []byte(catalogJSON), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if err := os.WriteFile(matrixPath, []byte(matrixJSON), 0o644); err != nil {
		t.Fatalf("write matrix: %v", err)
	}

	c, err := catalog.Load(catalogPath)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	m, err := catalog.LoadSimilarity(matrixPath, c.Len())
	if err != nil {
		t.Fatalf("load similarity: %v", err)
	}
	return c, m
}

func testStore(t *testing.T) *store.FSStore {
	t.Helper()
	st, err := store.NewFSStore(t.TempDir(), logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}
