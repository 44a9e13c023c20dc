// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// SimilarityMatrix is the precomputed movie-to-movie content similarity,
// row/column aligned with catalog positions. It is read-only after load.
type SimilarityMatrix struct {
	rows [][]float64
}

// LoadSimilarity reads a JSON similarity matrix (array of equal-length
// float rows) and validates that it is square with the given dimension.
func LoadSimilarity(path string, dimension int) (*SimilarityMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read similarity matrix: %w", err)
	}

	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse similarity matrix: %w", err)
	}

	if len(rows) != dimension {
		return nil, fmt.Errorf("similarity matrix has %d rows, catalog has %d movies", len(rows), dimension)
	}
	for i, row := range rows {
		if len(row) != dimension {
			return nil, fmt.Errorf("similarity matrix row %d has %d columns, want %d", i, len(row), dimension)
		}
	}

	return &SimilarityMatrix{rows: rows}, nil
}

// Dimension returns the matrix dimension.
func (m *SimilarityMatrix) Dimension() int {
	return len(m.rows)
}

// Row returns the similarity row for a catalog position. The returned slice
// is shared, not copied; callers must not modify it.
func (m *SimilarityMatrix) Row(index int) ([]float64, bool) {
	if index < 0 || index >= len(m.rows) {
		return nil, false
	}
	return m.rows[index], true
}
