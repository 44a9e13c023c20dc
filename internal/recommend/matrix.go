// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import (
	"context"
	"math"
	"sort"

	"github.com/reelmind/reelmind/internal/store"
)

// Model is an immutable snapshot of aggregated user preferences and the
// user-to-user similarity derived from them. Each rebuild produces a fresh
// Model; readers of a published snapshot never see partial state.
type Model struct {
	// Version is the interaction-log version this snapshot was built from.
	Version int64

	// Users is the ordered user list; row i of Similarity belongs to Users[i].
	Users []string

	// Movies is the ordered movie-ID list spanning every user's preferences.
	Movies []int

	// Prefs holds each user's aggregated preference vector.
	Prefs map[string]PreferenceVector

	// Similarity is the dense user-by-user cosine similarity. Nil when the
	// snapshot has fewer than two users; similarity is meaningless without a
	// second user to compare against.
	Similarity [][]float64

	userIndex map[string]int
}

// UserIndex returns the row index of a user in the similarity matrix.
func (m *Model) UserIndex(userID string) (int, bool) {
	i, ok := m.userIndex[userID]
	return i, ok
}

// Preferences returns the aggregated preference vector of a user. The
// returned map is shared; callers must not modify it.
func (m *Model) Preferences(userID string) (PreferenceVector, bool) {
	p, ok := m.Prefs[userID]
	return p, ok
}

// BuildModel aggregates every user's recent history from the store and
// computes the user-similarity matrix. Users and Movies are sorted so that
// rebuilds from identical data produce identical snapshots.
func BuildModel(ctx context.Context, st store.Store, agg *Aggregator, maxEvents int, version int64) (*Model, error) {
	users, err := st.Users(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(users)

	m := &Model{
		Version:   version,
		Users:     users,
		Prefs:     make(map[string]PreferenceVector, len(users)),
		userIndex: make(map[string]int, len(users)),
	}

	movieSet := make(map[int]struct{})
	for i, userID := range users {
		m.userIndex[userID] = i

		events, err := st.List(ctx, userID, store.ListOptions{Limit: maxEvents})
		if err != nil {
			return nil, err
		}
		prefs := agg.Aggregate(events)
		m.Prefs[userID] = prefs
		for movieID := range prefs {
			movieSet[movieID] = struct{}{}
		}
	}

	m.Movies = make([]int, 0, len(movieSet))
	for movieID := range movieSet {
		m.Movies = append(m.Movies, movieID)
	}
	sort.Ints(m.Movies)

	if len(users) >= 2 {
		m.Similarity = buildSimilarity(m)
	}
	return m, nil
}

// buildSimilarity densifies each preference vector over the model's movie
// axis and computes pairwise cosine similarity.
func buildSimilarity(m *Model) [][]float64 {
	n := len(m.Users)
	rows := make([][]float64, n)
	norms := make([]float64, n)
	for i, userID := range m.Users {
		row := make([]float64, len(m.Movies))
		prefs := m.Prefs[userID]
		for j, movieID := range m.Movies {
			row[j] = prefs[movieID]
		}
		rows[i] = row
		norms[i] = vectorNorm(row)
	}

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		sim[i][i] = 1.0
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := cosine(rows[i], rows[j], norms[i], norms[j])
			sim[i][j] = s
			sim[j][i] = s
		}
	}
	return sim
}

// cosine computes the cosine similarity of two dense vectors with
// precomputed norms. A zero-norm vector has similarity 0 to everything.
func cosine(a, b []float64, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	var dot float64
	for k := range a {
		dot += a[k] * b[k]
	}
	return dot / (normA * normB)
}

func vectorNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
