// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// Movie is a single catalog entry. The catalog position of a movie is the
// row/column index into the content-similarity matrix.
type Movie struct {
	// ID is the external movie identifier.
	ID int `json:"movie_id"`

	// Title is the movie title; content lookups match it exactly.
	Title string `json:"title"`
}

// Catalog is the ordered, immutable movie list with lookup indexes.
type Catalog struct {
	movies  []Movie
	byTitle map[string]int // exact title -> catalog position
	byID    map[int]int    // movie id -> catalog position
}

// Load reads a JSON catalog file: an ordered array of {movie_id, title}
// records. Duplicate titles keep the first occurrence, matching exact-match
// lookup semantics.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var movies []Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}

	c := &Catalog{
		movies:  movies,
		byTitle: make(map[string]int, len(movies)),
		byID:    make(map[int]int, len(movies)),
	}
	for i, m := range movies {
		if _, ok := c.byTitle[m.Title]; !ok {
			c.byTitle[m.Title] = i
		}
		if _, ok := c.byID[m.ID]; !ok {
			c.byID[m.ID] = i
		}
	}
	return c, nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// At returns the movie at the given catalog position.
func (c *Catalog) At(index int) (Movie, bool) {
	if index < 0 || index >= len(c.movies) {
		return Movie{}, false
	}
	return c.movies[index], true
}

// IndexByTitle returns the catalog position of a movie by exact title match.
func (c *Catalog) IndexByTitle(title string) (int, bool) {
	i, ok := c.byTitle[title]
	return i, ok
}

// ByID returns the movie with the given external identifier.
func (c *Catalog) ByID(id int) (Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Search returns movies whose title contains the query, case-insensitive,
// in catalog order, capped at limit. An empty query matches nothing.
func (c *Catalog) Search(query string, limit int) []Movie {
	if query == "" || limit <= 0 {
		return []Movie{}
	}
	query = strings.ToLower(query)

	matches := make([]Movie, 0, limit)
	for _, m := range c.movies {
		if strings.Contains(strings.ToLower(m.Title), query) {
			matches = append(matches, m)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// Page returns one page of the catalog in order. Pages are 1-based.
func (c *Catalog) Page(page, limit int) []Movie {
	if page < 1 || limit <= 0 {
		return []Movie{}
	}
	start := (page - 1) * limit
	if start >= len(c.movies) {
		return []Movie{}
	}
	end := start + limit
	if end > len(c.movies) {
		end = len(c.movies)
	}
	out := make([]Movie, end-start)
	copy(out, c.movies[start:end])
	return out
}
