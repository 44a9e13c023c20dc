// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package recommend

import "fmt"

// Config contains the tunable parameters of the recommendation engine.
type Config struct {
	// Weights is the hybrid blend weight pair. The weights need not sum
	// to 1; they are always applied together as declared.
	Weights Weights `json:"weights" koanf:"weights"`

	// Neighbors is the number of most-similar users consulted by the
	// collaborative ranker.
	// Default: 10.
	Neighbors int `json:"neighbors" koanf:"neighbors"`

	// DefaultN is the number of recommendations returned when the caller
	// does not specify one.
	// Default: 5.
	DefaultN int `json:"default_n" koanf:"default_n"`

	// MaxN is the maximum allowed result count per request.
	// Default: 50.
	MaxN int `json:"max_n" koanf:"max_n"`

	// MaxEventsPerUser caps how much of a user's history the model build
	// aggregates.
	// Default: 1000.
	MaxEventsPerUser int `json:"max_events_per_user" koanf:"max_events_per_user"`
}

// Weights is the hybrid blend weight pair.
type Weights struct {
	// Content is the weight applied to content-similarity scores.
	// Default: 0.7.
	Content float64 `json:"content" koanf:"content"`

	// Collaborative is the weight applied to collaborative scores.
	// Default: 0.3.
	Collaborative float64 `json:"collaborative" koanf:"collaborative"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Content:       0.7,
			Collaborative: 0.3,
		},
		Neighbors:        10,
		DefaultN:         5,
		MaxN:             50,
		MaxEventsPerUser: 1000,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Content < 0 {
		return fmt.Errorf("weights.content must be non-negative, got %f", c.Weights.Content)
	}
	if c.Weights.Collaborative < 0 {
		return fmt.Errorf("weights.collaborative must be non-negative, got %f", c.Weights.Collaborative)
	}
	if c.Neighbors < 1 {
		return fmt.Errorf("neighbors must be positive, got %d", c.Neighbors)
	}
	if c.DefaultN < 1 {
		return fmt.Errorf("default_n must be positive, got %d", c.DefaultN)
	}
	if c.MaxN < c.DefaultN {
		return fmt.Errorf("max_n must be >= default_n, got %d < %d", c.MaxN, c.DefaultN)
	}
	if c.MaxEventsPerUser < 1 {
		return fmt.Errorf("max_events_per_user must be positive, got %d", c.MaxEventsPerUser)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
