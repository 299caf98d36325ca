// SPDX-License-Identifier: MIT

// Package builder: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng      = nil (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn
//   - weights  = nil (no per-edge sequence)

package builder

import (
	"golang.org/x/exp/rand"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges when no sequence is set.
	weightFn WeightFn
	// Per-edge weight sequence; overrides weightFn when non-empty.
	weights []float64
}

// newBuilderConfig applies all options in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
