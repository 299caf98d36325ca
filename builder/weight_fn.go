// SPDX-License-Identifier: MIT

// Package builder: edge-weight distributions.

package builder

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn or sequence is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. A nil rng yields DefaultEdgeWeight unless
// the interval is a single point.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}
		if rng == nil {
			return DefaultEdgeWeight
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn returns a WeightFn drawing integers uniformly in [lo, hi].
// Integer weights keep cut sums exact, which makes them the usual choice for
// cross-checking algorithms. Panics if lo < 0 or hi < lo. A nil rng yields lo.
func IntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}
