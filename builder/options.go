// SPDX-License-Identifier: MIT

// Package builder: functional options.
//
// Option constructors VALIDATE and PANIC on meaningless inputs. Constructors
// themselves never panic.

package builder

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// BuilderOption customizes a BuildGraph call by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors and weights.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand (deterministic).
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithWeights assigns seq[i mod len(seq)] to the i-th edge emitted by each
// constructor, in the constructor's documented edge order. Panics on an empty
// sequence or a negative/NaN entry.
func WithWeights(seq ...float64) BuilderOption {
	if len(seq) == 0 {
		panic("builder: WithWeights()")
	}
	for _, w := range seq {
		if w < 0 || math.IsNaN(w) {
			panic(fmt.Sprintf("builder: WithWeights: invalid weight %g", w))
		}
	}
	cp := append([]float64(nil), seq...)

	return func(c *builderConfig) { c.weights = cp }
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
