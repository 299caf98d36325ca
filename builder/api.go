// SPDX-License-Identifier: MIT

// Package builder: public entry point.
//
// One orchestrator, BuildGraph(bopts, cons...), resolves the configuration,
// runs the constructors in order on a shared edge buffer and only then creates
// the core.Graph, because the vertex count must be known up front.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Constructor emits one block of vertices and its edges into b.
// Constructors MUST validate parameters early and return sentinel errors, and
// emit edges in a stable, documented order.
type Constructor func(b *Block, cfg builderConfig) error

// Block is the edge buffer shared by the constructors of one BuildGraph call.
type Block struct {
	n       int
	edges   []core.Edge
	emitted int // edges emitted by the current constructor
}

// reserve allocates k fresh vertex ids and returns the first one.
func (b *Block) reserve(k int) int {
	base := b.n
	b.n += k

	return base
}

// edge appends {u, v} with the next weight from cfg.
func (b *Block) edge(u, v int, cfg builderConfig) {
	b.edges = append(b.edges, core.NewEdge(u, v, cfg.nextWeight(b.emitted)))
	b.emitted++
}

// nextWeight returns the weight of the i-th edge of a constructor.
func (c builderConfig) nextWeight(i int) float64 {
	if len(c.weights) > 0 {
		return c.weights[i%len(c.weights)]
	}

	return c.weightFn(c.rng)
}

// BuildGraph resolves bopts and applies every constructor in order, each on
// its own block of vertex ids. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(m·d) inserts.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	b := &Block{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		b.emitted = 0
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return core.NewGraph(b.n, b.edges...), nil
}

// MustBuild is BuildGraph for fixtures known to be valid; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
