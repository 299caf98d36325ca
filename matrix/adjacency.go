// SPDX-License-Identifier: MIT

// Package matrix provides the graph adapter producing a symmetric weight matrix.
package matrix

import (
	"github.com/katalvlaran/mincut/core"
)

// FromGraph builds the n×n symmetric weight matrix of g.
// Parallel edges are summed; self-loops are skipped so the diagonal stays zero.
//
// Stage 1 (Validate): g must be non-nil.
// Stage 2 (Prepare): allocate an n×n zero matrix.
// Stage 3 (Execute): accumulate every unique edge in both triangles.
//
// Complexity: O(n² + m log m).
func FromGraph(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	w, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		w.data[e.A*n+e.B] += e.Weight
		w.data[e.B*n+e.A] += e.Weight
	}

	return w, nil
}
