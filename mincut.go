// SPDX-License-Identifier: MIT

package mincut

import (
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/karger"
	"github.com/katalvlaran/mincut/stoerwagner"
)

// TotalEdgeWeight returns the sum of all non-loop edge weights of g, or 0 for
// a nil graph.
func TotalEdgeWeight(g *core.Graph) float64 {
	if g == nil {
		return 0
	}

	return g.TotalEdgeWeight()
}

// EstimateMinCut runs the randomized contraction estimator.
// See karger.Estimate for options and guarantees.
func EstimateMinCut(g *core.Graph, opts ...karger.Option) (float64, error) {
	return karger.Estimate(g, opts...)
}

// ExactMinCut runs Stoer–Wagner. See stoerwagner.Exact.
func ExactMinCut(g *core.Graph, opts ...stoerwagner.Option) (float64, error) {
	return stoerwagner.Exact(g, opts...)
}
