// Package mincut computes the global minimum cut of weighted undirected
// multigraphs: the lightest set of edges whose removal splits the vertices
// into two non-empty groups.
//
// What is in the box?
//
//	A thread-safe graph container plus two independent algorithms over it:
//		• Randomized contraction (Karger): fast, exact with high probability
//		• Maximum-adjacency phases (Stoer–Wagner): deterministic, always exact
//
// Under the hood, everything is organized under small subpackages:
//
//	core/         Edge and Graph: ordered, deduplicated incident sets, RWMutex
//	unionfind/    disjoint sets with path halving and union by size
//	karger/       contraction trials, per-trial seeded RNG, optional worker pool
//	stoerwagner/  dense-matrix Stoer–Wagner with cut side reconstruction
//	matrix/       dense row-major weight matrix built from a core.Graph
//	builder/      deterministic fixtures (cycles, paths, stars, cliques...)
//	loader/       "N then (src dst weight)*" text format
//	config/, logger/, cmd/mincut: the command-line front end
//
// Quick example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	g := core.NewGraph(4,
//		core.NewEdge(0, 1, 1), core.NewEdge(1, 2, 1),
//		core.NewEdge(2, 3, 1), core.NewEdge(3, 0, 1))
//	exact, _ := mincut.ExactMinCut(g)        // 2
//	approx, _ := mincut.EstimateMinCut(g)    // 2
//
// Conventions shared by every package:
//
//   - Self-loops are stored but never counted: not in TotalEdgeWeight, not in any cut.
//   - Parallel edges (same endpoints, different weight or orientation) add up.
//   - Negative or NaN weights are rejected with core.ErrNegativeWeight.
//   - Algorithms never mutate the input graph.
//
//	go get github.com/katalvlaran/mincut
package mincut
