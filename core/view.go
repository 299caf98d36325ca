// SPDX-License-Identifier: MIT

// File: view.go
// Role: read-only views over incident sets.
// Determinism:
//   - Views iterate in Edge.Compare order.
// Concurrency:
//   - A view captures the incident set under the read lock. AddEdge never
//     writes into a captured backing array, so a view is a stable snapshot.

package core

// EdgeView is a read-only, restartable view over the incident edges of one
// vertex. The zero value is an empty view.
type EdgeView struct {
	edges []Edge
}

// Neighbors returns a view over the incident set of v. For v outside [0, N)
// the view is empty.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) EdgeView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.inc) {
		return EdgeView{}
	}

	return EdgeView{edges: g.inc[v]}
}

// Len returns the number of edges in the view.
func (ev EdgeView) Len() int {
	return len(ev.edges)
}

// At returns the i-th edge in Edge.Compare order. It panics if i is out of
// range, like slice indexing.
func (ev EdgeView) At(i int) Edge {
	return ev.edges[i]
}

// Each calls fn for every edge in order until fn returns false.
// Each may be called any number of times.
func (ev EdgeView) Each(fn func(Edge) bool) {
	for _, e := range ev.edges {
		if !fn(e) {
			return
		}
	}
}

// Slice returns a copy of the edges in the view.
func (ev EdgeView) Slice() []Edge {
	out := make([]Edge, len(ev.edges))
	copy(out, ev.edges)

	return out
}
