// SPDX-License-Identifier: MIT

// Package core: Graph method implementations.
//
// Incident sets are sorted slices kept ordered by Edge.Compare, so insertion
// is a binary search plus a shift and iteration is deterministic without any
// post-sorting. All readers take mu.RLock; AddEdge takes mu.Lock.

package core

import (
	"math"
	"slices"
)

// AddEdge inserts e into the incident sets of both endpoints.
// An edge already present (same Weight, A and B) is not duplicated; a self-loop
// is stored once. If either endpoint is outside [0, N) the call is a no-op.
// Complexity: O(d) for the ordered insert, d = incident set size.
func (g *Graph) AddEdge(e Edge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.inc)
	if e.A < 0 || e.B < 0 || e.A >= n || e.B >= n {
		return
	}
	g.inc[e.A] = insertOrdered(g.inc[e.A], e)
	if !e.IsLoop() {
		g.inc[e.B] = insertOrdered(g.inc[e.B], e)
	}
}

// insertOrdered places e into the sorted set s unless an equal edge exists.
// The result never shares its backing array with s, so EdgeViews handed out
// earlier keep observing the set as it was.
func insertOrdered(s []Edge, e Edge) []Edge {
	i, found := slices.BinarySearchFunc(s, e, Edge.Compare)
	if found {
		return s
	}
	out := make([]Edge, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, e)

	return append(out, s[i:]...)
}

// VertexCount returns N.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.inc)
}

// EdgeCount returns the number of unique edges, self-loops included.
// Complexity: O(n + m).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var loops, ends int
	for _, set := range g.inc {
		for _, e := range set {
			if e.IsLoop() {
				loops++
			} else {
				ends++
			}
		}
	}

	return loops + ends/2
}

// TotalEdgeWeight sums the weights of all incident sets and divides by two.
// Self-loops are skipped: they are stored once rather than twice and never
// contribute to a cut.
// Complexity: O(n + m).
func (g *Graph) TotalEdgeWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total float64
	for _, set := range g.inc {
		for _, e := range set {
			if e.IsLoop() {
				continue
			}
			total += e.Weight
		}
	}

	return total / 2
}

// Vertices returns the vertex ids 0..N-1 in ascending order.
// Complexity: O(n).
func (g *Graph) Vertices() []int {
	n := g.VertexCount()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Edges returns every edge exactly once, ordered by Edge.Compare.
// Both endpoint views are merged through the ordered-set identity, so an
// undirected edge seen from A and from B is emitted a single time.
// Complexity: O(m log m).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0)
	for v, set := range g.inc {
		for _, e := range set {
			// Emit each non-loop edge from its A side only; loops live in one set.
			if e.A == v {
				out = append(out, e)
			}
		}
	}
	slices.SortFunc(out, Edge.Compare)

	return out
}

// CutWeight returns the total weight of non-loop edges whose endpoints lie on
// different sides of the bipartition side (side[v] true vs false). Vertices
// beyond len(side) are treated as false.
// Complexity: O(n + m).
func (g *Graph) CutWeight(side []bool) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	at := func(v int) bool { return v < len(side) && side[v] }
	var total float64
	for v, set := range g.inc {
		for _, e := range set {
			if e.A != v || e.IsLoop() {
				continue
			}
			if at(e.A) != at(e.B) {
				total += e.Weight
			}
		}
	}

	return total
}

// MinWeight returns the smallest edge weight, or +Inf for a graph without
// edges. A NaN weight is reported as NaN.
// Complexity: O(n + m).
func (g *Graph) MinWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	lowest := math.Inf(1)
	for _, set := range g.inc {
		if len(set) == 0 {
			continue
		}
		// Sets are ordered by weight, NaN first.
		if w := set[0].Weight; math.IsNaN(w) {
			return w
		} else if w < lowest {
			lowest = w
		}
	}

	return lowest
}

// ValidateWeights returns ErrNegativeWeight if any edge weight is negative or
// NaN. Algorithms call it before running.
func (g *Graph) ValidateWeights() error {
	if w := g.MinWeight(); math.IsNaN(w) || w < 0 {
		return ErrNegativeWeight
	}

	return nil
}

// Clone returns an independent deep copy of g.
// Complexity: O(n + m).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{inc: make([][]Edge, len(g.inc))}
	for v, set := range g.inc {
		clone.inc[v] = slices.Clone(set)
	}

	return clone
}
