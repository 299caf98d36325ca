// SPDX-License-Identifier: MIT

// Package core defines the Edge and Graph types and the sentinel errors shared
// by the algorithm packages.
//
// Errors:
//
//	ErrNilGraph        - a nil *Graph was passed to an algorithm.
//	ErrNegativeWeight  - an edge weight is negative or NaN.
package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for graph validation.
var (
	// ErrNilGraph indicates that an algorithm received a nil graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNegativeWeight indicates that the graph holds an edge with a negative
	// (or NaN) weight. Min-cut correctness proofs assume non-negative weights.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is an immutable weighted undirected edge between vertices A and B.
// Edges are ordered by (Weight, A, B); see Compare.
type Edge struct {
	// Weight is the cost carried by the edge.
	Weight float64

	// A is the first endpoint.
	A int

	// B is the second endpoint.
	B int
}

// NewEdge returns the edge {w, a, b}.
func NewEdge(a, b int, w float64) Edge {
	return Edge{Weight: w, A: a, B: b}
}

// IsLoop reports whether the edge starts and ends at the same vertex.
func (e Edge) IsLoop() bool {
	return e.A == e.B
}

// Other returns the endpoint opposite to v. For a self-loop it returns v.
func (e Edge) Other(v int) int {
	if e.A == v {
		return e.B
	}
	return e.A
}

// Compare orders edges by Weight, then A, then B. It returns -1, 0 or +1.
// NaN weights sort before every number so the order stays total.
func (e Edge) Compare(o Edge) int {
	switch {
	case e.Weight < o.Weight, math.IsNaN(e.Weight) && !math.IsNaN(o.Weight):
		return -1
	case e.Weight > o.Weight, !math.IsNaN(e.Weight) && math.IsNaN(o.Weight):
		return 1
	}
	switch {
	case e.A < o.A:
		return -1
	case e.A > o.A:
		return 1
	case e.B < o.B:
		return -1
	case e.B > o.B:
		return 1
	}
	return 0
}

// String renders the edge as "{a, b}[w]".
func (e Edge) String() string {
	return fmt.Sprintf("{%d, %d}[%g]", e.A, e.B, e.Weight)
}

// Graph is a weighted undirected multigraph over vertices 0..N-1.
//
// inc[v] holds the incident edges of v sorted by Edge.Compare without
// duplicates. mu guards inc; the vertex count never changes after NewGraph.
type Graph struct {
	mu  sync.RWMutex
	inc [][]Edge
}

// NewGraph creates a graph with n vertices and inserts every edge through
// AddEdge. A negative n is treated as 0. Edges with out-of-range endpoints
// are dropped.
// Complexity: O(n + m·d) where d is the largest incident set.
func NewGraph(n int, edges ...Edge) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{inc: make([][]Edge, n)}
	for _, e := range edges {
		g.AddEdge(e)
	}

	return g
}
