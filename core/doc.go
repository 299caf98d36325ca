// SPDX-License-Identifier: MIT

// Package core provides the weighted undirected multigraph shared by every
// min-cut algorithm in this module.
//
// The Graph G = (V,E) has a fixed vertex set V = {0, …, N-1} chosen at
// construction time. Each vertex owns an ordered, deduplicated set of incident
// edges:
//
//   - Edge identity is the full triple (Weight, A, B); two edges with an equal
//     triple collapse into one entry (ordered-set semantics).
//   - Edges between the same pair with different weights are kept side by side
//     (multigraph support). Endpoints are not normalized, so (w,0,1) and (w,1,0)
//     are also two distinct parallel edges.
//   - Every inserted edge appears in the incident sets of both endpoints;
//     a self-loop appears once because both endpoints own the same set.
//   - AddEdge silently discards edges whose endpoints fall outside [0, N).
//
// Weight accounting:
//
//	TotalEdgeWeight() = Σ_v Σ_{e ∈ inc(v), e not a loop} e.Weight / 2
//
// Self-loops never cross a cut, so they are excluded from every weight sum
// (TotalEdgeWeight, CutWeight). This keeps the "divide by two" convention
// exact for all remaining edges.
//
// Core Methods:
//
//	NewGraph(n int, edges ...Edge) *Graph   // O(n + m log d)
//	AddEdge(e Edge)                          // O(d) ordered insert, no-op on bad endpoints
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(m), unique edges
//	TotalEdgeWeight() float64                // O(m)
//	Neighbors(v int) EdgeView                // O(1), read-only restartable view
//	Vertices() []int                         // O(n), ascending ids
//	Edges() []Edge                           // O(m log m), each edge once, ordered by Compare
//	CutWeight(side []bool) float64           // O(m)
//	Clone() *Graph                           // O(n + m)
//
// Concurrency:
//
//	A single sync.RWMutex guards the incident sets. Algorithms only read, so a
//	graph can be shared by parallel trials; AddEdge takes the write lock.
package core
