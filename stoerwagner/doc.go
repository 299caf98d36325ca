// SPDX-License-Identifier: MIT

// Package stoerwagner computes the exact global minimum cut of a weighted
// undirected multigraph with the Stoer–Wagner maximum-adjacency algorithm.
//
// Working state is a dense symmetric weight matrix (matrix.FromGraph) in
// which parallel edges are already summed and self-loops dropped, plus the
// ordered list of active super-vertices.
//
// Phase (repeated while more than one super-vertex is active):
//
//  1. Zero the attachment weight of every active vertex.
//  2. Repeatedly add the not-yet-added active vertex with the largest
//     attachment (ties: first in active-list order). After every pick but
//     the last, add the picked vertex's matrix row into the attachments.
//  3. Let s and t be the second-to-last and last vertices added. The cut of
//     the phase is t's attachment at the moment it was added: the weight of
//     the cut separating t's members from everything else.
//  4. Merge t into s: w[s][k] += w[t][k] and w[k][s] += w[k][t], then drop t
//     from the active list.
//
// The answer is the minimum cut of the phase over all n-1 phases.
//
// Complexity: O(n³) time with the linear scan selection, O(n²) space.
//
// Degenerate input: n < 2 → 0.
//
// Errors:
//
//	ErrNilGraph       - graph is nil.
//	ErrNegativeWeight - some edge weight is negative or NaN.
//
// The input graph is never mutated.
package stoerwagner
