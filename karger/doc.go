// SPDX-License-Identifier: MIT

// Package karger estimates the global minimum cut of a weighted undirected
// multigraph by repeated random edge contraction.
//
// One trial:
//
//  1. Collect the unique edges of the graph (self-loops removed, they can
//     never join two super-vertices).
//  2. Start with every vertex as its own super-vertex (unionfind.New(n)).
//  3. While more than two super-vertices remain, pick an edge uniformly at
//     random from the full list. If its endpoints already share a
//     super-vertex, pick again; otherwise merge the two super-vertices.
//  4. The cut of the trial is the total weight of listed edges whose
//     endpoints ended up in different super-vertices.
//
// A single trial finds a minimum cut with probability at least 2/(n(n-1)),
// so Estimate repeats it max(50, n²) times and keeps the smallest cut.
// The answer is an upper bound on the true minimum cut that is exact with
// high probability.
//
// Degenerate inputs are answered in closed form without any trial:
//
//	n ≤ 2          → TotalEdgeWeight (every non-loop edge crosses the cut)
//	disconnected   → 0 (component of vertex 0 against the rest)
//
// Randomness & determinism:
//
//   - Each trial owns its *rand.Rand (golang.org/x/exp/rand), derived from the
//     base seed (WithSeed, default 1) and the trial index by a SplitMix64 mix.
//   - The winning trial is the one with the smallest weight, ties resolved by
//     the lowest trial index, so results are identical for any WithWorkers.
//
// Complexity per trial: O(m·α(n)) expected contraction picks on top of the
// retries spent on edges already inside one super-vertex, plus O(m) for the
// final cut sum. Estimate: O(T·trial), T = max(50, n²).
//
// Errors:
//
//	ErrNilGraph       - graph is nil.
//	ErrNegativeWeight - some edge weight is negative or NaN.
//
// The input graph is never mutated.
package karger
