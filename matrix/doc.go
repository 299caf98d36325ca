// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major float64 matrix used as the
// working state of the Stoer–Wagner algorithm, together with an adapter that
// turns a *core.Graph into its symmetric weight matrix.
//
// Dense:
//
//   - Row-major buffer with the explicit index formula i*cols + j.
//   - At/Set/AddAt validate indices and return ErrOutOfRange instead of panicking.
//   - Row(i) exposes a no-copy view of one row for hot loops; writes through it
//     are visible in the matrix.
//
// Weight matrix:
//
//	FromGraph(g) → W, W[i][j] = Σ weight of all parallel edges {i,j}, i ≠ j
//	                 W[i][i] = 0 (self-loops never cross a cut)
//
// Complexity quicksheet:
//
//	NewDense: O(r*c) zero-init; At/Set/AddAt/Row: O(1); Clone: O(r*c);
//	FromGraph: O(n² + m).
package matrix
