// SPDX-License-Identifier: MIT

// Package unionfind provides a disjoint-set forest over the dense integer
// universe {0, …, n-1}.
//
// It is the super-vertex bookkeeping of the contraction algorithm in package
// karger: every original vertex starts as a singleton, each contraction is a
// Union, and two vertices belong to the same super-vertex iff Find returns the
// same representative.
//
// Strategy:
//
//   - Find walks to the root with path halving (each visited node is pointed
//     at its grandparent), the iterative form of path compression.
//   - Union attaches the smaller tree under the larger one (union by size);
//     on equal sizes the first argument's root wins.
//
// Together these bound every operation by O(α(n)) amortized, α being the
// inverse Ackermann function.
//
// Complexity:
//
//	New(n)            O(n) time, O(n) space
//	Find / Union      O(α(n)) amortized
//	Count / Len       O(1)
//	Members(x)        O(n·α(n))
//
// A UnionFind is not safe for concurrent use; each contraction trial owns its
// own instance.
package unionfind
