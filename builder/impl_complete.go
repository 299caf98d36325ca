// SPDX-License-Identifier: MIT

// Package builder: Complete(n), CompleteBipartite(n1, n2) and Dumbbell(k).

package builder

import "fmt"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodDumbbell          = "Dumbbell"
	minCompleteNodes        = 1
	minPartitionNodes       = 1
	minDumbbellClique       = 2
)

// clique emits every pair {base+i, base+j}, i < j, in lexicographic order.
func clique(b *Block, base, n int, cfg builderConfig) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.edge(base+i, base+j, cfg)
		}
	}
}

// Complete returns a Constructor that builds K_n (n ≥ 1).
// Edge order: pairs (i, j), i < j, lexicographic.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(b *Block, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		clique(b, b.reserve(n), n, cfg)

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}: left side
// takes the first n1 ids of the block, right side the next n2.
// Edge order: left ascending, then right ascending.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *Block, cfg builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: sizes %d and %d must be ≥ %d: %w",
				methodCompleteBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}
		left := b.reserve(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				b.edge(left+i, right+j, cfg)
			}
		}

		return nil
	}
}

// Dumbbell returns a Constructor that builds two copies of K_k joined by a
// single bridge between the last vertex of the first clique and the first
// vertex of the second (k ≥ 2). With unit weights its min cut is the bridge.
// Edge order: first clique, second clique, bridge.
func Dumbbell(k int) Constructor {
	return func(b *Block, cfg builderConfig) error {
		if k < minDumbbellClique {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodDumbbell, k, minDumbbellClique, ErrTooFewVertices)
		}
		base := b.reserve(2 * k)
		clique(b, base, k, cfg)
		clique(b, base+k, k, cfg)
		b.edge(base+k-1, base+k, cfg)

		return nil
	}
}
