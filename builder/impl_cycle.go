// SPDX-License-Identifier: MIT

// Package builder: Cycle(n) and Path(n).
//
// Edge order: i → i+1 for i = 0..n-2, then (Cycle only) n-1 → 0.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds the n-vertex simple cycle C_n (n ≥ 3).
// Its min cut is twice the smallest pair of edges that splits the ring.
func Cycle(n int) Constructor {
	return func(b *Block, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := b.reserve(n)
		for i := 0; i < n; i++ {
			b.edge(base+i, base+(i+1)%n, cfg)
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(b *Block, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := b.reserve(n)
		for i := 0; i+1 < n; i++ {
			b.edge(base+i, base+i+1, cfg)
		}

		return nil
	}
}
