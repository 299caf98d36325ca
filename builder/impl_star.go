// SPDX-License-Identifier: MIT

// Package builder: Star(n).

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with center at the first id of
// its block and n-1 leaves (n ≥ 2). Edge order: center → leaf, leaves ascending.
func Star(n int) Constructor {
	return func(b *Block, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := b.reserve(n)
		for leaf := 1; leaf < n; leaf++ {
			b.edge(center, center+leaf, cfg)
		}

		return nil
	}
}
