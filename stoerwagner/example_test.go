// SPDX-License-Identifier: MIT

package stoerwagner_test

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/stoerwagner"
)

// ExampleExact computes the weighted 5-cycle whose two lightest edges are not adjacent.
func ExampleExact() {
	g := core.NewGraph(5,
		core.NewEdge(0, 1, 2),
		core.NewEdge(1, 2, 12),
		core.NewEdge(2, 3, 3),
		core.NewEdge(3, 4, 8),
		core.NewEdge(4, 0, 3),
	)
	w, err := stoerwagner.Exact(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("min cut:", w)
	// Output:
	// min cut: 5
}
