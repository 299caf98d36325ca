// SPDX-License-Identifier: MIT

package karger_test

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/karger"
)

// ExampleEstimateCut finds the bridge of two triangles.
func ExampleEstimateCut() {
	g := core.NewGraph(6,
		core.NewEdge(0, 1, 1), core.NewEdge(1, 2, 1), core.NewEdge(2, 0, 1),
		core.NewEdge(3, 4, 1), core.NewEdge(4, 5, 1), core.NewEdge(5, 3, 1),
		core.NewEdge(2, 3, 1),
	)
	r, err := karger.EstimateCut(g, karger.WithSeed(7))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cut:", r.Weight)
	fmt.Println("side:", r.Side)
	// Output:
	// cut: 1
	// side: [true true true false false false]
}
