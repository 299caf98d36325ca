// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/matrix"
)

func TestFromGraph_NilGraph(t *testing.T) {
	_, err := matrix.FromGraph(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

// TestFromGraph_SumsParallelSkipsLoops checks the weight matrix of a small multigraph.
func TestFromGraph_SumsParallelSkipsLoops(t *testing.T) {
	g := core.NewGraph(3,
		core.NewEdge(0, 1, 2),
		core.NewEdge(1, 0, 3), // reversed identity, parallel
		core.NewEdge(1, 2, 4),
		core.NewEdge(2, 2, 8), // loop
	)
	w, err := matrix.FromGraph(g)
	require.NoError(t, err)
	require.True(t, w.IsSymmetric())

	cases := []struct {
		i, j int
		want float64
	}{
		{0, 1, 5}, {1, 0, 5}, {1, 2, 4}, {2, 1, 4},
		{0, 2, 0}, {2, 2, 0}, {0, 0, 0},
	}
	for _, tc := range cases {
		v, err := w.At(tc.i, tc.j)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, "W[%d][%d]", tc.i, tc.j)
	}
}

func TestFromGraph_Empty(t *testing.T) {
	w, err := matrix.FromGraph(core.NewGraph(0))
	require.NoError(t, err)
	assert.Zero(t, w.Rows())
	assert.Equal(t, "", w.String())
}
