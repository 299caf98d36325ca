// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
)

// TestTopologies checks vertex/edge counts and unit total weight per constructor.
func TestTopologies(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"Cycle5", builder.Cycle(5), 5, 5},
		{"Path5", builder.Path(5), 5, 4},
		{"Star6", builder.Star(6), 6, 5},
		{"K5", builder.Complete(5), 5, 10},
		{"K1", builder.Complete(1), 1, 0},
		{"K3,3", builder.CompleteBipartite(3, 3), 6, 9},
		{"Dumbbell4", builder.Dumbbell(4), 8, 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, float64(tc.edges), g.TotalEdgeWeight())
		})
	}
}

// TestCycle_EdgeOrder closes the ring with n-1 → 0.
func TestCycle_EdgeOrder(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithWeights(1, 2, 3, 4)}, builder.Cycle(4))
	require.Equal(t, []core.Edge{
		core.NewEdge(0, 1, 1),
		core.NewEdge(1, 2, 2),
		core.NewEdge(2, 3, 3),
		core.NewEdge(3, 0, 4),
	}, g.Edges())
}

// TestWithWeights_Cycles repeats the sequence when it is shorter than the edge list.
func TestWithWeights_Cycles(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithWeights(2, 5)}, builder.Path(4))
	assert.Equal(t, 9.0, g.TotalEdgeWeight())
}

// TestBuildGraph_DisjointBlocks places consecutive constructors on fresh ids.
func TestBuildGraph_DisjointBlocks(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 1, g.Neighbors(0).Len())
	assert.Equal(t, 2, g.Neighbors(2).Len())
	assert.Equal(t, core.NewEdge(4, 2, 1), g.Neighbors(2).At(1))
}

func TestDumbbell_Bridge(t *testing.T) {
	g := builder.MustBuild(nil, builder.Dumbbell(3))
	side := []bool{true, true, true}
	assert.Equal(t, 1.0, g.CutWeight(side))
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"Cycle2", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path1", builder.Path(1), builder.ErrTooFewVertices},
		{"Star1", builder.Star(1), builder.ErrTooFewVertices},
		{"K0", builder.Complete(0), builder.ErrTooFewVertices},
		{"K0,3", builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		{"Dumbbell1", builder.Dumbbell(1), builder.ErrTooFewVertices},
		{"SparseNoRNG", builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"SparseBadP", builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRandomSparse_Deterministic yields the same graph for the same seed.
func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeightFn(1, 9))}
	}
	a := builder.MustBuild(opts(), builder.RandomSparse(30, 0.2))
	b := builder.MustBuild(opts(), builder.RandomSparse(30, 0.2))
	require.Equal(t, a.Edges(), b.Edges())
	require.NotZero(t, a.EdgeCount())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	full := builder.MustBuild(nil, builder.RandomSparse(6, 1))
	assert.Equal(t, 15, full.EdgeCount())
	empty := builder.MustBuild(nil, builder.RandomSparse(6, 0))
	assert.Zero(t, empty.EdgeCount())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithWeights() })
	assert.Panics(t, func() { builder.WithWeights(1, -1) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(3, 2) })
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, 4.0, builder.ConstantWeightFn(4)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(nil))
	assert.Equal(t, 3.0, builder.IntWeightFn(3, 8)(nil))

	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(2, 3)}, builder.Path(10))
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 2.0)
		assert.Less(t, e.Weight, 3.0)
	}
}
