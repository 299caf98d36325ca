// SPDX-License-Identifier: MIT

package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut"
	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/karger"
)

type fixture struct {
	name string
	g    *core.Graph
	want float64
}

func fixtures() []fixture {
	w := func(ws ...float64) []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithWeights(ws...)}
	}

	return []fixture{
		{"4-cycle", builder.MustBuild(nil, builder.Cycle(4)), 2},
		{"5-cycle", builder.MustBuild(nil, builder.Cycle(5)), 2},
		{"100-cycle", builder.MustBuild(nil, builder.Cycle(100)), 2},
		{"weighted 5-cycle", builder.MustBuild(w(2, 12, 3, 8, 3), builder.Cycle(5)), 5},
		{"path P5", builder.MustBuild(nil, builder.Path(5)), 1},
		{"weighted path", builder.MustBuild(w(3, 5, 2, 4), builder.Path(5)), 2},
		{"star K1,5", builder.MustBuild(nil, builder.Star(6)), 1},
		{"K5", builder.MustBuild(nil, builder.Complete(5)), 4},
		{"dumbbell", builder.MustBuild(nil, builder.Dumbbell(3)), 1},
		{"K3,3", builder.MustBuild(nil, builder.CompleteBipartite(3, 3)), 3},
	}
}

// TestAlgorithmsAgreeOnFixtures runs both algorithms on every fixture.
func TestAlgorithmsAgreeOnFixtures(t *testing.T) {
	for _, f := range fixtures() {
		t.Run(f.name, func(t *testing.T) {
			opts := []karger.Option{}
			if f.g.VertexCount() > 20 {
				// every ring contraction ends in a min cut; keep C100 quick
				opts = append(opts, karger.WithTrials(100))
			}
			est, err := mincut.EstimateMinCut(f.g, opts...)
			require.NoError(t, err)
			exact, err := mincut.ExactMinCut(f.g)
			require.NoError(t, err)

			assert.Equal(t, f.want, exact)
			assert.Equal(t, exact, est)
		})
	}
}

// TestTinyGraphsEqualTotalWeight covers N ≤ 2.
func TestTinyGraphsEqualTotalWeight(t *testing.T) {
	for _, g := range []*core.Graph{
		core.NewGraph(0),
		core.NewGraph(1),
		core.NewGraph(1, core.NewEdge(0, 0, 3)),
		core.NewGraph(2),
		core.NewGraph(2, core.NewEdge(0, 1, 4)),
		core.NewGraph(2, core.NewEdge(0, 1, 4), core.NewEdge(0, 1, 1), core.NewEdge(1, 1, 2)),
	} {
		total := mincut.TotalEdgeWeight(g)
		est, err := mincut.EstimateMinCut(g)
		require.NoError(t, err)
		exact, err := mincut.ExactMinCut(g)
		require.NoError(t, err)
		assert.Equal(t, total, est)
		assert.Equal(t, total, exact)
	}
	assert.Zero(t, mincut.TotalEdgeWeight(nil))
}

// TestSelfLoopsNeverCount adds heavy loops to a 4-cycle.
func TestSelfLoopsNeverCount(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(4))
	for v := 0; v < 4; v++ {
		g.AddEdge(core.NewEdge(v, v, 1000))
	}
	assert.Equal(t, 4.0, mincut.TotalEdgeWeight(g))

	est, err := mincut.EstimateMinCut(g)
	require.NoError(t, err)
	exact, err := mincut.ExactMinCut(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, est)
	assert.Equal(t, 2.0, exact)
}

// TestParallelEdgesSum strengthens one side of a 4-cycle with parallel edges.
func TestParallelEdgesSum(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(4))
	g.AddEdge(core.NewEdge(0, 1, 5))
	g.AddEdge(core.NewEdge(1, 0, 1))
	g.AddEdge(core.NewEdge(0, 1, 1)) // duplicate of the cycle edge, collapses
	assert.Equal(t, 10.0, mincut.TotalEdgeWeight(g))

	exact, err := mincut.ExactMinCut(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, exact)

	est, err := mincut.EstimateMinCut(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, est)
}

// TestInputUnchanged runs both algorithms and compares the graph afterwards.
func TestInputUnchanged(t *testing.T) {
	g := builder.MustBuild(nil, builder.Dumbbell(4))
	g.AddEdge(core.NewEdge(2, 2, 3))
	edges, total := g.Edges(), g.TotalEdgeWeight()

	_, err := mincut.EstimateMinCut(g, karger.WithWorkers(2))
	require.NoError(t, err)
	_, err = mincut.ExactMinCut(g)
	require.NoError(t, err)

	assert.Equal(t, edges, g.Edges())
	assert.Equal(t, total, g.TotalEdgeWeight())
}

// TestRandomSparseAgreement cross-checks the two algorithms on unit-weight graphs.
func TestRandomSparseAgreement(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.35))
		exact, err := mincut.ExactMinCut(g)
		require.NoError(t, err)
		est, err := mincut.EstimateMinCut(g, karger.WithSeed(seed), karger.WithTrials(3000), karger.WithWorkers(4))
		require.NoError(t, err)
		assert.Equal(t, exact, est, "seed=%d", seed)
	}
}

func TestErrorsPropagate(t *testing.T) {
	_, err := mincut.EstimateMinCut(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
	_, err = mincut.ExactMinCut(core.NewGraph(2, core.NewEdge(0, 1, -1)))
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}
