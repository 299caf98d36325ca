// SPDX-License-Identifier: MIT

package karger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/internal/concurrent"
	"github.com/katalvlaran/mincut/unionfind"
)

// batchesPerWorker controls how finely trials are split across workers.
const batchesPerWorker = 4

// contraction is the read-only input shared by every trial of one estimate.
type contraction struct {
	n     int
	edges []core.Edge // unique, loop-free, ordered by core.Edge.Compare
}

// outcome is the result of one trial or the best of a batch.
type outcome struct {
	weight float64
	trial  int
	side   []bool
}

// better reports whether o beats other: smaller weight, then lower trial index.
func (o outcome) better(other outcome) bool {
	if o.weight != other.weight {
		return o.weight < other.weight
	}

	return o.trial < other.trial
}

// prepare snapshots the edge list of g without self-loops.
func prepare(g *core.Graph) contraction {
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if !e.IsLoop() {
			edges = append(edges, e)
		}
	}

	return contraction{n: g.VertexCount(), edges: edges}
}

// components unions every edge once and returns the resulting partition.
func (c contraction) components() *unionfind.UnionFind {
	uf := unionfind.New(c.n)
	for _, e := range c.edges {
		uf.Union(e.A, e.B)
	}

	return uf
}

// trial contracts a connected graph down to two super-vertices.
func (c contraction) trial(rng *rand.Rand) (float64, *unionfind.UnionFind) {
	uf := unionfind.New(c.n)
	m := len(c.edges)
	for uf.Count() > 2 {
		e := c.edges[rng.Intn(m)]
		// A pick inside one super-vertex is discarded and retried.
		uf.Union(e.A, e.B)
	}

	return c.cutWeight(uf), uf
}

// cutWeight sums listed edges whose endpoints lie in different super-vertices.
func (c contraction) cutWeight(uf *unionfind.UnionFind) float64 {
	var cut float64
	for _, e := range c.edges {
		if !uf.Connected(e.A, e.B) {
			cut += e.Weight
		}
	}

	return cut
}

// sideOf marks the vertices sharing a super-vertex with vertex 0.
func sideOf(uf *unionfind.UnionFind) []bool {
	side := make([]bool, uf.Len())
	if len(side) == 0 {
		return side
	}
	root := uf.Find(0)
	for v := range side {
		side[v] = uf.Find(v) == root
	}

	return side
}

// closedForm answers graphs with at most two vertices.
func closedForm(g *core.Graph) Result {
	n := g.VertexCount()
	var side []bool
	if n > 0 {
		side = make([]bool, n)
		side[0] = true
	}

	return Result{Weight: g.TotalEdgeWeight(), Side: side, Trial: -1}
}

// RunOnce performs a single contraction trial on g using rng. A nil rng uses
// the stream of the default seed; a nil graph yields the zero Result.
// Weights are not validated.
func RunOnce(g *core.Graph, rng *rand.Rand) Result {
	if g == nil {
		return Result{Trial: -1}
	}
	if g.VertexCount() <= 2 {
		return closedForm(g)
	}
	if rng == nil {
		rng = rngFromSeed(defaultSeed)
	}
	c := prepare(g)
	if comp := c.components(); comp.Count() > 1 {
		return Result{Weight: 0, Side: sideOf(comp), Trial: -1}
	}
	w, uf := c.trial(rng)

	return Result{Weight: w, Side: sideOf(uf), Trials: 1, Trial: 0}
}

// Estimate returns the smallest cut weight found over the configured number
// of trials. See EstimateCut.
func Estimate(g *core.Graph, opts ...Option) (float64, error) {
	r, err := EstimateCut(g, opts...)
	if err != nil {
		return 0, err
	}

	return r.Weight, nil
}

// EstimateCut runs max(50, n²) trials (or WithTrials) and returns the best cut
// together with the side of vertex 0.
//
// Stage 1 (Validate): non-nil graph, non-negative weights.
// Stage 2 (Shortcut): n ≤ 2 and disconnected graphs are answered directly.
// Stage 3 (Execute): run trials sequentially or on the worker pool.
// Stage 4 (Reduce): minimum weight, lowest trial index on ties.
func EstimateCut(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("karger: %w", ErrNilGraph)
	}
	if err := g.ValidateWeights(); err != nil {
		return Result{}, fmt.Errorf("karger: %w", err)
	}
	cfg := newConfig(opts...)
	start := time.Now()

	n := g.VertexCount()
	if n <= 2 {
		r := closedForm(g)
		cfg.logger.Debug("karger: closed form",
			zap.Int("vertices", n), zap.Float64("cut", r.Weight))

		return r, nil
	}

	c := prepare(g)
	if comp := c.components(); comp.Count() > 1 {
		cfg.logger.Debug("karger: disconnected graph",
			zap.Int("vertices", n), zap.Int("components", comp.Count()))

		return Result{Weight: 0, Side: sideOf(comp), Trial: -1}, nil
	}

	trials := cfg.trials
	if trials == 0 {
		trials = DefaultTrials(n)
	}

	var best outcome
	if cfg.workers > 1 && trials > 1 {
		best = c.runParallel(cfg.seed, trials, cfg.workers)
	} else {
		best = c.runRange(cfg.seed, 0, trials)
	}

	cfg.logger.Debug("karger: estimate",
		zap.Int("vertices", n),
		zap.Int("edges", len(c.edges)),
		zap.Int("trials", trials),
		zap.Int("workers", cfg.workers),
		zap.Uint64("seed", cfg.seed),
		zap.Int("best_trial", best.trial),
		zap.Float64("cut", best.weight),
		zap.Duration("elapsed", time.Since(start)),
	)

	return Result{Weight: best.weight, Side: best.side, Trials: trials, Trial: best.trial}, nil
}

// runRange executes trials [lo, hi) and returns the best one.
func (c contraction) runRange(seed uint64, lo, hi int) outcome {
	best := outcome{trial: -1}
	var bestUF *unionfind.UnionFind
	for i := lo; i < hi; i++ {
		w, uf := c.trial(trialRNG(seed, i))
		cand := outcome{weight: w, trial: i}
		if bestUF == nil || cand.better(best) {
			best, bestUF = cand, uf
		}
	}
	if bestUF != nil {
		best.side = sideOf(bestUF)
	}

	return best
}

// trialRange is one batch of trial indices.
type trialRange struct {
	lo, hi int
}

// runParallel splits trials into contiguous batches and reduces batch winners.
func (c contraction) runParallel(seed uint64, trials, workers int) outcome {
	size := max(1, trials/(workers*batchesPerWorker))
	jobs := make([]trialRange, 0, trials/size+1)
	for lo := 0; lo < trials; lo += size {
		jobs = append(jobs, trialRange{lo: lo, hi: min(trials, lo+size)})
	}

	results := concurrent.Run(workers, jobs, func(r trialRange) outcome {
		return c.runRange(seed, r.lo, r.hi)
	})

	best := results[0]
	for _, r := range results[1:] {
		if r.better(best) {
			best = r
		}
	}

	return best
}
