// SPDX-License-Identifier: MIT

package stoerwagner

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/matrix"
)

// Exact returns the weight of a global minimum cut of g. See ExactCut.
func Exact(g *core.Graph, opts ...Option) (float64, error) {
	r, err := ExactCut(g, opts...)
	if err != nil {
		return 0, err
	}

	return r.Weight, nil
}

// ExactCut returns a global minimum cut of g and the vertex set on one side.
//
// Stage 1 (Validate): non-nil graph, non-negative weights.
// Stage 2 (Prepare): weight matrix, active list 0..n-1, singleton member sets.
// Stage 3 (Execute): n-1 maximum-adjacency phases, keeping the lightest cut.
func ExactCut(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("stoerwagner: %w", ErrNilGraph)
	}
	if err := g.ValidateWeights(); err != nil {
		return Result{}, fmt.Errorf("stoerwagner: %w", err)
	}
	cfg := newConfig(opts...)

	n := g.VertexCount()
	if n < 2 {
		return Result{Weight: 0}, nil
	}

	w, err := matrix.FromGraph(g)
	if err != nil {
		return Result{}, fmt.Errorf("stoerwagner: %w", err)
	}
	rows := make([][]float64, n)
	for i := range rows {
		if rows[i], err = w.Row(i); err != nil {
			return Result{}, fmt.Errorf("stoerwagner: %w", err)
		}
	}

	st := &state{
		rows:    rows,
		active:  make([]int, n),
		members: make([][]int, n),
		attach:  make([]float64, n),
		added:   make([]bool, n),
	}
	for v := 0; v < n; v++ {
		st.active[v] = v
		st.members[v] = []int{v}
	}

	best := math.Inf(1)
	var bestMembers []int
	phases := 0
	for len(st.active) > 1 {
		s, t, cut := st.phase()
		phases++
		if cut < best {
			best = cut
			bestMembers = slices.Clone(st.members[t])
		}
		st.merge(s, t)
	}

	side := make([]bool, n)
	for _, v := range bestMembers {
		side[v] = true
	}
	cfg.logger.Debug("stoerwagner: exact",
		zap.Int("vertices", n),
		zap.Int("phases", phases),
		zap.Int("side_size", len(bestMembers)),
		zap.Float64("cut", best),
	)

	return Result{Weight: best, Side: side, Phases: phases}, nil
}

// state is the mutable working set of one run.
type state struct {
	rows    [][]float64 // rows of the symmetric weight matrix
	active  []int       // active super-vertices in list order
	members [][]int     // original vertices merged into each super-vertex
	attach  []float64   // attachment weight to the growing set
	added   []bool      // picked in the current phase
}

// phase runs one maximum-adjacency ordering and returns the last two vertices
// added together with the cut of the phase.
func (st *state) phase() (s, t int, cut float64) {
	for _, v := range st.active {
		st.attach[v] = 0
		st.added[v] = false
	}

	s, t = -1, -1
	last := len(st.active) - 1
	for k := 0; k <= last; k++ {
		sel := -1
		for _, v := range st.active {
			// Strict > keeps the first maximal vertex in list order.
			if !st.added[v] && (sel == -1 || st.attach[v] > st.attach[sel]) {
				sel = v
			}
		}
		st.added[sel] = true
		s, t = t, sel
		if k == last {
			cut = st.attach[sel]
			break
		}
		row := st.rows[sel]
		for _, v := range st.active {
			if !st.added[v] {
				st.attach[v] += row[v]
			}
		}
	}

	return s, t, cut
}

// merge folds t into s and removes t from the active list.
func (st *state) merge(s, t int) {
	rs, rt := st.rows[s], st.rows[t]
	for _, k := range st.active {
		if k == s || k == t {
			continue
		}
		rs[k] += rt[k]
		st.rows[k][s] += st.rows[k][t]
	}
	st.members[s] = append(st.members[s], st.members[t]...)
	st.members[t] = nil

	i := slices.Index(st.active, t)
	st.active = slices.Delete(st.active, i, i+1)
}
