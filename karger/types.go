// SPDX-License-Identifier: MIT

package karger

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/mincut/core"
)

// Sentinel errors are shared with core so errors.Is matches either name.
var (
	// ErrNilGraph is returned when Estimate receives a nil graph.
	ErrNilGraph = core.ErrNilGraph

	// ErrNegativeWeight is returned when the graph carries a negative or NaN weight.
	ErrNegativeWeight = core.ErrNegativeWeight
)

// MinTrials is the lower bound on the number of trials run by Estimate.
const MinTrials = 50

// defaultSeed is used when no seed (or seed 0) is configured.
const defaultSeed uint64 = 1

// Result describes the best cut found.
type Result struct {
	// Weight is the total weight of edges crossing the cut.
	Weight float64

	// Side marks the vertices on the same side as vertex 0. Nil for an empty graph.
	Side []bool

	// Trials is the number of contraction trials executed; 0 when the answer
	// was computed in closed form.
	Trials int

	// Trial is the index of the winning trial, -1 when no trial ran.
	Trial int
}

// Option customizes an estimate.
type Option func(*config)

type config struct {
	seed    uint64
	trials  int
	workers int
	logger  *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		seed:    defaultSeed,
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed sets the base seed every trial stream is derived from.
// Seed 0 selects the default seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.seed = seed
	}
}

// WithTrials overrides the max(50, n²) trial count. Panics if k < 1.
func WithTrials(k int) Option {
	if k < 1 {
		panic("karger: WithTrials(k<1)")
	}

	return func(c *config) { c.trials = k }
}

// WithWorkers runs trials on w goroutines. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("karger: WithWorkers(w<1)")
	}

	return func(c *config) { c.workers = w }
}

// WithLogger attaches a logger for the per-estimate debug summary. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("karger: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// DefaultTrials returns max(50, n²).
func DefaultTrials(n int) int {
	return max(MinTrials, n*n)
}
