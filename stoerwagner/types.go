// SPDX-License-Identifier: MIT

package stoerwagner

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/mincut/core"
)

var (
	// ErrNilGraph is returned when Exact receives a nil graph.
	ErrNilGraph = core.ErrNilGraph

	// ErrNegativeWeight is returned when the graph carries a negative or NaN weight.
	ErrNegativeWeight = core.ErrNegativeWeight
)

// Result describes the minimum cut.
type Result struct {
	// Weight is the total weight of edges crossing the cut.
	Weight float64

	// Side marks the original vertices merged into t at the minimizing phase.
	// Nil when n < 2.
	Side []bool

	// Phases is the number of phases executed (n-1 for n ≥ 2).
	Phases int
}

// Option customizes a run.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger attaches a logger for the per-run debug summary. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("stoerwagner: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
