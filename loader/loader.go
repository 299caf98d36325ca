// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/mincut/core"
)

var (
	// ErrMissingVertexCount indicates an input without any token.
	ErrMissingVertexCount = errors.New("loader: missing vertex count")

	// ErrBadVertexCount indicates a first token that is not a non-negative integer.
	ErrBadVertexCount = errors.New("loader: bad vertex count")

	// ErrMalformedTriple indicates a triple that does not parse or is cut short.
	ErrMalformedTriple = errors.New("loader: malformed triple")
)

// Option customizes Load.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger receiving load diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("loader: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// Read parses a graph from r. On ErrMalformedTriple the graph holds every
// triple read before the bad one; on header errors it is empty.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return core.NewGraph(0), errors.Wrap(err, "loader: read vertex count")
		}

		return core.NewGraph(0), ErrMissingVertexCount
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return core.NewGraph(0), errors.Wrapf(ErrBadVertexCount, "token %q", sc.Text())
	}

	g := core.NewGraph(n)
	var fields [3]string
	for triple := 0; ; triple++ {
		got := 0
		for got < len(fields) && sc.Scan() {
			fields[got] = sc.Text()
			got++
		}
		if err := sc.Err(); err != nil {
			return g, errors.Wrapf(err, "loader: triple %d", triple)
		}
		if got == 0 {
			return g, nil
		}
		if got < len(fields) {
			return g, errors.Wrapf(ErrMalformedTriple, "triple %d: truncated after %d tokens", triple, got)
		}
		e, err := parseTriple(fields)
		if err != nil {
			return g, errors.Wrapf(ErrMalformedTriple, "triple %d: %v", triple, err)
		}
		g.AddEdge(e)
	}
}

func parseTriple(f [3]string) (core.Edge, error) {
	a, err := strconv.Atoi(f[0])
	if err != nil {
		return core.Edge{}, err
	}
	b, err := strconv.Atoi(f[1])
	if err != nil {
		return core.Edge{}, err
	}
	w, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return core.Edge{}, err
	}

	return core.NewEdge(a, b, w), nil
}

// Load reads the graph stored at path. It never returns an error: failures are
// logged and produce an empty (unreadable file, bad header) or partial
// (malformed triple) graph.
func Load(path string, opts ...Option) *core.Graph {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With(zap.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		log.Error("loader: could not be opened", zap.Error(err))
		return core.NewGraph(0)
	}
	defer f.Close()

	g, err := Read(f)
	switch {
	case errors.Is(err, ErrMalformedTriple):
		log.Warn("loader: stopped at malformed input", zap.Error(err),
			zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))
	case err != nil:
		log.Error("loader: no graph loaded", zap.Error(err))
	default:
		log.Debug("loader: graph loaded",
			zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))
	}

	return g
}
