// SPDX-License-Identifier: MIT

// Command mincut loads a graph file and prints its minimum cut computed by
// both the randomized and the exact algorithm.
//
//	mincut [-seed N] [-workers N] [-trials N] FILE
//
// Flags override the MINCUT_* environment (see package config).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mincut/config"
	"github.com/katalvlaran/mincut/karger"
	"github.com/katalvlaran/mincut/loader"
	"github.com/katalvlaran/mincut/logger"
	"github.com/katalvlaran/mincut/stoerwagner"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log, closer, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer closer.Close()
	defer log.Sync() //nolint:errcheck

	if err := run(os.Args[1:], cfg, log, os.Stdout); err != nil {
		log.Error("mincut failed", zap.Error(err))
		return 1
	}

	return 0
}

// run parses args over cfg, loads the graph and prints both cuts to out.
func run(args []string, cfg config.Config, log *zap.Logger, out io.Writer) error {
	fs := flag.NewFlagSet("mincut", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "base seed of the randomized estimator")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines running contraction trials")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of contraction trials (0 = max(50, n²))")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: mincut [-seed N] [-workers N] [-trials N] FILE")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("mincut: exactly one input file expected")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g := loader.Load(fs.Arg(0), loader.WithLogger(log))
	if g.VertexCount() == 0 {
		log.Warn("empty graph", zap.String("path", fs.Arg(0)))
	}

	var (
		est   karger.Result
		exact stoerwagner.Result
		eg    errgroup.Group
	)
	eg.Go(func() error {
		var err error
		est, err = karger.EstimateCut(g, append(cfg.KargerOptions(), karger.WithLogger(log))...)
		return errors.Wrap(err, "karger")
	})
	eg.Go(func() error {
		var err error
		exact, err = stoerwagner.ExactCut(g, stoerwagner.WithLogger(log))
		return errors.Wrap(err, "stoer-wagner")
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(out, "vertices: %d\n", g.VertexCount())
	fmt.Fprintf(out, "edges: %d\n", g.EdgeCount())
	fmt.Fprintf(out, "total weight: %g\n", g.TotalEdgeWeight())
	fmt.Fprintf(out, "karger: %g (trials %d, seed %d)\n", est.Weight, est.Trials, cfg.Seed)
	fmt.Fprintf(out, "stoer-wagner: %g\n", exact.Weight)

	return nil
}
