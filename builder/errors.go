// SPDX-License-Identifier: MIT

// Package builder: sentinel errors.
//
// Callers MUST use errors.Is(err, ErrX) to branch on semantics; constructors
// attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum
// accepted by the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was run without
// an RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
