// SPDX-License-Identifier: MIT

// Package karger - per-trial RNG streams.
//
// A *rand.Rand is not goroutine-safe, so every trial gets its own stream. The
// stream of trial i depends only on (seed, i), which keeps results independent
// of how trials are scheduled over workers.

package karger

import "golang.org/x/exp/rand"

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// trialRNG returns the stream owned by trial i.
func trialRNG(seed uint64, i int) *rand.Rand {
	return rngFromSeed(deriveSeed(seed, uint64(i)))
}
