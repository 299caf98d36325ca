// SPDX-License-Identifier: MIT

// Package builder produces deterministic core.Graph fixtures for tests,
// examples and benchmarks of the min-cut algorithms.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(bopts, cons...): resolves options once, runs each
//     Constructor on its own block of fresh vertex ids, returns the graph.
//   - Topologies (Constructor factories):
//     – Cycle(n), Path(n), Star(n), Complete(n), CompleteBipartite(n1, n2),
//     Dumbbell(k), RandomSparse(n, p).
//   - Edge-weight policies (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – IntWeightFn:       integer weights in [lo,hi].
//     – WithWeights(seq...): the i-th emitted edge gets seq[i mod len(seq)].
//   - Options: WithSeed, WithRand, WithWeightFn, WithWeights.
//
// Vertex numbering:
//
// Constructors passed to one BuildGraph call form a disjoint union: the first
// constructor owns ids 0..k₁-1, the second k₁..k₁+k₂-1 and so on. Within a
// block, ids follow the order documented on each constructor.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with context.
package builder
