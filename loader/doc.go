// SPDX-License-Identifier: MIT

// Package loader reads graphs from the plain-text triple format:
//
//	N
//	src dst weight
//	src dst weight ...
//
// The first whitespace-separated token is the vertex count N, followed by any
// number of (src, dst, weight) triples with integer endpoints and a float
// weight. Line breaks carry no meaning; one line may hold several triples.
// Endpoints outside [0, N) are dropped by core.Graph.AddEdge.
//
// Two entry points:
//
//   - Read(r) is strict: it returns ErrMissingVertexCount, ErrBadVertexCount
//     or ErrMalformedTriple (with the partial graph read so far).
//   - Load(path) never fails: an unreadable file or bad header yields an empty
//     graph, a malformed triple stops parsing and keeps the partial graph.
//     Every such event is reported on the configured zap logger, so callers
//     check VertexCount() == 0 for the empty case.
package loader
