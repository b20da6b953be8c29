// SPDX-License-Identifier: MIT

// Package tsp builds visiting tours over a network.Distances matrix whose
// links may be missing.
//
//   - NearestNeighbor - greedy construction from the best-connected node with
//     a fixed fallback order: direct neighbour, then one already-visited
//     intermediate (two-hop), then the lowest-index unvisited node reached by
//     its shortest path. The tour is closed directly when possible, otherwise
//     by retracing the built path to the first node linked to the start.
//
//   - TwoOpt - first-improvement 2-opt that only accepts moves whose new arcs
//     are present links. NearestNeighbor applies it (WithTwoOpt) to tours made
//     only of direct legs.
//
//   - ValidateTour / TourCost - structural check and direct-link pricing of a
//     closed tour.
//
// Every leg records how it was produced (Direct, TwoHop, Fallback, Closing)
// and the nodes it passes through, so Result.Cost is always the length of a
// walk over real links. No optimality is claimed.
//
// Errors: ErrNoHamiltonianClosure when the heuristic cannot close a tour
// (in practice: the distance graph is disconnected), ErrStartOutOfRange,
// ErrDimensionMismatch, ErrMissingArc.
package tsp
