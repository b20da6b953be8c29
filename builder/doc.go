// SPDX-License-Identifier: MIT

// Package builder generates synthetic network cases and stores them as
// plain-text case files.
//
// Generate(size, opts...) produces a *network.Case that always passes
// network.Validate:
//
//   - Connectivity first: a ring i → i+1 (mod n) plus cross links every
//     max(1, n/8) nodes to the opposite side of the ring (i + n/2 mod n).
//   - Extra links: every remaining pair with probability
//     min(1, extraDegree/(n-1)), so the expected degree stays flat as n grows.
//   - Distances uniform in [1,100]; capacities on both directions of every
//     linked pair, drawn independently in [100,1000].
//   - Service centers: 3 for n ≤ 15, else n/5 capped at 100, on a jittered
//     grid over [0,1000]² with coordinates rounded to 0.1. IDs are letters
//     while there are at most 26 centers, decimal numbers beyond.
//
// Randomness is explicit: WithSeed or WithRand must be given, and the same
// seed always yields the same case. There is no package-level RNG.
//
// Save and Load move cases through an afero.Fs (OS, in-memory, read-only
// overlays) using the network text codec. Load validates what it reads.
//
// Errors: ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed. Option
// constructors panic on meaningless values (WithRand(nil), negative degree).
package builder
