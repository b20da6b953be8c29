// SPDX-License-Identifier: MIT

// Package fibernet plans fibre networks over a set of service areas joined
// by weighted links.
//
// What is in the box?
//
//	Given a distance matrix, a capacity matrix and a list of service
//	centers, fibernet computes:
//		• Cabling: minimum spanning tree (Prim, Kruskal)
//		• Delivery route: nearest-neighbour tour with two-hop and shortest-path fallbacks, optional 2-opt
//		• Throughput: maximum flow and minimum cut (Edmonds–Karp, Dinic)
//		• Coverage: nearest service center for arbitrary points
//	plus a seeded generator of random connected cases for stress tests.
//
// Packages
//
//	network/      Case model, validation, dense/sparse views, plain-text codec
//	bfs/          breadth-first walk used for connectivity and tree rooting
//	prim_kruskal/ spanning trees
//	dijkstra/     shortest paths for tour fallback legs
//	tsp/          tour heuristic, 2-opt, tour helpers
//	flow/         max flow and min cut on a private residual network
//	nearest/      linear-scan nearest-center lookup
//	builder/      case generation and case files on an afero.Fs
//	pipeline/     runs every stage per case, logging and metrics
//	report/       text, YAML and JSON rendering
//	cli/          command tree behind cmd/fibernet (solve, generate, validate, bench)
//
// Quick start
//
//	go run ./cmd/fibernet generate --size 50 --count 3 --out cases
//	go run ./cmd/fibernet solve cases/*.txt
//
// Solver packages are pure and log-free: they never mutate their input and
// own all scratch state, so independent cases can be solved concurrently.
package fibernet
