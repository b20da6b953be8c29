// SPDX-License-Identifier: MIT

// Package pipeline runs every solver over a network case and collects the
// outcomes into a Report.
//
// Stages, in order:
//
//	validate → tree → tour → flow → nearest
//
// A case that fails validation skips the solver stages. Any other stage may
// fail on its own; the failure is recorded in its section of the Report,
// logged, counted in Metrics, and the remaining stages still run. Solver
// results never mutate the shared case.
//
// RunAll processes independent cases concurrently, bounded by
// Config.Parallel, and returns reports in input order.
//
// Logging goes through the logrus.FieldLogger carried by the context
// (WithLogger / Logger). With debug level enabled every augmenting path of
// the flow stage is logged.
package pipeline
