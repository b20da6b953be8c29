// SPDX-License-Identifier: MIT
// Package: fibernet/builder
//
// constants.go - named defaults of the generator.

package builder

const (
	// MethodGenerate prefixes Generate errors.
	MethodGenerate = "Generate"
	// MethodSave prefixes Save errors.
	MethodSave = "Save"
	// MethodLoad prefixes Load errors.
	MethodLoad = "Load"
)

// MinNodes is the smallest case Generate accepts.
const MinNodes = 1

// Link weight ranges (inclusive).
const (
	MinDistance = int64(1)
	MaxDistance = int64(100)
	MinCapacity = int64(100)
	MaxCapacity = int64(1000)
)

// DefaultExtraDegree is the expected number of extra links per node on top
// of the ring and cross links.
const DefaultExtraDegree = 3.0

// Service center layout.
const (
	SmallCaseNodes   = 15     // cases up to this size get SmallCaseCenters
	SmallCaseCenters = 3      // centers for small cases
	NodesPerCenter   = 5      // one center per this many nodes otherwise
	MaxCenters       = 100    // upper bound on centers
	FieldSize        = 1000.0 // centers lie in [0, FieldSize]²
	JitterFraction   = 0.25   // max offset from the cell centre, per axis, as a fraction of the cell
	maxLetterCenters = 26     // letter IDs while the count fits the alphabet
)
