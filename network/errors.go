// SPDX-License-Identifier: MIT
// Package: fibernet/network
//
// errors.go - sentinel errors and the ValidationError wrapper.
//
// Callers branch with errors.Is(err, ErrX) on the sentinel and use errors.As
// with *ValidationError when the offending cell matters.

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimensions reports a non-positive node count or a matrix whose
	// shape does not match NumNodes×NumNodes.
	ErrBadDimensions = errors.New("network: malformed dimensions")

	// ErrNonZeroDiagonal reports a diagonal distance cell that is absent or non-zero.
	ErrNonZeroDiagonal = errors.New("network: diagonal distance must be zero")

	// ErrNegativeWeight reports a negative distance or capacity.
	ErrNegativeWeight = errors.New("network: negative weight")

	// ErrWeightOutOfRange reports a present distance that is not below NoEdge.
	ErrWeightOutOfRange = errors.New("network: distance out of range")

	// ErrAsymmetric reports Distances[i][j] != Distances[j][i].
	ErrAsymmetric = errors.New("network: distance matrix is not symmetric")

	// ErrDisconnected reports that some node cannot be reached from node 0.
	ErrDisconnected = errors.New("network: distance graph is disconnected")

	// ErrNoCenters reports an empty service center list.
	ErrNoCenters = errors.New("network: no service centers")

	// ErrMalformed reports a syntax error in the plain-text case format.
	ErrMalformed = errors.New("network: malformed case file")
)

// ValidationError describes the first invariant violation found by Validate.
// Row and Col locate the offending matrix cell; they are -1 when the
// violation is not tied to a single cell (e.g. ErrNoCenters). For
// ErrDisconnected, Row holds the lowest unreachable node.
type ValidationError struct {
	Err      error
	Row, Col int
}

func (e *ValidationError) Error() string {
	switch {
	case e.Row < 0:
		return e.Err.Error()
	case e.Col < 0:
		return fmt.Sprintf("%v (node %d)", e.Err, e.Row)
	default:
		return fmt.Sprintf("%v at (%d,%d)", e.Err, e.Row, e.Col)
	}
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }

func violation(err error, row, col int) error {
	return &ValidationError{Err: err, Row: row, Col: col}
}
