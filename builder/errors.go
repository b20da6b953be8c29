// SPDX-License-Identifier: MIT
// Package: fibernet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; context is attached with %w and the
// method name prefix (see builderErrorf).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a requested size below MinNodes.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that Generate was called without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the generated case did not pass
// network.Validate. The validation error is wrapped alongside.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes an error with the method context, keeping %w chains.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
