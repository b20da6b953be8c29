// SPDX-License-Identifier: MIT

// Package report renders pipeline reports as text, YAML or JSON.
//
// The text form is meant for terminals: nodes are labelled with letters
// (A, B, ...) when a case has at most 26 nodes and with their indices
// otherwise. YAML and JSON carry the full report structure, including tour
// legs and the minimum cut, for other programs to consume.
package report
