// SPDX-License-Identifier: MIT

// Package cli wires the fibernet commands: solve, generate, validate and
// bench.
//
// Every flag can also come from a YAML file given with --config or from an
// environment variable named FIBERNET_<FLAG>, with dashes turned into
// underscores (FIBERNET_TWO_OPT=true). Flags set on the command line win
// over the environment, which wins over the file.
//
// Files are accessed through an afero.Fs so the commands run unchanged on
// an in-memory filesystem in tests.
package cli
