// SPDX-License-Identifier: MIT
// Package: fibernet/builder
//
// storage.go - case files on an afero filesystem.
//
// Save followed by Load reproduces the case exactly (see network.Encode).

package builder

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/katalvlaran/fibernet/network"
)

// Save writes c to path in the plain-text case format, creating parent
// directories as needed. An existing file is truncated.
func Save(fs afero.Fs, path string, c *network.Case) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err = fs.MkdirAll(dir, 0o755); err != nil {
			return builderErrorf(MethodSave, "%s: %w", path, err)
		}
	}
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return builderErrorf(MethodSave, "%s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = builderErrorf(MethodSave, "%s: %w", path, cerr)
		}
	}()

	if err = network.Encode(f, c); err != nil {
		return builderErrorf(MethodSave, "%s: %w", path, err)
	}

	return nil
}

// Load reads and validates the case stored at path. Syntax errors wrap
// network.ErrMalformed; invariant violations are *network.ValidationError.
func Load(fs afero.Fs, path string) (*network.Case, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, builderErrorf(MethodLoad, "%s: %w", path, err)
	}
	defer f.Close()

	c, err := network.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, builderErrorf(MethodLoad, "%s: %w", path, err)
	}
	if err = network.Validate(c); err != nil {
		return nil, builderErrorf(MethodLoad, "%s: %w", path, err)
	}

	return c, nil
}

// LoadUnchecked reads the case at path without validating it, for callers
// that want to report every problem themselves.
func LoadUnchecked(fs afero.Fs, path string) (*network.Case, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, builderErrorf(MethodLoad, "%s: %w", path, err)
	}
	defer f.Close()

	c, err := network.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, builderErrorf(MethodLoad, "%s: %w", path, err)
	}

	return c, nil
}
