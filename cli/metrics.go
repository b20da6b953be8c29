// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prometheus/common/expfmt"
)

// writeMetrics dumps the registry to --metrics-file in the text exposition
// format, for node_exporter's textfile collector and the like.
func (a *App) writeMetrics() (err error) {
	path := a.v.GetString("metrics-file")
	if path == "" {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = a.Fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	f, err := a.Fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	bw := bufio.NewWriter(f)
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(bw, mf); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
	}

	return errors.Wrapf(bw.Flush(), "write %s", path)
}
