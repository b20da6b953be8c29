// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fibernet/pipeline"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for a format other than text, yaml or json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats lists the supported formats.
func Formats() []string { return []string{FormatText, FormatYAML, FormatJSON} }

// Write renders reports to w. YAML writes one document per report; JSON
// writes a single array.
func Write(w io.Writer, format string, reports ...*pipeline.Report) error {
	switch format {
	case FormatText:
		return writeText(w, reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return errors.Wrapf(err, "encode %s", r.Case)
			}
		}
		return errors.Wrap(enc.Close(), "close yaml encoder")
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if reports == nil {
			reports = []*pipeline.Report{}
		}
		return errors.Wrap(enc.Encode(reports), "encode json")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// Label names node i of an n-node case: letters up to 26 nodes, indices
// beyond.
func Label(n, i int) string {
	if n <= 26 && i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return strconv.Itoa(i)
}
