// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fibernet/pipeline"
	"github.com/katalvlaran/fibernet/tsp"
)

func writeText(w io.Writer, reports []*pipeline.Report) error {
	bw := bufio.NewWriter(w)
	for k, r := range reports {
		if k > 0 {
			bw.WriteString("\n")
		}
		t := textWriter{w: bw, n: r.Nodes}
		t.report(r)
	}

	return bw.Flush()
}

type textWriter struct {
	w *bufio.Writer
	n int
}

func (t textWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(t.w, format, args...)
}

func (t textWriter) heading(title, method string) {
	if method == "" {
		t.printf("%s:\n", title)
		return
	}
	t.printf("%s (%s):\n", title, method)
}

func (t textWriter) label(i int) string { return Label(t.n, i) }

// failed prints the stage error and reports whether the section is done.
func (t textWriter) failed(st pipeline.Stage) bool {
	if st.Error == "" {
		return false
	}
	if st.Skipped {
		t.printf("   skipped: %s\n", st.Error)
	} else {
		t.printf("   error: %s\n", st.Error)
	}
	return true
}

func (t textWriter) report(r *pipeline.Report) {
	t.printf("== %s (%d nodes) ==\n", r.Case, r.Nodes)
	if r.Validation.Error != "" {
		t.printf("validation: %s\n", r.Validation.Error)
	}

	t.heading("1. Spanning tree", r.Tree.Method)
	if !t.failed(r.Tree.Stage) {
		parts := make([]string, len(r.Tree.Edges))
		for i, e := range r.Tree.Edges {
			parts[i] = "(" + t.label(e.Parent) + "," + t.label(e.Child) + ")"
		}
		t.printf("   %s\n", strings.Join(parts, " "))
		t.printf("   total cost: %d\n", r.Tree.Cost)
	}

	t.printf("2. Tour:\n")
	if !t.failed(r.Tour.Stage) {
		parts := make([]string, len(r.Tour.Tour))
		for i, v := range r.Tour.Tour {
			parts[i] = t.label(v)
		}
		t.printf("   %s\n", strings.Join(parts, " -> "))
		for _, leg := range r.Tour.Legs {
			if leg.Kind == tsp.Direct {
				continue
			}
			via := make([]string, len(leg.Via))
			for i, v := range leg.Via {
				via[i] = t.label(v)
			}
			t.printf("   %s -> %s via %s (%s, %d)\n", t.label(leg.From), t.label(leg.To), strings.Join(via, ","), leg.Kind, leg.Distance)
		}
		polished := ""
		if r.Tour.Polished {
			polished = " (2-opt)"
		}
		t.printf("   total distance: %d%s\n", r.Tour.Cost, polished)
	}

	t.heading("3. Max flow", r.Flow.Algorithm)
	if !t.failed(r.Flow.Stage) {
		t.printf("   %s to %s: %d\n", t.label(r.Flow.Source), t.label(r.Flow.Sink), r.Flow.Value)
		arcs := make([]string, len(r.Flow.Cut.Arcs))
		for i, a := range r.Flow.Cut.Arcs {
			arcs[i] = t.label(a.From) + "->" + t.label(a.To) + "(" + strconv.FormatInt(a.Capacity, 10) + ")"
		}
		if len(arcs) == 0 {
			arcs = []string{"(none)"}
		}
		t.printf("   min cut: %s\n", strings.Join(arcs, " "))
	}

	t.printf("4. Nearest centers:\n")
	if !t.failed(r.Nearest.Stage) {
		for _, a := range r.Nearest.Assignments {
			t.printf("   (%s, %s) -> %s (%.2f)\n", fmtCoord(a.Point.X), fmtCoord(a.Point.Y), a.Center.ID, a.Distance)
		}
	}
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
