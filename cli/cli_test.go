// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fibernet/builder"
	"github.com/katalvlaran/fibernet/cli"
	"github.com/katalvlaran/fibernet/network"
)

const unitSquareFile = `4
0 1 2 1
1 0 1 2
2 1 0 1
1 2 1 0
0 1 1 1
1 0 1 1
1 1 0 1
1 1 1 0
2
A 0 0
B 1 0
`

func newFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cases/square.txt", []byte(unitSquareFile), 0o644))
	return fs
}

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cmd := cli.NewRootCommand(context.Background(), &cli.App{Fs: fs, Out: &out, Logger: logger}, "test")
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolve_Text(t *testing.T) {
	out, err := execute(t, newFs(t), "solve", "/cases/square.txt")
	require.NoError(t, err)
	require.Contains(t, out, "== /cases/square.txt (4 nodes) ==")
	require.Contains(t, out, "   total cost: 3\n")
	require.Contains(t, out, "   A -> B -> C -> D -> A\n")
	require.Contains(t, out, "   A to D: 3\n")
	require.Equal(t, 3, strings.Count(out, "-> B ("), "default queries")
}

func TestSolve_AlternativeAlgorithms(t *testing.T) {
	out, err := execute(t, newFs(t), "solve", "--mst", "kruskal", "--flow", "dinic", "--two-opt", "--sink", "2", "-q", "0.2,0", "/cases/square.txt")
	require.NoError(t, err)
	require.Contains(t, out, "1. Spanning tree (kruskal):")
	require.Contains(t, out, "   total cost: 3\n")
	require.Contains(t, out, "3. Max flow (dinic):\n   A to C: 3\n")
	require.Contains(t, out, "(2-opt)")
	require.Contains(t, out, "   (0.2, 0) -> A (0.20)\n")
}

func TestSolve_JSONFromEnv(t *testing.T) {
	t.Setenv("FIBERNET_FORMAT", "json")
	out, err := execute(t, newFs(t), "solve", "/cases/square.txt")
	require.NoError(t, err)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 1)
	require.EqualValues(t, 3, docs[0]["flow"].(map[string]interface{})["value"])
}

func TestSolve_ConfigFile(t *testing.T) {
	fs := newFs(t)
	cfg := "mst: kruskal\nquery:\n  - \"1,1\"\nformat: yaml\n"
	require.NoError(t, afero.WriteFile(fs, "/etc/fibernet.yaml", []byte(cfg), 0o644))

	out, err := execute(t, fs, "solve", "--config", "/etc/fibernet.yaml", "/cases/square.txt")
	require.NoError(t, err)
	require.Contains(t, out, "method: kruskal")
	require.Equal(t, 1, strings.Count(out, "center:"), "one query from the file")

	// flags beat the file
	out, err = execute(t, fs, "solve", "--config", "/etc/fibernet.yaml", "--mst", "prim", "/cases/square.txt")
	require.NoError(t, err)
	require.Contains(t, out, "method: prim")
}

func TestSolve_BrokenFileIsReported(t *testing.T) {
	fs := newFs(t)
	require.NoError(t, afero.WriteFile(fs, "/cases/bad.txt", []byte("3\n0 1\n"), 0o644))

	out, err := execute(t, fs, "solve", "/cases/bad.txt", "/cases/square.txt", "/cases/missing.txt")
	require.NoError(t, err, "failures are part of the report")
	require.Contains(t, out, "== /cases/bad.txt (0 nodes) ==\nvalidation:")
	require.Contains(t, out, "   total cost: 3\n")
	require.Contains(t, out, "missing.txt")
	require.Equal(t, 8, strings.Count(out, "skipped: case did not validate"))
}

func TestSolve_BadSettings(t *testing.T) {
	_, err := execute(t, newFs(t), "solve", "--mst", "boruvka", "/cases/square.txt")
	require.Error(t, err)

	_, err = execute(t, newFs(t), "solve", "-q", "1;2", "/cases/square.txt")
	require.ErrorContains(t, err, `query "1;2"`)

	_, err = execute(t, newFs(t), "solve", "--log-format", "xml", "/cases/square.txt")
	require.ErrorContains(t, err, "log format")

	_, err = execute(t, newFs(t), "solve", "--format", "xml", "/cases/square.txt")
	require.ErrorContains(t, err, "unknown format")
}

func TestSolve_MetricsFile(t *testing.T) {
	fs := newFs(t)
	_, err := execute(t, fs, "solve", "--metrics-file", "/metrics/fibernet.prom", "/cases/square.txt")
	require.NoError(t, err)

	raw, err := afero.ReadFile(fs, "/metrics/fibernet.prom")
	require.NoError(t, err)
	text := string(raw)
	require.Contains(t, text, "# TYPE fibernet_stage_duration_seconds histogram")
	require.Contains(t, text, `fibernet_cases_total{result="ok"} 1`)
	require.Contains(t, text, "fibernet_max_flow_value 3")
}

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, err := execute(t, fs, "generate", "--size", "12", "--count", "2", "--seed", "3", "--out", "/gen")
	require.NoError(t, err)
	require.Equal(t, "/gen/case-12-0.txt\n/gen/case-12-1.txt\n", out)

	first, err := builder.Load(fs, "/gen/case-12-0.txt")
	require.NoError(t, err)
	want, err := builder.Generate(12, builder.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, want, first, "seed of case k is seed+k")

	out, err = execute(t, fs, "validate", "/gen/case-12-0.txt", "/gen/case-12-1.txt")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, ": ok (12 nodes, 3 centers)"))
}

func TestGenerate_TooSmall(t *testing.T) {
	_, err := execute(t, afero.NewMemMapFs(), "generate", "--size", "0")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestValidate(t *testing.T) {
	fs := newFs(t)
	skewed := strings.Replace(unitSquareFile, "0 1 2 1\n", "0 5 2 1\n", 1)
	require.NoError(t, afero.WriteFile(fs, "/cases/skewed.txt", []byte(skewed), 0o644))

	out, err := execute(t, fs, "validate", "/cases/square.txt", "/cases/skewed.txt")
	require.ErrorIs(t, err, cli.ErrInvalidCases)
	require.Contains(t, out, "/cases/square.txt: ok (4 nodes, 2 centers)\n")
	require.Contains(t, out, "/cases/skewed.txt: "+(&network.ValidationError{Err: network.ErrAsymmetric, Row: 0, Col: 1}).Error())
}

func TestBench(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "bench", "--size", "30", "--count", "3", "--parallel", "2")
	require.NoError(t, err)
	require.Contains(t, out, "cases: 3  nodes: 30  parallel: 2")
	require.Contains(t, out, "STAGE")
	require.Regexp(t, `(?m)^flow\s+3\s`, out)
	require.Contains(t, out, "failed cases: 0\n")
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCommand(context.Background(), &cli.App{Fs: afero.NewMemMapFs(), Out: io.Discard}, "1.2.3")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "1.2.3")
}
