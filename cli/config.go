// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fibernet/network"
	"github.com/katalvlaran/fibernet/pipeline"
	"github.com/katalvlaran/fibernet/prim_kruskal"
)

// addSolverFlags registers the flags shared by solve and bench.
func addSolverFlags(flags *pflag.FlagSet) {
	flags.String("mst", prim_kruskal.MethodPrim, "spanning tree method: prim or kruskal")
	flags.Bool("two-opt", false, "polish fully direct tours with 2-opt")
	flags.String("flow", pipeline.FlowEdmondsKarp, "max-flow algorithm: edmonds-karp or dinic")
	flags.Int("source", pipeline.DefaultEndpoint, "flow source node (default 0)")
	flags.Int("sink", pipeline.DefaultEndpoint, "flow sink node (default last node)")
	flags.IntP("parallel", "p", 1, "cases solved concurrently")
	flags.StringArrayP("query", "q", nil, "query point x,y for nearest-center assignment (repeatable)")
}

// pipelineConfig reads the solver settings from viper.
func (a *App) pipelineConfig() (pipeline.Config, error) {
	v := a.v
	cfg := pipeline.DefaultConfig()
	cfg.MSTMethod = v.GetString("mst")
	cfg.TwoOpt = v.GetBool("two-opt")
	cfg.FlowAlgorithm = v.GetString("flow")
	cfg.Source = v.GetInt("source")
	cfg.Sink = v.GetInt("sink")
	cfg.Parallel = v.GetInt("parallel")
	cfg.Metrics = a.metrics

	if raw := v.GetStringSlice("query"); len(raw) > 0 {
		queries, err := parseQueries(raw)
		if err != nil {
			return cfg, err
		}
		cfg.Queries = queries
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseQueries turns "x,y" strings into points.
func parseQueries(raw []string) ([]network.Point, error) {
	out := make([]network.Point, 0, len(raw))
	for _, q := range raw {
		parts := strings.Split(q, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("query %q: want x,y", q)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "query %q", q)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "query %q", q)
		}
		out = append(out, network.Point{X: x, Y: y})
	}

	return out, nil
}
