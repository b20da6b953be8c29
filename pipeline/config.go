// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/fibernet/network"
	"github.com/katalvlaran/fibernet/prim_kruskal"
)

// Flow algorithms selectable through Config.FlowAlgorithm.
const (
	FlowEdmondsKarp = "edmonds-karp"
	FlowDinic       = "dinic"
)

// DefaultEndpoint leaves the flow source at 0 or the sink at n-1.
const DefaultEndpoint = -1

// ErrBadConfig is returned by Config.Validate.
var ErrBadConfig = errors.New("pipeline: invalid configuration")

// DefaultQueries are the query points used when none are configured.
func DefaultQueries() []network.Point {
	return []network.Point{{X: 25, Y: 30}, {X: 15, Y: 15}, {X: 40, Y: 35}}
}

// Config selects algorithms and inputs for every stage.
type Config struct {
	MSTMethod     string          // prim_kruskal.MethodPrim or MethodKruskal
	TwoOpt        bool            // polish fully direct tours with 2-opt
	FlowAlgorithm string          // FlowEdmondsKarp or FlowDinic
	Source, Sink  int             // DefaultEndpoint keeps 0 and n-1
	Queries       []network.Point // points assigned in the nearest stage
	Parallel      int             // RunAll concurrency, < 1 means 1
	Metrics       *Metrics        // optional
}

// DefaultConfig returns Prim, Edmonds–Karp from 0 to n-1 and DefaultQueries.
func DefaultConfig() Config {
	return Config{
		MSTMethod:     prim_kruskal.MethodPrim,
		FlowAlgorithm: FlowEdmondsKarp,
		Source:        DefaultEndpoint,
		Sink:          DefaultEndpoint,
		Queries:       DefaultQueries(),
		Parallel:      1,
	}
}

// Validate checks the case-independent settings. Endpoints are checked
// against each case by the flow stage.
func (c Config) Validate() error {
	switch c.MSTMethod {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		return errors.Wrapf(ErrBadConfig, "mst method %q", c.MSTMethod)
	}
	switch c.FlowAlgorithm {
	case FlowEdmondsKarp, FlowDinic:
	default:
		return errors.Wrapf(ErrBadConfig, "flow algorithm %q", c.FlowAlgorithm)
	}
	if c.Source < DefaultEndpoint || c.Sink < DefaultEndpoint {
		return errors.Wrap(ErrBadConfig, fmt.Sprintf("flow endpoints source=%d sink=%d", c.Source, c.Sink))
	}

	return nil
}
