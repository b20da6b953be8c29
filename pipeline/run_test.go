// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fibernet/builder"
	"github.com/katalvlaran/fibernet/flow"
	"github.com/katalvlaran/fibernet/network"
	"github.com/katalvlaran/fibernet/pipeline"
	"github.com/katalvlaran/fibernet/prim_kruskal"
)

// unitSquare: sides 1, diagonals 2, capacity 1 between every ordered pair.
func unitSquare() *network.Case {
	d := network.NewDistances(4)
	d.SetLink(0, 1, 1)
	d.SetLink(1, 2, 1)
	d.SetLink(2, 3, 1)
	d.SetLink(3, 0, 1)
	d.SetLink(0, 2, 2)
	d.SetLink(1, 3, 2)

	c := network.NewCapacities(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				c[i][j] = 1
			}
		}
	}

	return &network.Case{
		NumNodes:   4,
		Distances:  d,
		Capacities: c,
		Centers:    []network.ServiceCenter{{ID: "A", X: 0, Y: 0}, {ID: "B", X: 1, Y: 0}},
	}
}

type RunSuite struct {
	suite.Suite
	ctx     context.Context
	hook    *test.Hook
	reg     *prometheus.Registry
	metrics *pipeline.Metrics
	cfg     pipeline.Config
}

func (s *RunSuite) SetupTest() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s.hook = hook
	s.ctx = pipeline.WithLogger(context.Background(), logger)

	s.reg = prometheus.NewRegistry()
	m, err := pipeline.NewMetrics(s.reg)
	s.Require().NoError(err)
	s.metrics = m

	s.cfg = pipeline.DefaultConfig()
	s.cfg.Metrics = m
}

func (s *RunSuite) TestUnitSquare() {
	rep := pipeline.Run(s.ctx, "square", unitSquare(), s.cfg)
	s.Require().True(rep.OK(), "failed stages: %v", rep.Failed())
	s.Equal(4, rep.Nodes)

	s.EqualValues(3, rep.Tree.Cost)
	s.Len(rep.Tree.Edges, 3)
	s.Equal(prim_kruskal.MethodPrim, rep.Tree.Method)

	s.Equal([]int{0, 1, 2, 3, 0}, rep.Tour.Tour)
	s.EqualValues(4, rep.Tour.Cost)

	s.Equal(0, rep.Flow.Source)
	s.Equal(3, rep.Flow.Sink)
	s.EqualValues(3, rep.Flow.Value)
	s.Equal(rep.Flow.Value, rep.Flow.Cut.Capacity())

	s.Require().Len(rep.Nearest.Assignments, 3)
	for _, a := range rep.Nearest.Assignments {
		s.Equal("B", a.Center.ID, "query %v", a.Point)
	}

	s.InDelta(1, testutil.ToFloat64(s.metrics.Cases.WithLabelValues("ok")), 0)
	s.InDelta(3, testutil.ToFloat64(s.metrics.MaxFlowValue), 0)
	s.Equal(5, testutil.CollectAndCount(s.metrics.StageDuration), "one series per stage")
}

func (s *RunSuite) TestInvalidCaseSkipsSolvers() {
	c := unitSquare()
	c.Centers = nil
	rep := pipeline.Run(s.ctx, "no-centers", c, s.cfg)

	s.Require().ErrorIs(rep.Validation.Err(), network.ErrNoCenters)
	s.Equal([]string{pipeline.StageValidate}, rep.Failed())
	for _, st := range []pipeline.Stage{rep.Tree.Stage, rep.Tour.Stage, rep.Flow.Stage, rep.Nearest.Stage} {
		s.True(st.Skipped)
		s.NotEmpty(st.Error)
	}
	s.False(rep.OK())
	s.InDelta(1, testutil.ToFloat64(s.metrics.Cases.WithLabelValues("failed")), 0)
	s.InDelta(1, testutil.ToFloat64(s.metrics.StageFailures.WithLabelValues(pipeline.StageValidate)), 0)
}

func (s *RunSuite) TestFailingStageDoesNotStopOthers() {
	s.cfg.Sink = 99
	rep := pipeline.Run(s.ctx, "bad-sink", unitSquare(), s.cfg)

	s.Equal([]string{pipeline.StageFlow}, rep.Failed())
	s.Require().ErrorIs(rep.Flow.Err(), flow.ErrSinkNotFound)
	s.Contains(rep.Flow.Error, "flow:")
	s.True(rep.Tree.OK())
	s.True(rep.Tour.OK())
	s.True(rep.Nearest.OK())
	s.InDelta(1, testutil.ToFloat64(s.metrics.StageFailures.WithLabelValues(pipeline.StageFlow)), 0)

	var warned bool
	for _, e := range s.hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["stage"] == pipeline.StageFlow {
			warned = true
		}
	}
	s.True(warned, "stage failure is logged")
}

func (s *RunSuite) TestUnknownMethodFailsTreeOnly() {
	s.cfg.MSTMethod = "boruvka"
	rep := pipeline.Run(s.ctx, "square", unitSquare(), s.cfg)
	s.Equal([]string{pipeline.StageTree}, rep.Failed())
	s.ErrorIs(rep.Tree.Err(), prim_kruskal.ErrUnknownMethod)
}

func (s *RunSuite) TestKruskalAndDinicAgree() {
	base := pipeline.Run(s.ctx, "base", mustGenerate(s.T(), 60, 3), s.cfg)

	s.cfg.MSTMethod = prim_kruskal.MethodKruskal
	s.cfg.FlowAlgorithm = pipeline.FlowDinic
	alt := pipeline.Run(s.ctx, "alt", mustGenerate(s.T(), 60, 3), s.cfg)

	s.Require().True(base.OK())
	s.Require().True(alt.OK())
	s.Equal(base.Tree.Cost, alt.Tree.Cost)
	s.Equal(base.Flow.Value, alt.Flow.Value)
	s.Equal(pipeline.FlowDinic, alt.Flow.Algorithm)
}

func (s *RunSuite) TestAugmentingPathsLoggedAtDebug() {
	pipeline.Run(s.ctx, "square", unitSquare(), s.cfg)

	var paths int
	var solved *logrus.Entry
	for _, e := range s.hook.AllEntries() {
		switch e.Message {
		case "augmenting path":
			paths++
			s.Contains(e.Data, "bottleneck")
		case "case solved":
			solved = e
		}
	}
	s.Equal(3, paths, "one per unit of flow")
	s.Require().NotNil(solved)
	s.Equal("square", solved.Data["case"])
	s.Equal(4, solved.Data["nodes"])
}

func (s *RunSuite) TestTwoOptFlag() {
	s.cfg.TwoOpt = true
	rep := pipeline.Run(s.ctx, "square", unitSquare(), s.cfg)
	s.True(rep.Tour.Polished)
	s.EqualValues(4, rep.Tour.Cost)
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}

func mustGenerate(t *testing.T, n int, seed int64) *network.Case {
	t.Helper()
	c, err := builder.Generate(n, builder.WithSeed(seed))
	require.NoError(t, err)
	return c
}

func TestRunAll_Order(t *testing.T) {
	var inputs []pipeline.Input
	for k := 0; k < 8; k++ {
		inputs = append(inputs, pipeline.Input{Name: fmt.Sprintf("case-%d", k), Case: mustGenerate(t, 20+k, int64(k))})
	}
	inputs = append(inputs, pipeline.Input{Name: "broken", LoadErr: network.ErrMalformed})

	cfg := pipeline.DefaultConfig()
	cfg.Parallel = 4
	reports, err := pipeline.RunAll(context.Background(), inputs, cfg)
	require.NoError(t, err)
	require.Len(t, reports, len(inputs))
	for k, rep := range reports[:8] {
		require.Equal(t, inputs[k].Name, rep.Case)
		require.Equal(t, 20+k, rep.Nodes)
		require.True(t, rep.OK(), "%s: %v", rep.Case, rep.Failed())
	}
	require.True(t, errors.Is(reports[8].Validation.Err(), network.ErrMalformed))
}

func TestRunAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := pipeline.RunAll(ctx, []pipeline.Input{{Name: "x", Case: unitSquare()}}, pipeline.DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, reports, 1)
	require.True(t, reports[0].Validation.Skipped)
	require.False(t, reports[0].OK())
}

func TestLoggerDefault(t *testing.T) {
	require.Equal(t, logrus.StandardLogger(), pipeline.Logger(context.Background()))
}

func TestMetricsRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := pipeline.NewMetrics(reg)
	require.NoError(t, err)
	_, err = pipeline.NewMetrics(reg)
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.MSTMethod = "boruvka"
	require.ErrorIs(t, bad.Validate(), pipeline.ErrBadConfig)

	bad = cfg
	bad.FlowAlgorithm = "push-relabel"
	require.ErrorIs(t, bad.Validate(), pipeline.ErrBadConfig)

	bad = cfg
	bad.Sink = -5
	require.ErrorIs(t, bad.Validate(), pipeline.ErrBadConfig)
}
