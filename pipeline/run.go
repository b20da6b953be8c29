// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fibernet/flow"
	"github.com/katalvlaran/fibernet/nearest"
	"github.com/katalvlaran/fibernet/network"
	"github.com/katalvlaran/fibernet/prim_kruskal"
	"github.com/katalvlaran/fibernet/tsp"
)

// errSkipped marks stages not run because validation failed.
var errSkipped = errors.New("case did not validate")

// Input is one case for RunAll. LoadErr, when set, is reported as the
// validation failure of that case.
type Input struct {
	Name    string
	Case    *network.Case
	LoadErr error
}

// Run solves c with every stage and never returns nil. Cancelling ctx marks
// the stages that did not start as skipped.
func Run(ctx context.Context, name string, c *network.Case, cfg Config) *Report {
	return run(ctx, Input{Name: name, Case: c}, cfg)
}

// RunAll solves inputs concurrently and returns their reports in input order.
// Every report is filled in. The error is non-nil only when ctx was
// cancelled; stage failures live in the reports.
func RunAll(ctx context.Context, inputs []Input, cfg Config) ([]*Report, error) {
	reports := make([]*Report, len(inputs))
	limit := cfg.Parallel
	if limit < 1 {
		limit = 1
	}
	var g errgroup.Group
	g.SetLimit(limit)

	for i := range inputs {
		i := i
		g.Go(func() error {
			reports[i] = run(ctx, inputs[i], cfg)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return reports, errors.Wrap(err, "pipeline interrupted")
	}

	return reports, nil
}

type runner struct {
	ctx    context.Context
	cfg    Config
	c      *network.Case
	logger logrus.FieldLogger
}

func run(ctx context.Context, in Input, cfg Config) *Report {
	start := time.Now()
	rep := &Report{Case: in.Name}
	logger := Logger(ctx).WithField("case", in.Name)
	if in.Case != nil {
		rep.Nodes = in.Case.NumNodes
		logger = logger.WithField("nodes", in.Case.NumNodes)
	}
	r := &runner{ctx: ctx, cfg: cfg, c: in.Case, logger: logger}

	r.stage(StageValidate, &rep.Validation, func() error {
		if in.LoadErr != nil {
			return in.LoadErr
		}
		return network.Validate(in.Case)
	})
	if rep.Validation.err != nil {
		for _, st := range []*Stage{&rep.Tree.Stage, &rep.Tour.Stage, &rep.Flow.Stage, &rep.Nearest.Stage} {
			st.Skipped = true
			st.Error = errSkipped.Error()
		}
		cfg.Metrics.observeCase(false)
		rep.Elapsed = time.Since(start)

		return rep
	}

	r.stage(StageTree, &rep.Tree.Stage, func() error { return r.tree(&rep.Tree) })
	r.stage(StageTour, &rep.Tour.Stage, func() error { return r.tour(&rep.Tour) })
	r.stage(StageFlow, &rep.Flow.Stage, func() error { return r.flow(&rep.Flow) })
	r.stage(StageNearest, &rep.Nearest.Stage, func() error { return r.nearest(&rep.Nearest) })

	rep.Elapsed = time.Since(start)
	cfg.Metrics.observeCase(rep.OK())
	logger.WithField("duration", rep.Elapsed).Info("case solved")

	return rep
}

// stage runs fn unless ctx is done, then records its duration and error.
func (r *runner) stage(name string, st *Stage, fn func() error) {
	logger := r.logger.WithField("stage", name)
	if err := r.ctx.Err(); err != nil {
		st.Skipped = true
		st.Error = err.Error()
		logger.Debug("stage skipped")
		return
	}

	start := time.Now()
	err := fn()
	st.Duration = time.Since(start)
	r.cfg.Metrics.observeStage(name, st.Duration, err)

	if err != nil {
		st.fail(errors.Wrap(err, name))
		logger.WithError(err).Warn("stage failed")
		return
	}
	logger.WithField("duration", st.Duration).Debug("stage done")
}

func (r *runner) tree(sec *TreeSection) error {
	sec.Method = r.cfg.MSTMethod
	tree, err := prim_kruskal.Build(network.ToSparse(r.c.Distances), r.cfg.MSTMethod)
	if err != nil {
		return err
	}
	sec.Edges = tree
	sec.Cost = tree.Cost()

	return nil
}

func (r *runner) tour(sec *TourSection) error {
	var opts []tsp.Option
	if r.cfg.TwoOpt {
		opts = append(opts, tsp.WithTwoOpt())
	}
	res, err := tsp.NearestNeighbor(r.c.Distances, opts...)
	if err != nil {
		return err
	}
	sec.Tour = res.Tour
	sec.Legs = res.Legs
	sec.Cost = res.Cost
	sec.Polished = r.cfg.TwoOpt && res.Direct()

	return nil
}

func (r *runner) flow(sec *FlowSection) error {
	logger := r.logger.WithField("stage", StageFlow)
	opts := []flow.Option{
		flow.WithOnAugment(func(path []int, bottleneck int64) {
			logger.WithFields(logrus.Fields{"path": path, "bottleneck": bottleneck}).Debug("augmenting path")
		}),
	}
	if r.cfg.Source != DefaultEndpoint {
		opts = append(opts, flow.WithSource(r.cfg.Source))
	}
	if r.cfg.Sink != DefaultEndpoint {
		opts = append(opts, flow.WithSink(r.cfg.Sink))
	}

	solve := flow.EdmondsKarp
	sec.Algorithm = FlowEdmondsKarp
	switch r.cfg.FlowAlgorithm {
	case "", FlowEdmondsKarp:
	case FlowDinic:
		solve = flow.Dinic
		sec.Algorithm = FlowDinic
	default:
		sec.Algorithm = r.cfg.FlowAlgorithm
		return errors.Wrapf(ErrBadConfig, "flow algorithm %q", r.cfg.FlowAlgorithm)
	}

	res, err := solve(r.c.Capacities, opts...)
	if err != nil {
		return err
	}
	sec.Source, sec.Sink = res.Source, res.Sink
	sec.Value = res.Value
	sec.Augmentations = res.Augmentations
	sec.Cut = res.MinCut()
	r.cfg.Metrics.observeFlow(res.Value)

	return nil
}

func (r *runner) nearest(sec *NearestSection) error {
	idx, err := nearest.NewIndex(r.c.Centers)
	if err != nil {
		return err
	}
	sec.Assignments = idx.Assign(r.cfg.Queries)

	return nil
}
