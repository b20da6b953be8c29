// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fibernet/builder"
	"github.com/katalvlaran/fibernet/pipeline"
)

func newBenchCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Generate cases in memory, solve them and print stage timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := app.v
			cfg, err := app.pipelineConfig()
			if err != nil {
				return err
			}
			size, count, seed := v.GetInt("size"), v.GetInt("count"), v.GetInt64("seed")

			inputs := make([]pipeline.Input, count)
			for k := range inputs {
				c, err := builder.Generate(size, builder.WithSeed(seed+int64(k)))
				if err != nil {
					return errors.Wrapf(err, "case %d", k)
				}
				inputs[k] = pipeline.Input{Name: fmt.Sprintf("bench-%d-%d", size, k), Case: c}
			}

			start := time.Now()
			reports, runErr := pipeline.RunAll(app.context(cmd), inputs, cfg)
			writeBenchSummary(app, reports, cfg.Parallel, time.Since(start))
			if err := app.writeMetrics(); err != nil {
				return err
			}
			return runErr
		},
	}
	addSolverFlags(cmd.Flags())
	cmd.Flags().IntP("size", "n", 200, "nodes per case")
	cmd.Flags().IntP("count", "c", 4, "number of cases")
	cmd.Flags().Int64("seed", 1, "seed of the first case, incremented per case")

	return cmd
}

type stageTiming struct {
	name     string
	total    time.Duration
	max      time.Duration
	runs     int
	failures int
}

func writeBenchSummary(app *App, reports []*pipeline.Report, parallel int, wall time.Duration) {
	timings := []*stageTiming{
		{name: pipeline.StageValidate},
		{name: pipeline.StageTree},
		{name: pipeline.StageTour},
		{name: pipeline.StageFlow},
		{name: pipeline.StageNearest},
	}
	failedCases := 0
	for _, r := range reports {
		if !r.OK() {
			failedCases++
		}
		for i, st := range []pipeline.Stage{r.Validation, r.Tree.Stage, r.Tour.Stage, r.Flow.Stage, r.Nearest.Stage} {
			if st.Skipped {
				continue
			}
			tm := timings[i]
			tm.runs++
			tm.total += st.Duration
			if st.Duration > tm.max {
				tm.max = st.Duration
			}
			if st.Err() != nil {
				tm.failures++
			}
		}
	}

	nodes := 0
	if len(reports) > 0 {
		nodes = reports[0].Nodes
	}
	fmt.Fprintf(app.Out, "cases: %d  nodes: %d  parallel: %d  wall: %s\n", len(reports), nodes, parallel, wall.Round(time.Microsecond))

	tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tRUNS\tMEAN\tMAX\tFAILURES")
	for _, tm := range timings {
		var mean time.Duration
		if tm.runs > 0 {
			mean = tm.total / time.Duration(tm.runs)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\n", tm.name, tm.runs, mean.Round(time.Microsecond), tm.max.Round(time.Microsecond), tm.failures)
	}
	tw.Flush()
	fmt.Fprintf(app.Out, "failed cases: %d\n", failedCases)
}
