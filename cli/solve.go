// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fibernet/builder"
	"github.com/katalvlaran/fibernet/pipeline"
)

func newSolveCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <case-file>...",
		Short: "Solve every stage for each case file and print a report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.pipelineConfig()
			if err != nil {
				return err
			}
			ctx := app.context(cmd)

			inputs := make([]pipeline.Input, len(args))
			for i, path := range args {
				pipeline.Logger(ctx).WithField("case", path).Debug("loading case")
				c, err := builder.LoadUnchecked(app.Fs, path)
				inputs[i] = pipeline.Input{Name: path, Case: c, LoadErr: err}
			}

			reports, runErr := pipeline.RunAll(ctx, inputs, cfg)
			if err := app.finish(reports); err != nil {
				return err
			}
			return runErr
		},
	}
	addSolverFlags(cmd.Flags())

	return cmd
}
