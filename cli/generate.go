// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fibernet/builder"
)

func newGenerateCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random connected cases to --out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := app.v
			size, count, seed := v.GetInt("size"), v.GetInt("count"), v.GetInt64("seed")
			dir := v.GetString("out")
			logger := app.Logger.WithField("size", size)

			for k := 0; k < count; k++ {
				c, err := builder.Generate(size,
					builder.WithSeed(seed+int64(k)),
					builder.WithExtraDegree(v.GetFloat64("extra-degree")),
				)
				if err != nil {
					return errors.Wrapf(err, "case %d", k)
				}
				path := filepath.Join(dir, fmt.Sprintf("case-%d-%d.txt", size, k))
				if err := builder.Save(app.Fs, path, c); err != nil {
					return err
				}
				logger.WithField("path", path).Info("case written")
				fmt.Fprintln(app.Out, path)
			}

			return nil
		},
	}
	cmd.Flags().IntP("size", "n", 20, "nodes per case")
	cmd.Flags().IntP("count", "c", 1, "number of cases")
	cmd.Flags().Int64("seed", 1, "seed of the first case, incremented per case")
	cmd.Flags().Float64("extra-degree", builder.DefaultExtraDegree, "expected extra links per node")
	cmd.Flags().String("out", ".", "output directory")

	return cmd
}
