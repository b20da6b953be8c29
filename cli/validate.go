// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fibernet/builder"
	"github.com/katalvlaran/fibernet/network"
)

// ErrInvalidCases is returned by validate when at least one file fails.
var ErrInvalidCases = errors.New("invalid case files")

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <case-file>...",
		Short: "Check case files and report the first violation of each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, path := range args {
				c, err := builder.LoadUnchecked(app.Fs, path)
				if err == nil {
					err = network.Validate(c)
				}
				if err != nil {
					bad++
					app.Logger.WithField("case", path).WithError(err).Debug("invalid case")
					fmt.Fprintf(app.Out, "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(app.Out, "%s: ok (%d nodes, %d centers)\n", path, c.NumNodes, len(c.Centers))
			}
			if bad > 0 {
				return errors.Wrapf(ErrInvalidCases, "%d of %d", bad, len(args))
			}
			return nil
		},
	}
}
