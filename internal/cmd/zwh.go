// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glacmb/gdir"
)

func newZWHCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zwh <id>",
		Short: "Print altitude, width and thickness along the model flowlines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openProcessed(args[0], gdir.ProductModelFlowlines)
			if err != nil {
				return err
			}
			t, err := gdir.GlacierZWH(d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "glacier: %s  points: %d  dx: %g m\n", d.RGIID, t.Len(), t.DX)
			fmt.Fprintf(out, "%6s %10s %10s %10s\n", "i", "z_m", "w_m", "h_m")
			for i := range t.Z {
				fmt.Fprintf(out, "%6d %10.1f %10.1f %10.1f\n", i, t.Z[i], t.W[i], t.H[i])
			}
			return nil
		},
	}
}
