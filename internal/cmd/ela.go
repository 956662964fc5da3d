// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glacmb/gdir"
)

func newELACmd(a *app) *cobra.Command {
	var yearsFlag string

	cmd := &cobra.Command{
		Use:   "ela <id>",
		Short: "Print the random equilibrium line altitude per year",
		Long: `Build the random linear mass-balance model from the glacier's gridded
topography and print the ELA of each requested year.

Years are drawn in the order given: --years 2005,2003 and --years 2003,2005
assign different draws to 2003 even with the same seed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := parseYears(yearsFlag)
			if err != nil {
				return err
			}
			d, err := a.openProcessed(args[0], gdir.ProductGriddedData)
			if err != nil {
				return err
			}
			m, err := a.buildModel(d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "glacier: %s\n", d.RGIID)
			fmt.Fprintf(out, "reference ELA: %.1f m (p%g)\n", m.ReferenceELA(), a.cfg.Model.Percentile)
			fmt.Fprintf(out, "%6s %10s\n", "year", "ela_m")
			for _, y := range years {
				fmt.Fprintf(out, "%6d %10.1f\n", y, m.ELA(y))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&yearsFlag, "years", "2000:2010", "years as A:B or A,B,C")

	return cmd
}
