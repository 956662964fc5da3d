// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glacmb/gdir"
	"github.com/katalvlaran/glacmb/massbalance"
)

func newSimulateCmd(a *app) *cobra.Command {
	var yearsFlag string

	cmd := &cobra.Command{
		Use:   "simulate <id>",
		Short: "Compute the glacier-wide mass balance per year on the model flowlines",
		Long: `For each year, realize the ELA and integrate the linear mass balance
over the model flowlines, weighted by width. The balance is reported in
mm w.e. per year; the flowline geometry is held fixed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := parseYears(yearsFlag)
			if err != nil {
				return err
			}
			d, err := a.openProcessed(args[0], gdir.ProductModelFlowlines)
			if err != nil {
				return err
			}
			profile, err := gdir.GlacierZWH(d)
			if err != nil {
				return err
			}
			m, err := a.buildModel(d)
			if err != nil {
				return err
			}

			log := a.log.WithGlacier(d.RGIID).With("gradient", m.Gradient(), "sigma_ela_m", m.SigmaELA())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "glacier: %s  points: %d\n", d.RGIID, profile.Len())
			fmt.Fprintf(out, "%6s %10s %14s\n", "year", "ela_m", "smb_mmwe_yr")
			for _, y := range years {
				smb, err := massbalance.SpecificMassBalance(m, profile.Z, profile.W, y, m.Constants())
				if err != nil {
					return err
				}
				ela := m.ELA(y)
				log.Debug("year simulated", "year", y, "ela_m", ela, "smb_mmwe", smb)
				fmt.Fprintf(out, "%6d %10.1f %14.1f\n", y, ela, smb)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&yearsFlag, "years", "2000:2010", "years as A:B or A,B,C")

	return cmd
}
