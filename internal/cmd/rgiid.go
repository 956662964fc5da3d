// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glacmb/gdir"
)

func newRGIIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rgi-id <id>...",
		Short: "Print canonical RGI v6 ids",
		Long: `Normalize glacier ids to the RGI60-RR.NNNNN form.
Short ids such as 11.897 are zero-padded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range args {
				canonical, err := gdir.NormalizeRGIID(id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), canonical)
			}
			return nil
		},
	}
}
