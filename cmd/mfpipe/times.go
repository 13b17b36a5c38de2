package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andyrich/mfpipe/heads"
)

func newTimesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "times <heads-file>",
		Short: "List the simulated times saved in a binary result file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := heads.Open(args[0])
			if err != nil {
				return err
			}
			nlay, nrow, ncol := f.Shape()
			fmt.Printf(" %s: (%d,%d,%d)\n", args[0], nlay, nrow, ncol)
			for _, t := range f.Times() {
				fmt.Printf("  t = %g\n", t)
			}
			return nil
		},
	}
}
