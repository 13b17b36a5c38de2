package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andyrich/mfpipe/heads"
	"github.com/andyrich/mfpipe/plot"
)

func newPlotCmd() *cobra.Command {
	var (
		totim float64
		out   string
	)
	cmd := &cobra.Command{
		Use:   "plot <heads-file>",
		Short: "Render the head profile from an existing result file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScenario(flags.configFile)
			if err != nil {
				return err
			}
			gd, _, _, err := s.Section.Build()
			if err != nil {
				return err
			}

			f, err := heads.Open(args[0])
			if err != nil {
				return err
			}
			ts := f.Times()
			if totim < 0 {
				totim = ts[len(ts)-1]
			}
			h, err := f.Heads(totim)
			if err != nil {
				return err
			}
			if err := plot.Profile(gd.CellCenters(), h[0][0], s.Section.BaseProfile(), fmt.Sprintf("%s t=%g", s.Name, totim), out); err != nil {
				return err
			}
			fmt.Println(" profile written to " + out)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&totim, "time", "t", -1., "simulated time to draw (default: last saved)")
	cmd.Flags().StringVarP(&out, "out", "o", "profile.png", "output figure file")
	return cmd
}
