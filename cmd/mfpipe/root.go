package main

import (
	"github.com/spf13/cobra"
)

// rootFlags holds global flag values shared by subcommands.
type rootFlags struct {
	configFile string
	baseDir    string
}

var flags rootFlags

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "mfpipe",
		Short:        "Build, run and plot an external groundwater-flow model",
		Long:         "mfpipe serializes a cross-section scenario into the external\nsolver's input-file set, runs the executable and reads back the\nbinary head results.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "scenario configuration file (yaml)")
	root.PersistentFlags().StringVar(&flags.baseDir, "dir", ".", "base directory for run workspaces and the run ledger")

	root.AddCommand(newRunCmd())
	root.AddCommand(newTimesCmd())
	root.AddCommand(newPlotCmd())
	root.AddCommand(newRunsCmd())
	root.AddCommand(newVersionCmd())
	return root
}
