package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mfpipe version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("mfpipe " + version)
		},
	}
}
