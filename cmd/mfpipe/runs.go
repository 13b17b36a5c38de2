package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andyrich/mfpipe/registry"
)

func newRunsCmd() *cobra.Command {
	var scenario string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded solver runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := registry.Open(filepath.Join(flags.baseDir, ledgerFile))
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.List(scenario)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println(" no recorded runs")
				return nil
			}
			for _, r := range runs {
				status := "FAILED"
				if r.Success {
					status = "ok"
				}
				fmt.Printf(" %s  %-10s %-6s %s\n", r.ID[:8], r.Scenario, status, r.Workspace)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenario, "scenario", "s", "", "filter by scenario name")
	return cmd
}
