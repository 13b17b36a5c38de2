package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/andyrich/mfpipe"
	"github.com/andyrich/mfpipe/registry"
)

const ledgerFile = "runs.db"

func newRunCmd() *cobra.Command {
	var (
		workspace string
		exe       string
		plotOut   string
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Serialize the scenario, run the solver and read back heads",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScenario(flags.configFile)
			if err != nil {
				return err
			}
			if exe != "" {
				s.Exe = exe
			}
			if workspace == "" {
				// per-run directory; concurrent runs never share state
				workspace = filepath.Join(flags.baseDir, fmt.Sprintf("%s-%s", s.Name, uuid.NewString()[:8]))
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			p := &mfpipe.Pipeline{Scenario: s, Workspace: workspace, Verbose: true}
			res, err := p.Run(ctx)
			if err != nil {
				return err
			}

			recordRun(s, workspace, res)

			if !res.Success {
				fmt.Println(" solver did NOT converge:")
				for _, m := range tail(res.Messages, 10) {
					fmt.Println("   " + m)
				}
				return nil
			}
			fmt.Printf(" converged; %d saved time(s): %v\n", len(res.Times), res.Times)
			if plotOut != "" {
				if err := p.Render(res, plotOut); err != nil {
					return err
				}
				fmt.Println(" profile written to " + plotOut)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "explicit working directory (default: fresh per-run directory)")
	cmd.Flags().StringVar(&exe, "exe", "", "solver executable name or path")
	cmd.Flags().StringVar(&plotOut, "plot", "", "also render the head profile to this file")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the solve after this duration (0: no timeout)")
	return cmd
}

// recordRun appends the outcome to the run ledger; ledger trouble is
// reported but never fails a completed solve.
func recordRun(s mfpipe.Scenario, workspace string, res *mfpipe.Result) {
	db, err := registry.Open(filepath.Join(flags.baseDir, ledgerFile))
	if err != nil {
		fmt.Println(" warning: run ledger unavailable:", err)
		return
	}
	defer db.Close()
	msg := ""
	if n := len(res.Messages); n > 0 {
		msg = res.Messages[n-1]
	}
	if _, err := db.Record(registry.Run{
		Scenario: s.Name, Workspace: workspace, Executable: s.Exe,
		Success: res.Success, Message: msg,
	}); err != nil {
		fmt.Println(" warning: run not recorded:", err)
	}
}

func tail(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
