package mfpipe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maseology/mmio"

	"github.com/andyrich/mfpipe/heads"
	"github.com/andyrich/mfpipe/mf"
	"github.com/andyrich/mfpipe/plot"
	"github.com/andyrich/mfpipe/solver"
)

// Engine runs the serialized input set in a working directory.
type Engine interface {
	Solve(ctx context.Context, workdir, namfile string) (*solver.Result, error)
}

// External is the default engine: the configured executable run as a
// subprocess.
type External struct {
	Exe string
}

func (e External) Solve(ctx context.Context, workdir, namfile string) (*solver.Result, error) {
	fp, err := solver.Find(e.Exe)
	if err != nil {
		return nil, err
	}
	return solver.Run(ctx, fp, workdir, namfile)
}

// Result is the outcome of one pipeline run.
type Result struct {
	Success   bool
	Messages  []string
	Times     []float64
	Heads     [][][]float64 // at the last available time
	HeadsFile string
}

// Pipeline serializes a scenario into a workspace, invokes the engine
// and deserializes the result. Strictly sequential; each stage gates
// the next.
type Pipeline struct {
	Scenario
	Workspace string
	Engine    Engine
	Verbose   bool
}

// Run executes configure, serialize, solve and deserialize.
// Non-convergence is reported in the Result, not as an error.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	tt := mmio.NewTimer()

	m, err := p.Scenario.Model()
	if err != nil {
		return nil, err
	}
	if err := m.WriteInput(p.Workspace); err != nil {
		return nil, err
	}

	// a stale result file must not survive into this run
	hfp := filepath.Join(p.Workspace, m.HeadsFile())
	if _, ok := mmio.FileExists(hfp); ok {
		if err := os.Remove(hfp); err != nil {
			return nil, fmt.Errorf("%w: stale result file: %v", mf.ErrFilesystem, err)
		}
	}
	if p.Verbose {
		tt.Lap("input set written to " + p.Workspace)
	}

	eng := p.Engine
	if eng == nil {
		eng = External{Exe: p.Scenario.Exe}
	}
	sres, err := eng.Solve(ctx, p.Workspace, m.NamFile())
	if err != nil {
		return nil, err
	}
	if p.Verbose {
		tt.Lap("solver finished")
	}
	res := &Result{Success: sres.Success, Messages: sres.Messages, HeadsFile: hfp}
	if !sres.Success {
		return res, nil
	}

	hf, err := heads.Open(hfp)
	if err != nil {
		return nil, err
	}
	res.Times = hf.Times()
	if res.Heads, err = hf.Heads(res.Times[len(res.Times)-1]); err != nil {
		return nil, err
	}
	if p.Verbose {
		tt.Lap(fmt.Sprintf("read %d saved time(s)", len(res.Times)))
	}
	return res, nil
}

// Render draws the head profile for the run result into fp.
func (p *Pipeline) Render(res *Result, fp string) error {
	if !res.Success || len(res.Heads) == 0 {
		return fmt.Errorf("mfpipe: no result heads to render")
	}
	gd, _, _, err := p.Section.Build()
	if err != nil {
		return err
	}
	return plot.Profile(gd.CellCenters(), res.Heads[0][0], p.Section.BaseProfile(), p.Name, fp)
}
