// Package mfpipe drives an external groundwater-flow engine end to
// end: build a cross-section model, write its input-file set, run the
// executable, read back the binary heads and render the profile.
package mfpipe

import (
	"fmt"

	"github.com/andyrich/mfpipe/grid"
	"github.com/andyrich/mfpipe/mf"
)

// Scenario collects everything needed for one run.
type Scenario struct {
	Name    string
	Section grid.CrossSection
	Ref     grid.Reference
	Nwt     *mf.Nwt
	Wells   []mf.WelCell // pumping cells, applied every stress period
	Exe     string       // solver executable name or path
}

// DefaultScenario is the unconfined stepped-base reference section.
func DefaultScenario() Scenario {
	return Scenario{
		Name: "section",
		Section: grid.CrossSection{
			Ncol: 200, Delr: 50., Delc: 1., Top: 25.,
			HLeft: 23., HRight: 5.,
			Base: 20., StepInterval: 40, StepDrop: 5.,
			Hk: 1e-4, Laytyp: 1,
		},
		Nwt: mf.DefaultNwt(),
	}
}

// Model assembles the input-file set for the scenario.
func (s Scenario) Model() (*mf.Model, error) {
	gd, ib, strt, err := s.Section.Build()
	if err != nil {
		return nil, err
	}
	dis := mf.SteadyStateDis(gd, s.Ref)
	nwt := s.Nwt
	if nwt == nil {
		nwt = mf.DefaultNwt()
	}
	name := s.Name
	if name == "" {
		return nil, fmt.Errorf("%w: empty scenario name", grid.ErrConfig)
	}
	var wel *mf.Wel
	if len(s.Wells) > 0 {
		for _, c := range s.Wells {
			if c.Lay < 1 || c.Lay > gd.Nlay || c.Row < 1 || c.Row > gd.Nrow || c.Col < 1 || c.Col > gd.Ncol {
				return nil, fmt.Errorf("%w: well cell (%d,%d,%d) outside the grid", grid.ErrConfig, c.Lay, c.Row, c.Col)
			}
		}
		wel = &mf.Wel{Periods: make([][]mf.WelCell, dis.Nper)}
		for t := range wel.Periods {
			wel.Periods[t] = s.Wells
		}
	}
	return &mf.Model{
		Name: name,
		Dis:  dis,
		Bas:  &mf.Bas{Ibound: [][]int32{ib}, Hnoflo: -999.99, Strt: [][]float64{strt}},
		Upw:  mf.DefaultUpw(s.Section.Laytyp, gd.Nrow, gd.Ncol, s.Section.Hk),
		Oc:   mf.DefaultOc(mf.UnitHeads, dis.Nper, dis.Nstp),
		Nwt:  nwt,
		Wel:  wel,
	}, nil
}
