package grid

import "fmt"

// CrossSection holds the scenario constants for a 1-layer, 1-row
// unconfined section with a stepped impervious base.
type CrossSection struct {
	Ncol         int
	Delr, Delc   float64 // uniform cell width/depth
	Top          float64
	HLeft        float64 // constant head, first column
	HRight       float64 // constant head, last column
	Base         float64 // base elevation at the first column
	StepInterval int     // columns between base drops; 0 for a flat base
	StepDrop     float64 // decrement applied at each step
	Hk           float64 // hydraulic conductivity
	Laytyp       int     // layer-type code; 1 selects the unconfined formulation
}

// Build constructs the grid definition, the per-cell boundary flags and
// the starting head field. Pure computation.
func (cs CrossSection) Build() (*Definition, []int32, []float64, error) {
	if cs.Ncol < 2 {
		return nil, nil, nil, fmt.Errorf("%w: ncol %d", ErrConfig, cs.Ncol)
	}
	if cs.Delr <= 0. || cs.Delc <= 0. {
		return nil, nil, nil, fmt.Errorf("%w: cell dimensions %g x %g", ErrConfig, cs.Delr, cs.Delc)
	}
	if cs.Hk <= 0. {
		return nil, nil, nil, fmt.Errorf("%w: conductivity %g", ErrConfig, cs.Hk)
	}

	botm := cs.BaseProfile()
	gd := &Definition{
		Nlay: 1, Nrow: 1, Ncol: cs.Ncol,
		Delr: uniform(cs.Ncol, cs.Delr),
		Delc: uniform(1, cs.Delc),
		Top:  uniform(cs.Ncol, cs.Top),
		Botm: [][]float64{botm},
	}
	if err := gd.Validate(); err != nil {
		return nil, nil, nil, err
	}

	ib := make([]int32, cs.Ncol)
	for j := range ib {
		ib[j] = Active
	}
	ib[0], ib[cs.Ncol-1] = ConstantHead, ConstantHead

	strt := make([]float64, cs.Ncol)
	for j := range strt {
		strt[j] = cs.HLeft
	}
	strt[cs.Ncol-1] = cs.HRight

	return gd, ib, strt, nil
}

// BaseProfile returns the bottom elevation per column, stepped down by
// StepDrop every StepInterval columns.
func (cs CrossSection) BaseProfile() []float64 {
	b := make([]float64, cs.Ncol)
	for j := range b {
		b[j] = cs.Base
		if cs.StepInterval > 0 {
			b[j] -= float64(j/cs.StepInterval) * cs.StepDrop
		}
	}
	return b
}

func uniform(n int, v float64) []float64 {
	o := make([]float64, n)
	for i := range o {
		o[i] = v
	}
	return o
}
