package grid

import (
	"errors"
	"fmt"
)

// ErrConfig flags an invalid scenario description.
var ErrConfig = errors.New("invalid grid configuration")

// Cell boundary codes, following the solver's IBOUND convention.
const (
	Inactive     int32 = 0
	Active       int32 = 1
	ConstantHead int32 = -1
)

// Definition describes a structured (layer,row,column) model grid.
// Per-layer arrays are row-major flattened to Nrow*Ncol.
type Definition struct {
	Nlay, Nrow, Ncol int
	Delr, Delc       []float64 // column/row spacings
	Top              []float64 // top of layer 1
	Botm             [][]float64
}

func (gd *Definition) Ncells() int { return gd.Nlay * gd.Nrow * gd.Ncol }

// Validate checks grid shape and elevations.
func (gd *Definition) Validate() error {
	if gd.Ncol < 2 {
		return fmt.Errorf("%w: need at least 2 columns for boundary cells, got %d", ErrConfig, gd.Ncol)
	}
	if gd.Nlay < 1 || gd.Nrow < 1 {
		return fmt.Errorf("%w: nlay %d nrow %d", ErrConfig, gd.Nlay, gd.Nrow)
	}
	if len(gd.Delr) != gd.Ncol || len(gd.Delc) != gd.Nrow {
		return fmt.Errorf("%w: spacing lengths (%d,%d) do not match (%d,%d)", ErrConfig, len(gd.Delr), len(gd.Delc), gd.Ncol, gd.Nrow)
	}
	for _, w := range gd.Delr {
		if w <= 0. {
			return fmt.Errorf("%w: non-positive column width %g", ErrConfig, w)
		}
	}
	for _, w := range gd.Delc {
		if w <= 0. {
			return fmt.Errorf("%w: non-positive row width %g", ErrConfig, w)
		}
	}
	nc := gd.Nrow * gd.Ncol
	if len(gd.Top) != nc || len(gd.Botm) != gd.Nlay {
		return fmt.Errorf("%w: elevation array shape", ErrConfig)
	}
	for k, b := range gd.Botm {
		if len(b) != nc {
			return fmt.Errorf("%w: botm layer %d length %d", ErrConfig, k+1, len(b))
		}
	}
	if !gd.positiveThickness() {
		return fmt.Errorf("%w: zero or negative cell thickness", ErrConfig)
	}
	return nil
}

// CellCenters returns the Ncol cell-centre x positions along a row.
func (gd *Definition) CellCenters() []float64 {
	x := make([]float64, gd.Ncol)
	for j := range x {
		if j == 0 {
			x[j] = gd.Delr[j] / 2.
		} else {
			x[j] = x[j-1] + (gd.Delr[j]+gd.Delr[j-1])/2.
		}
	}
	return x
}

// Thickness returns per-layer cell thicknesses.
func (gd *Definition) Thickness() [][]float64 {
	nc := gd.Nrow * gd.Ncol
	thk := make([][]float64, gd.Nlay)
	for k := range thk {
		thk[k] = make([]float64, nc)
		for i := 0; i < nc; i++ {
			if k == 0 {
				thk[k][i] = gd.Top[i] - gd.Botm[k][i]
			} else {
				thk[k][i] = gd.Botm[k-1][i] - gd.Botm[k][i]
			}
		}
	}
	return thk
}

func (gd *Definition) positiveThickness() bool {
	for _, lt := range gd.Thickness() {
		for _, t := range lt {
			if t <= 0. {
				return false
			}
		}
	}
	return true
}
