package mf

import (
	"fmt"
	"io"
	"strconv"
)

// Upw is the upstream-weighting flow package file: layer-type codes and
// hydraulic conductivities.
type Upw struct {
	Ipakcb int     // cell-by-cell budget unit; 0 disables
	Hdry   float64 // head assigned to cells that go dry
	Npupw  int
	Iphdry int
	Laytyp []int // per layer; nonzero selects the unconfined formulation
	Layavg []int
	Chani  []float64
	Layvka []int
	Laywet []int
	Hk     [][]float64 // per layer, row-major
	Vka    [][]float64
}

// DefaultUpw builds a single-layer package with uniform conductivity.
func DefaultUpw(laytyp, nrow, ncol int, hk float64) *Upw {
	nc := nrow * ncol
	u := make([]float64, nc)
	for i := range u {
		u[i] = hk
	}
	v := make([]float64, nc)
	copy(v, u)
	return &Upw{
		Hdry: -1e30, Iphdry: 0,
		Laytyp: []int{laytyp}, Layavg: []int{0},
		Chani: []float64{1.}, Layvka: []int{0}, Laywet: []int{0},
		Hk: [][]float64{u}, Vka: [][]float64{v},
	}
}

func writeFlagLine(w io.Writer, v []int) {
	for _, x := range v {
		fmt.Fprintf(w, "%3d", x)
	}
	fmt.Fprintln(w)
}

func (u *Upw) write(w io.Writer, name string) error {
	fmt.Fprintf(w, "# %s upstream weighting package file\n", name)
	fmt.Fprintf(w, "%10d%14.6E%10d%10d\n", u.Ipakcb, u.Hdry, u.Npupw, u.Iphdry)
	writeFlagLine(w, u.Laytyp)
	writeFlagLine(w, u.Layavg)
	for _, c := range u.Chani {
		fmt.Fprintf(w, "%10.3f", c)
	}
	fmt.Fprintln(w)
	writeFlagLine(w, u.Layvka)
	writeFlagLine(w, u.Laywet)
	for k := range u.Hk {
		writeFloatArray(w, u.Hk[k])
		writeFloatArray(w, u.Vka[k])
	}
	return nil
}

// LoadUpw parses an upstream-weighting file for the given grid shape.
func LoadUpw(r io.Reader, nlay, nrow, ncol int) (*Upw, error) {
	l := newLiner(r)
	fs, err := l.fields()
	if err != nil || len(fs) < 4 {
		return nil, fmt.Errorf("%w: upw item 1", ErrFormat)
	}
	u := &Upw{}
	if u.Ipakcb, err = strconv.Atoi(fs[0]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if u.Hdry, err = strconv.ParseFloat(fs[1], 64); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if u.Npupw, err = strconv.Atoi(fs[2]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if u.Iphdry, err = strconv.Atoi(fs[3]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	readFlags := func() ([]int, error) {
		fs, err := l.fields()
		if err != nil || len(fs) < nlay {
			return nil, fmt.Errorf("%w: upw layer flags", ErrFormat)
		}
		o := make([]int, nlay)
		for k := 0; k < nlay; k++ {
			if o[k], err = strconv.Atoi(fs[k]); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFormat, err)
			}
		}
		return o, nil
	}
	if u.Laytyp, err = readFlags(); err != nil {
		return nil, err
	}
	if u.Layavg, err = readFlags(); err != nil {
		return nil, err
	}
	if u.Chani, err = readFloatLine(l, nlay); err != nil {
		return nil, err
	}
	if u.Layvka, err = readFlags(); err != nil {
		return nil, err
	}
	if u.Laywet, err = readFlags(); err != nil {
		return nil, err
	}
	u.Hk = make([][]float64, nlay)
	u.Vka = make([][]float64, nlay)
	for k := 0; k < nlay; k++ {
		if u.Hk[k], err = readFloatArray(l, nrow*ncol); err != nil {
			return nil, err
		}
		if u.Vka[k], err = readFloatArray(l, nrow*ncol); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func readFloatLine(l *liner, n int) ([]float64, error) {
	fs, err := l.fields()
	if err != nil || len(fs) < n {
		return nil, fmt.Errorf("%w: expected %d values on line", ErrFormat, n)
	}
	o := make([]float64, n)
	for i := 0; i < n; i++ {
		if o[i], err = strconv.ParseFloat(fs[i], 64); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
	}
	return o, nil
}
