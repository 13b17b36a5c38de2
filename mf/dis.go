package mf

import (
	"fmt"
	"io"
	"strconv"

	"github.com/andyrich/mfpipe/grid"
)

// Time/length unit codes used on the discretization item-1 record.
const (
	TimeDays    = 4
	LengthMetre = 2
)

// Dis is the discretization file: grid shape, spacings, elevations and
// stress-period timing.
type Dis struct {
	Grid   *grid.Definition
	Nper   int
	Itmuni int
	Lenuni int
	Perlen []float64
	Nstp   []int
	Tsmult []float64
	Steady []bool
	Ref    grid.Reference
	Start  string
}

// SteadyStateDis wraps a grid in a single steady-state stress period.
func SteadyStateDis(gd *grid.Definition, ref grid.Reference) *Dis {
	return &Dis{
		Grid: gd, Nper: 1,
		Itmuni: TimeDays, Lenuni: LengthMetre,
		Perlen: []float64{1.}, Nstp: []int{1}, Tsmult: []float64{1.},
		Steady: []bool{true},
		Ref:    ref, Start: "1/1/1970",
	}
}

func (d *Dis) write(w io.Writer, name string) error {
	gd := d.Grid
	fmt.Fprintf(w, "# %s discretization file\n", name)
	fmt.Fprintf(w, "%s,%s\n", d.Ref.Header(), d.Start)
	fmt.Fprintf(w, "%10d%10d%10d%10d%10d%10d\n", gd.Nlay, gd.Nrow, gd.Ncol, d.Nper, d.Itmuni, d.Lenuni)
	for k := 0; k < gd.Nlay; k++ {
		fmt.Fprintf(w, "%3d", 0) // no confining beds
	}
	fmt.Fprintln(w)
	writeFloatArray(w, gd.Delr)
	writeFloatArray(w, gd.Delc)
	writeFloatArray(w, gd.Top)
	for k := 0; k < gd.Nlay; k++ {
		writeFloatArray(w, gd.Botm[k])
	}
	for t := 0; t < d.Nper; t++ {
		sstr := "SS"
		if !d.Steady[t] {
			sstr = "TR"
		}
		fmt.Fprintf(w, "%14f%14d%10f  %s\n", d.Perlen[t], d.Nstp[t], d.Tsmult[t], sstr)
	}
	return nil
}

// LoadDis parses a discretization file written by Dis.write.
func LoadDis(r io.Reader) (*Dis, error) {
	l := newLiner(r)
	fs, err := l.fields()
	if err != nil || len(fs) < 6 {
		return nil, fmt.Errorf("%w: dis item 1", ErrFormat)
	}
	ints := make([]int, 6)
	for i := 0; i < 6; i++ {
		if ints[i], err = strconv.Atoi(fs[i]); err != nil {
			return nil, fmt.Errorf("%w: dis item 1: %v", ErrFormat, err)
		}
	}
	nlay, nrow, ncol, nper := ints[0], ints[1], ints[2], ints[3]
	if _, err := l.fields(); err != nil { // laycbd, not retained
		return nil, fmt.Errorf("%w: dis laycbd", ErrFormat)
	}

	d := &Dis{
		Grid:   &grid.Definition{Nlay: nlay, Nrow: nrow, Ncol: ncol},
		Nper:   nper,
		Itmuni: ints[4], Lenuni: ints[5],
	}
	if d.Grid.Delr, err = readFloatArray(l, ncol); err != nil {
		return nil, err
	}
	if d.Grid.Delc, err = readFloatArray(l, nrow); err != nil {
		return nil, err
	}
	if d.Grid.Top, err = readFloatArray(l, nrow*ncol); err != nil {
		return nil, err
	}
	d.Grid.Botm = make([][]float64, nlay)
	for k := 0; k < nlay; k++ {
		if d.Grid.Botm[k], err = readFloatArray(l, nrow*ncol); err != nil {
			return nil, err
		}
	}
	d.Perlen = make([]float64, nper)
	d.Nstp = make([]int, nper)
	d.Tsmult = make([]float64, nper)
	d.Steady = make([]bool, nper)
	for t := 0; t < nper; t++ {
		fs, err := l.fields()
		if err != nil || len(fs) < 4 {
			return nil, fmt.Errorf("%w: dis stress period %d", ErrFormat, t+1)
		}
		if d.Perlen[t], err = strconv.ParseFloat(fs[0], 64); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if d.Nstp[t], err = strconv.Atoi(fs[1]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if d.Tsmult[t], err = strconv.ParseFloat(fs[2], 64); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		d.Steady[t] = fs[3] == "SS"
	}
	return d, nil
}
