package mf

import (
	"fmt"
	"io"
	"strconv"
)

// Nwt carries the Newton solver tuning knobs. Their semantics belong to
// the external solver; they are written through verbatim.
type Nwt struct {
	Headtol    float64
	Fluxtol    float64
	Maxiterout int
	Thickfact  float64
	Linmeth    int
	Iprnwt     int
	Ibotav     int
	Options    string
}

// DefaultNwt mirrors the solver's documented SIMPLE defaults.
func DefaultNwt() *Nwt {
	return &Nwt{
		Headtol: 1e-4, Fluxtol: 500., Maxiterout: 100,
		Thickfact: 1e-5, Linmeth: 1, Iprnwt: 0, Ibotav: 0,
		Options: "SIMPLE",
	}
}

func (n *Nwt) write(w io.Writer, name string) error {
	fmt.Fprintf(w, "# %s newton solver file\n", name)
	fmt.Fprintf(w, "%14.6E%14.6E%10d%14.6E%10d%10d%10d  %s\n",
		n.Headtol, n.Fluxtol, n.Maxiterout, n.Thickfact, n.Linmeth, n.Iprnwt, n.Ibotav, n.Options)
	return nil
}

// LoadNwt parses a newton solver file.
func LoadNwt(r io.Reader) (*Nwt, error) {
	fs, err := newLiner(r).fields()
	if err != nil || len(fs) < 8 {
		return nil, fmt.Errorf("%w: nwt item 1", ErrFormat)
	}
	n := &Nwt{Options: fs[7]}
	if n.Headtol, err = strconv.ParseFloat(fs[0], 64); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if n.Fluxtol, err = strconv.ParseFloat(fs[1], 64); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if n.Maxiterout, err = strconv.Atoi(fs[2]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if n.Thickfact, err = strconv.ParseFloat(fs[3], 64); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if n.Linmeth, err = strconv.Atoi(fs[4]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if n.Iprnwt, err = strconv.Atoi(fs[5]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if n.Ibotav, err = strconv.Atoi(fs[6]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return n, nil
}
