package mf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WelCell is one pumping cell: one-based layer, row and column, and a
// volumetric rate (negative for extraction).
type WelCell struct {
	Lay, Row, Col int
	Q             float64
}

// Wel is the well stress package. Periods holds the cell list for
// each stress period; a nil list means no active wells that period.
type Wel struct {
	Ipakcb  int
	Options string
	Periods [][]WelCell
}

// Mxactw is the largest cell count over all stress periods.
func (wl *Wel) Mxactw() int {
	mx := 0
	for _, p := range wl.Periods {
		if len(p) > mx {
			mx = len(p)
		}
	}
	return mx
}

func (wl *Wel) write(w io.Writer, name string) error {
	fmt.Fprintf(w, "# %s well file\n", name)
	fmt.Fprintf(w, " %9d %9d", wl.Mxactw(), wl.Ipakcb)
	if wl.Options != "" {
		fmt.Fprintf(w, " %s", wl.Options)
	}
	fmt.Fprintln(w)
	for _, p := range wl.Periods {
		fmt.Fprintf(w, "%10d%10d\n", len(p), 0)
		for _, c := range p {
			fmt.Fprintf(w, "%10d%10d%10d%14.6E\n", c.Lay, c.Row, c.Col, c.Q)
		}
	}
	return nil
}

// LoadWel parses a well file holding nper stress periods. A negative
// cell count repeats the previous period's list.
func LoadWel(r io.Reader, nper int) (*Wel, error) {
	l := newLiner(r)
	fs, err := l.fields()
	if err != nil || len(fs) < 2 {
		return nil, fmt.Errorf("%w: wel item 2", ErrFormat)
	}
	wl := &Wel{}
	if wl.Ipakcb, err = strconv.Atoi(fs[1]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(fs) > 2 {
		wl.Options = strings.Join(fs[2:], " ")
	}
	var cur []WelCell
	for t := 0; t < nper; t++ {
		fs, err := l.fields()
		if err != nil {
			return nil, fmt.Errorf("%w: wel stress period %d", ErrFormat, t+1)
		}
		itmp, err := strconv.Atoi(fs[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		switch {
		case itmp < 0:
			// keep cur from the previous period
		case itmp == 0:
			cur = nil
		default:
			cur = make([]WelCell, itmp)
			for i := range cur {
				fs, err := l.fields()
				if err != nil || len(fs) < 4 {
					return nil, fmt.Errorf("%w: wel cell record, period %d", ErrFormat, t+1)
				}
				c := &cur[i]
				if c.Lay, err = strconv.Atoi(fs[0]); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrFormat, err)
				}
				if c.Row, err = strconv.Atoi(fs[1]); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrFormat, err)
				}
				if c.Col, err = strconv.Atoi(fs[2]); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrFormat, err)
				}
				if c.Q, err = strconv.ParseFloat(fs[3], 64); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrFormat, err)
				}
			}
		}
		wl.Periods = append(wl.Periods, cur)
	}
	return wl, nil
}
