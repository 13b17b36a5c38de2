package mf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OcStep directs output for one (stress period, time step) pair.
type OcStep struct {
	Per, Step   int
	SaveHead    bool
	PrintBudget bool
}

// Oc is the word-style output-control file.
type Oc struct {
	HeadUnit int // binary heads file unit
	Steps    []OcStep
}

// DefaultOc saves heads for every time step of every stress period.
func DefaultOc(headUnit int, nper int, nstp []int) *Oc {
	oc := &Oc{HeadUnit: headUnit}
	for t := 0; t < nper; t++ {
		for s := 0; s < nstp[t]; s++ {
			oc.Steps = append(oc.Steps, OcStep{Per: t + 1, Step: s + 1, SaveHead: true, PrintBudget: true})
		}
	}
	return oc
}

func (oc *Oc) write(w io.Writer, name string) error {
	fmt.Fprintf(w, "# %s output control file\n", name)
	fmt.Fprintf(w, "HEAD SAVE UNIT %d\n", oc.HeadUnit)
	for _, s := range oc.Steps {
		fmt.Fprintf(w, "PERIOD %d STEP %d\n", s.Per, s.Step)
		if s.SaveHead {
			fmt.Fprintln(w, "   SAVE HEAD")
		}
		if s.PrintBudget {
			fmt.Fprintln(w, "   PRINT BUDGET")
		}
	}
	return nil
}

// LoadOc parses a word-style output-control file.
func LoadOc(r io.Reader) (*Oc, error) {
	l := newLiner(r)
	oc := &Oc{}
	var cur *OcStep
	for {
		ln, err := l.next()
		if err != nil {
			break
		}
		fs := strings.Fields(strings.ToUpper(ln))
		if len(fs) == 0 {
			continue
		}
		switch {
		case len(fs) == 4 && fs[0] == "HEAD" && fs[1] == "SAVE" && fs[2] == "UNIT":
			if oc.HeadUnit, err = strconv.Atoi(fs[3]); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFormat, err)
			}
		case len(fs) == 4 && fs[0] == "PERIOD" && fs[2] == "STEP":
			per, err1 := strconv.Atoi(fs[1])
			stp, err2 := strconv.Atoi(fs[3])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("%w: oc period/step record %q", ErrFormat, ln)
			}
			oc.Steps = append(oc.Steps, OcStep{Per: per, Step: stp})
			cur = &oc.Steps[len(oc.Steps)-1]
		case len(fs) == 2 && fs[0] == "SAVE" && fs[1] == "HEAD":
			if cur == nil {
				return nil, fmt.Errorf("%w: SAVE HEAD outside a period block", ErrFormat)
			}
			cur.SaveHead = true
		case len(fs) == 2 && fs[0] == "PRINT" && fs[1] == "BUDGET":
			if cur == nil {
				return nil, fmt.Errorf("%w: PRINT BUDGET outside a period block", ErrFormat)
			}
			cur.PrintBudget = true
		default:
			return nil, fmt.Errorf("%w: unrecognized output-control record %q", ErrFormat, ln)
		}
	}
	return oc, nil
}
