package mf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Bas is the basic package file: boundary flags, no-flow marker and
// starting heads.
type Bas struct {
	Ibound [][]int32 // per layer, row-major
	Hnoflo float64
	Strt   [][]float64 // per layer, row-major
}

func (b *Bas) write(w io.Writer, name string) error {
	fmt.Fprintf(w, "# %s basic package file\n", name)
	fmt.Fprintln(w, "FREE")
	for _, ib := range b.Ibound {
		writeIntArray(w, ib)
	}
	fmt.Fprintf(w, "%14.6E\n", b.Hnoflo)
	for _, s := range b.Strt {
		writeFloatArray(w, s)
	}
	return nil
}

// LoadBas parses a basic package file; the grid shape comes from the
// discretization file.
func LoadBas(r io.Reader, nlay, nrow, ncol int) (*Bas, error) {
	l := newLiner(r)
	opt, err := l.next()
	if err != nil {
		return nil, fmt.Errorf("%w: bas options", ErrFormat)
	}
	if !strings.Contains(strings.ToUpper(opt), "FREE") {
		return nil, fmt.Errorf("%w: only free-format basic files supported", ErrFormat)
	}
	b := &Bas{
		Ibound: make([][]int32, nlay),
		Strt:   make([][]float64, nlay),
	}
	for k := 0; k < nlay; k++ {
		if b.Ibound[k], err = readIntArray(l, nrow*ncol); err != nil {
			return nil, err
		}
	}
	fs, err := l.fields()
	if err != nil || len(fs) < 1 {
		return nil, fmt.Errorf("%w: bas hnoflo", ErrFormat)
	}
	if b.Hnoflo, err = strconv.ParseFloat(fs[0], 64); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	for k := 0; k < nlay; k++ {
		if b.Strt[k], err = readFloatArray(l, nrow*ncol); err != nil {
			return nil, err
		}
	}
	return b, nil
}
