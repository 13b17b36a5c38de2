// Package heads reads the external solver's binary head-save file: a
// sequence of (header, float32 array) records, one per saved layer,
// little endian, single precision.
package heads

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

var (
	// ErrTimeNotFound flags a request for a simulation time the file
	// does not contain.
	ErrTimeNotFound = errors.New("simulation time not found in result file")
	// ErrCorrupt flags a truncated file or a record that disagrees with
	// the declared array shape.
	ErrCorrupt = errors.New("corrupt result file")
)

// header is the fixed-size block preceding each array record.
type header struct {
	Kstp, Kper int32
	Pertim     float32
	Totim      float32
	Text       [16]byte
	Ncol, Nrow int32
	Ilay       int32
}

type record struct {
	h header
	v []float32
}

// File is an indexed head-save file. All records are read up front so
// repeated queries carry no side effects.
type File struct {
	recs       []record
	nlay       int
	nrow, ncol int
}

// Open reads and indexes fp.
func Open(fp string) (*File, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("heads.Open: %w", err)
	}
	return parse(bytes.NewReader(b))
}

func parse(r io.Reader) (*File, error) {
	f := &File{}
	lay := map[int32]bool{}
	for {
		var h header
		err := binary.Read(r, binary.LittleEndian, &h)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: partial record header: %v", ErrCorrupt, err)
		}
		if h.Ncol <= 0 || h.Nrow <= 0 || h.Ilay <= 0 {
			return nil, fmt.Errorf("%w: array descriptor (%d,%d,%d)", ErrCorrupt, h.Ilay, h.Nrow, h.Ncol)
		}
		if txt := strings.TrimSpace(string(h.Text[:])); txt != "HEAD" {
			return nil, fmt.Errorf("%w: unexpected record text %q", ErrCorrupt, txt)
		}
		if len(f.recs) == 0 {
			f.nrow, f.ncol = int(h.Nrow), int(h.Ncol)
		} else if int(h.Nrow) != f.nrow || int(h.Ncol) != f.ncol {
			return nil, fmt.Errorf("%w: record shape (%d,%d) differs from (%d,%d)", ErrCorrupt, h.Nrow, h.Ncol, f.nrow, f.ncol)
		}
		v := make([]float32, int(h.Nrow)*int(h.Ncol))
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("%w: array truncated: %v", ErrCorrupt, err)
		}
		lay[h.Ilay] = true
		f.recs = append(f.recs, record{h: h, v: v})
	}
	if len(f.recs) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrCorrupt)
	}
	f.nlay = len(lay)
	return f, nil
}

// Times lists the distinct simulated times in ascending order. Safe to
// call repeatedly.
func (f *File) Times() []float64 {
	seen := map[float64]bool{}
	var o []float64
	for _, rec := range f.recs {
		t := float64(rec.h.Totim)
		if !seen[t] {
			seen[t] = true
			o = append(o, t)
		}
	}
	sort.Float64s(o)
	return o
}

// Heads returns the (nlay, nrow, ncol) head field saved at exactly
// totim. No interpolation is performed.
func (f *File) Heads(totim float64) ([][][]float64, error) {
	var recs []record
	for _, rec := range f.recs {
		if float64(rec.h.Totim) == totim {
			recs = append(recs, rec)
		}
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: t=%g", ErrTimeNotFound, totim)
	}
	if len(recs) != f.nlay {
		return nil, fmt.Errorf("%w: %d of %d layers saved at t=%g", ErrCorrupt, len(recs), f.nlay, totim)
	}

	o := make([][][]float64, f.nlay)
	for _, rec := range recs {
		k := int(rec.h.Ilay) - 1
		if k < 0 || k >= f.nlay || o[k] != nil {
			return nil, fmt.Errorf("%w: layer index %d at t=%g", ErrCorrupt, rec.h.Ilay, totim)
		}
		if len(rec.v) != f.nrow*f.ncol {
			return nil, fmt.Errorf("%w: array length %d, want %d", ErrCorrupt, len(rec.v), f.nrow*f.ncol)
		}
		a := make([][]float64, f.nrow)
		for i := 0; i < f.nrow; i++ {
			a[i] = make([]float64, f.ncol)
			for j := 0; j < f.ncol; j++ {
				a[i][j] = float64(rec.v[i*f.ncol+j])
			}
		}
		o[k] = a
	}
	return o, nil
}

// Shape reports (nlay, nrow, ncol).
func (f *File) Shape() (int, int, int) { return f.nlay, f.nrow, f.ncol }
