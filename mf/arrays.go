// Package mf writes and reads the external solver's text input files,
// one explicit struct per file kind. Only the slice of the format
// exercised by the pipeline is reproduced: free-format files with
// CONSTANT and INTERNAL array control records.
package mf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrFilesystem flags a working directory that cannot be created or written.
var ErrFilesystem = errors.New("cannot write model input")

// ErrFormat flags an input file that cannot be parsed back.
var ErrFormat = errors.New("malformed model input file")

const perline = 10 // values per wrapped array line

func uniformF(v []float64) (float64, bool) {
	for _, x := range v {
		if x != v[0] {
			return 0., false
		}
	}
	return v[0], true
}

func uniformI(v []int32) (int32, bool) {
	for _, x := range v {
		if x != v[0] {
			return 0, false
		}
	}
	return v[0], true
}

func writeFloatArray(w io.Writer, v []float64) {
	if c, ok := uniformF(v); ok {
		fmt.Fprintf(w, "CONSTANT %15.7E\n", c)
		return
	}
	fmt.Fprintf(w, "INTERNAL 1.0 (FREE) -1\n")
	for i, x := range v {
		fmt.Fprintf(w, "%15.7E", x)
		if (i+1)%perline == 0 || i == len(v)-1 {
			fmt.Fprintln(w)
		}
	}
}

func writeIntArray(w io.Writer, v []int32) {
	if c, ok := uniformI(v); ok {
		fmt.Fprintf(w, "CONSTANT %10d\n", c)
		return
	}
	fmt.Fprintf(w, "INTERNAL 1 (FREE) -1\n")
	for i, x := range v {
		fmt.Fprintf(w, "%4d", x)
		if (i+1)%(perline*2) == 0 || i == len(v)-1 {
			fmt.Fprintln(w)
		}
	}
}

// liner walks an input file line by line, skipping comment records.
type liner struct {
	s *bufio.Scanner
}

func newLiner(r io.Reader) *liner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	return &liner{s: s}
}

// next returns the next non-comment line.
func (l *liner) next() (string, error) {
	for l.s.Scan() {
		ln := l.s.Text()
		if strings.HasPrefix(strings.TrimSpace(ln), "#") {
			continue
		}
		return ln, nil
	}
	if err := l.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// fields returns the whitespace-split tokens of the next line.
func (l *liner) fields() ([]string, error) {
	ln, err := l.next()
	if err != nil {
		return nil, err
	}
	return strings.Fields(ln), nil
}

func readFloatArray(l *liner, n int) ([]float64, error) {
	ctl, err := l.fields()
	if err != nil || len(ctl) == 0 {
		return nil, fmt.Errorf("%w: missing array control record", ErrFormat)
	}
	o := make([]float64, n)
	switch strings.ToUpper(ctl[0]) {
	case "CONSTANT":
		if len(ctl) < 2 {
			return nil, fmt.Errorf("%w: CONSTANT record without value", ErrFormat)
		}
		c, err := strconv.ParseFloat(ctl[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		for i := range o {
			o[i] = c
		}
	case "INTERNAL":
		for i := 0; i < n; {
			fs, err := l.fields()
			if err != nil {
				return nil, fmt.Errorf("%w: array truncated at %d of %d", ErrFormat, i, n)
			}
			for _, f := range fs {
				if i >= n {
					break
				}
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrFormat, err)
				}
				o[i] = v
				i++
			}
		}
	default:
		return nil, fmt.Errorf("%w: unsupported array control record %q", ErrFormat, ctl[0])
	}
	return o, nil
}

func readIntArray(l *liner, n int) ([]int32, error) {
	f, err := readFloatArray(l, n)
	if err != nil {
		return nil, err
	}
	o := make([]int32, n)
	for i, v := range f {
		o[i] = int32(v)
	}
	return o, nil
}
