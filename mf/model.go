package mf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File unit numbers bound in the name file.
const (
	unitList  = 2
	unitDis   = 11
	unitBas   = 13
	unitWel   = 20
	unitOc    = 14
	unitUpw   = 31
	unitNwt   = 32
	UnitHeads = 51
)

// NamEntry is one record of the name file.
type NamEntry struct {
	Ftype   string
	Unit    int
	Fname   string
	Replace bool
}

// Model aggregates the fixed input-file set for one scenario. Wel is
// optional; when nil no well file is written or named.
type Model struct {
	Name string
	Dis  *Dis
	Bas  *Bas
	Upw  *Upw
	Oc   *Oc
	Nwt  *Nwt
	Wel  *Wel
}

func (m *Model) fn(ext string) string { return m.Name + "." + ext }

// NamFile returns the name-file name the executable is pointed at.
func (m *Model) NamFile() string { return m.fn("nam") }

// HeadsFile returns the binary result file named by convention.
func (m *Model) HeadsFile() string { return m.fn("hds") }

// ListingFile returns the text listing file name.
func (m *Model) ListingFile() string { return m.fn("list") }

// Entries lists the name-file records in write order.
func (m *Model) Entries() []NamEntry {
	es := []NamEntry{
		{Ftype: "LIST", Unit: unitList, Fname: m.ListingFile()},
		{Ftype: "DIS", Unit: unitDis, Fname: m.fn("dis")},
		{Ftype: "BAS6", Unit: unitBas, Fname: m.fn("bas")},
		{Ftype: "UPW", Unit: unitUpw, Fname: m.fn("upw")},
	}
	if m.Wel != nil {
		es = append(es, NamEntry{Ftype: "WEL", Unit: unitWel, Fname: m.fn("wel")})
	}
	return append(es,
		NamEntry{Ftype: "NWT", Unit: unitNwt, Fname: m.fn("nwt")},
		NamEntry{Ftype: "OC", Unit: unitOc, Fname: m.fn("oc")},
		NamEntry{Ftype: "DATA(BINARY)", Unit: UnitHeads, Fname: m.HeadsFile(), Replace: true},
	)
}

func (m *Model) writeNam(w io.Writer) error {
	fmt.Fprintf(w, "# %s name file\n", m.Name)
	for _, e := range m.Entries() {
		if e.Replace {
			fmt.Fprintf(w, "%-14s%4d  %s REPLACE\n", e.Ftype, e.Unit, e.Fname)
		} else {
			fmt.Fprintf(w, "%-14s%4d  %s\n", e.Ftype, e.Unit, e.Fname)
		}
	}
	return nil
}

// LoadNam parses a name file into its records.
func LoadNam(r io.Reader) ([]NamEntry, error) {
	l := newLiner(r)
	var o []NamEntry
	for {
		fs, err := l.fields()
		if err != nil {
			break
		}
		if len(fs) < 3 {
			return nil, fmt.Errorf("%w: name-file record %v", ErrFormat, fs)
		}
		u, err := strconv.Atoi(fs[1])
		if err != nil {
			return nil, fmt.Errorf("%w: name-file unit: %v", ErrFormat, err)
		}
		e := NamEntry{Ftype: fs[0], Unit: u, Fname: fs[2]}
		if len(fs) > 3 && strings.EqualFold(fs[3], "REPLACE") {
			e.Replace = true
		}
		o = append(o, e)
	}
	return o, nil
}

// WriteInput writes the complete input set into dir, creating the
// directory if absent. Tuning values pass through unvalidated.
func (m *Model) WriteInput(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrFilesystem, err)
	}
	type inputFile struct {
		name  string
		write func(io.Writer, string) error
	}
	files := []inputFile{
		{m.NamFile(), func(w io.Writer, _ string) error { return m.writeNam(w) }},
		{m.fn("dis"), m.Dis.write},
		{m.fn("bas"), m.Bas.write},
		{m.fn("upw"), m.Upw.write},
		{m.fn("nwt"), m.Nwt.write},
		{m.fn("oc"), m.Oc.write},
	}
	if m.Wel != nil {
		files = append(files, inputFile{m.fn("wel"), m.Wel.write})
	}
	for _, ff := range files {
		if err := m.writeFile(filepath.Join(dir, ff.name), ff.write); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) writeFile(fp string, write func(io.Writer, string) error) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFilesystem, err)
	}
	defer f.Close()
	if err := write(f, m.Name); err != nil {
		return fmt.Errorf("%w: %v", ErrFilesystem, err)
	}
	return nil
}
