package heads

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerBytes(kstp, kper int32, totim float32, nrow, ncol, ilay int32) []byte {
	var b bytes.Buffer
	h := header{Kstp: kstp, Kper: kper, Pertim: totim, Totim: totim, Nrow: nrow, Ncol: ncol, Ilay: ilay}
	copy(h.Text[:], []byte("            HEAD"))
	binary.Write(&b, binary.LittleEndian, h)
	return b.Bytes()
}

func writeRecord(b *bytes.Buffer, totim float32, ilay int32, v []float32, nrow, ncol int32) {
	b.Write(headerBytes(1, 1, totim, nrow, ncol, ilay))
	binary.Write(b, binary.LittleEndian, v)
}

func writeTestFile(t *testing.T, b []byte) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "section.hds")
	require.NoError(t, os.WriteFile(fp, b, 0644))
	return fp
}

func profile(n int, left, right float32) []float32 {
	v := make([]float32, n)
	for j := range v {
		v[j] = left + (right-left)*float32(j)/float32(n-1)
	}
	return v
}

func TestTimesIdempotent(t *testing.T) {
	var b bytes.Buffer
	writeRecord(&b, 1., 1, profile(200, 23., 5.), 1, 200)
	writeRecord(&b, 2., 1, profile(200, 22., 5.), 1, 200)

	f, err := Open(writeTestFile(t, b.Bytes()))
	require.NoError(t, err)

	t1 := f.Times()
	t2 := f.Times()
	assert.Equal(t, []float64{1., 2.}, t1)
	assert.Equal(t, t1, t2)
}

func TestHeadsExactMatch(t *testing.T) {
	var b bytes.Buffer
	v := profile(200, 23., 5.)
	writeRecord(&b, 1., 1, v, 1, 200)

	f, err := Open(writeTestFile(t, b.Bytes()))
	require.NoError(t, err)

	h, err := f.Heads(1.)
	require.NoError(t, err)
	require.Len(t, h, 1)
	require.Len(t, h[0], 1)
	require.Len(t, h[0][0], 200)
	assert.InDelta(t, 23., h[0][0][0], 1e-6)
	assert.InDelta(t, 5., h[0][0][199], 1e-6)
}

func TestHeadsTimeNotFound(t *testing.T) {
	var b bytes.Buffer
	writeRecord(&b, 1., 1, profile(10, 23., 5.), 1, 10)

	f, err := Open(writeTestFile(t, b.Bytes()))
	require.NoError(t, err)

	for _, tm := range f.Times() {
		_, err := f.Heads(tm)
		assert.NoError(t, err)
	}
	_, err = f.Heads(3.5)
	assert.ErrorIs(t, err, ErrTimeNotFound)
}

func TestTruncatedAfterHeader(t *testing.T) {
	b := headerBytes(1, 1, 1., 1, 200, 1) // header only, no array

	_, err := Open(writeTestFile(t, b))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestTruncatedMidArray(t *testing.T) {
	var b bytes.Buffer
	writeRecord(&b, 1., 1, profile(200, 23., 5.), 1, 200)
	raw := b.Bytes()[:b.Len()-17] // drop part of the float array

	_, err := Open(writeTestFile(t, raw))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestBadRecordText(t *testing.T) {
	var b bytes.Buffer
	h := header{Kstp: 1, Kper: 1, Totim: 1., Nrow: 1, Ncol: 2, Ilay: 1}
	copy(h.Text[:], []byte("        DRAWDOWN"))
	binary.Write(&b, binary.LittleEndian, h)
	binary.Write(&b, binary.LittleEndian, []float32{1., 2.})

	_, err := Open(writeTestFile(t, b.Bytes()))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestMultiLayerAssembly(t *testing.T) {
	var b bytes.Buffer
	writeRecord(&b, 1., 1, []float32{1., 2., 3.}, 1, 3)
	writeRecord(&b, 1., 2, []float32{4., 5., 6.}, 1, 3)

	f, err := Open(writeTestFile(t, b.Bytes()))
	require.NoError(t, err)

	nlay, nrow, ncol := f.Shape()
	assert.Equal(t, []int{2, 1, 3}, []int{nlay, nrow, ncol})

	h, err := f.Heads(1.)
	require.NoError(t, err)
	assert.InDelta(t, 1., h[0][0][0], 1e-6)
	assert.InDelta(t, 6., h[1][0][2], 1e-6)
}

func TestEmptyFile(t *testing.T) {
	_, err := Open(writeTestFile(t, nil))
	assert.ErrorIs(t, err, ErrCorrupt)
}
