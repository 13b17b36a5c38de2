package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSection() CrossSection {
	return CrossSection{
		Ncol: 200, Delr: 50., Delc: 1., Top: 25.,
		HLeft: 23., HRight: 5.,
		Base: 20., StepInterval: 40, StepDrop: 5.,
		Hk: 1e-4, Laytyp: 1,
	}
}

func TestCellCenters(t *testing.T) {
	tests := []struct {
		name string
		ncol int
		delr float64
	}{
		{name: "two columns", ncol: 2, delr: 50.},
		{name: "reference section", ncol: 200, delr: 50.},
		{name: "odd spacing", ncol: 17, delr: 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := testSection()
			cs.Ncol, cs.Delr = tt.ncol, tt.delr
			gd, _, _, err := cs.Build()
			require.NoError(t, err)

			x := gd.CellCenters()
			require.Len(t, x, tt.ncol)
			assert.InDelta(t, tt.delr/2., x[0], 1e-9)
			for j := 1; j < len(x); j++ {
				assert.Greater(t, x[j], x[j-1])
				assert.InDelta(t, tt.delr, x[j]-x[j-1], 1e-9)
			}
		})
	}
}

func TestBoundaryFlags(t *testing.T) {
	_, ib, _, err := testSection().Build()
	require.NoError(t, err)

	assert.Equal(t, ConstantHead, ib[0])
	assert.Equal(t, ConstantHead, ib[len(ib)-1])
	for j := 1; j < len(ib)-1; j++ {
		assert.Equal(t, Active, ib[j], "interior cell %d", j)
	}
}

func TestBaseProfile(t *testing.T) {
	cs := testSection()
	b := cs.BaseProfile()

	assert.InDelta(t, 20., b[0], 1e-9)
	assert.InDelta(t, 20., b[39], 1e-9)
	assert.InDelta(t, 15., b[40], 1e-9)
	assert.InDelta(t, 10., b[80], 1e-9)
	assert.InDelta(t, 5., b[120], 1e-9)
	assert.InDelta(t, 0., b[160], 1e-9)
	assert.InDelta(t, 0., b[199], 1e-9)
	for j := 1; j < len(b); j++ {
		assert.LessOrEqual(t, b[j], b[j-1])
		assert.LessOrEqual(t, b[j], cs.Top)
	}
}

func TestBuildRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*CrossSection)
	}{
		{name: "one column", mod: func(cs *CrossSection) { cs.Ncol = 1 }},
		{name: "zero columns", mod: func(cs *CrossSection) { cs.Ncol = 0 }},
		{name: "zero width", mod: func(cs *CrossSection) { cs.Delr = 0. }},
		{name: "negative conductivity", mod: func(cs *CrossSection) { cs.Hk = -1. }},
		{name: "base above top", mod: func(cs *CrossSection) { cs.Base = 30. }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := testSection()
			tt.mod(&cs)
			_, _, _, err := cs.Build()
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestStartingHeads(t *testing.T) {
	cs := testSection()
	_, _, strt, err := cs.Build()
	require.NoError(t, err)
	assert.InDelta(t, 23., strt[0], 1e-9)
	assert.InDelta(t, 5., strt[cs.Ncol-1], 1e-9)
}
