// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/model-builder/pkg/types"
)

// fakeModeler records boundary calls and lets tests fail selected ones.
type fakeModeler struct {
	calls []string

	// failOn makes any call whose record contains the substring return
	// this status.
	failOn     string
	failStatus int

	frames int
	areas  int
}

func (f *fakeModeler) record(format string, args ...any) int {
	call := fmt.Sprintf(format, args...)
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.Contains(call, f.failOn) {
		return f.failStatus
	}
	return 0
}

func (f *fakeModeler) SetPresentUnits(unitCode int) int {
	return f.record("SetPresentUnits code=%d", unitCode)
}

func (f *fakeModeler) SetStories(base float64, names []string, heights []float64, isMaster []bool, similarTo []string, spliceAbove []bool, spliceHeight []float64, colors []int) int {
	return f.record("SetStories base=%v names=%v heights=%v similar=%v", base, names, heights, similarTo)
}

func (f *fakeModeler) SetMaterial(name string, matType int) int {
	return f.record("SetMaterial %s type=%d", name, matType)
}

func (f *fakeModeler) SetMPIsotropic(name string, e, poisson, thermal float64) int {
	return f.record("SetMPIsotropic %s e=%v", name, e)
}

func (f *fakeModeler) SetConcrete(name string, fc float64) int {
	return f.record("SetConcrete %s fc=%v", name, fc)
}

func (f *fakeModeler) SetRectangle(name, material string, depth, width float64) int {
	return f.record("SetRectangle %s %s %vx%v", name, material, depth, width)
}

func (f *fakeModeler) SetCircle(name, material string, diameter float64) int {
	return f.record("SetCircle %s %s d=%v", name, material, diameter)
}

func (f *fakeModeler) SetRebarColumn(name, longBarMat, confineMat string, pattern, confineType int, cover float64, numCBars, numR3Bars, numR2Bars int, longBarSize, tieBarSize string, tieSpacing float64, tieLegs2, tieLegs3 int, toBeDesigned bool) int {
	return f.record("SetRebarColumn %s pattern=%d", name, pattern)
}

func (f *fakeModeler) SetWall(name string, wallProp, shellType int, material string, thickness float64) int {
	return f.record("SetWall %s t=%v", name, thickness)
}

func (f *fakeModeler) SetSlab(name string, slabType, shellType int, material string, thickness float64) int {
	return f.record("SetSlab %s t=%v", name, thickness)
}

func (f *fakeModeler) AddFrame(xi, yi, zi, xj, yj, zj float64, section, userName string) (string, int) {
	status := f.record("AddFrame %s (%v,%v,%v)-(%v,%v,%v)", section, xi, yi, zi, xj, yj, zj)
	if status != 0 {
		return "", status
	}
	f.frames++
	return fmt.Sprintf("F%d", f.frames), 0
}

func (f *fakeModeler) AddArea(x, y, z []float64, section, userName string) (string, int) {
	status := f.record("AddArea %s n=%d", section, len(x))
	if status != 0 {
		return "", status
	}
	f.areas++
	return fmt.Sprintf("A%d", f.areas), 0
}

func (f *fakeModeler) SetUniformLoad(area, pattern string, value float64, dir int, replace bool) int {
	return f.record("SetUniformLoad %s %s v=%v dir=%d", area, pattern, value, dir)
}

func (f *fakeModeler) count(substr string) int {
	n := 0
	for _, c := range f.calls {
		if strings.Contains(c, substr) {
			n++
		}
	}
	return n
}

func TestDefineStories(t *testing.T) {
	m := &fakeModeler{}
	err := DefineStories(m, 0, []types.Story{
		{Level: "L1", Height: 10, IsMaster: true, SimilarTo: types.NoSimilarStory},
		{Level: "L2", Height: 12, SimilarTo: "L1"},
	})
	require.NoError(t, err)
	require.Len(t, m.calls, 1)
	assert.Contains(t, m.calls[0], "names=[L1 L2]")
	assert.Contains(t, m.calls[0], "heights=[10 12]")
	assert.Contains(t, m.calls[0], "similar=[None L1]")
}

func TestDefineStoriesFatalStatus(t *testing.T) {
	m := &fakeModeler{failOn: "SetStories", failStatus: 4}
	err := DefineStories(m, 0, []types.Story{{Level: "L1", Height: 10}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 4")
}

func TestDefineConcreteThreeCalls(t *testing.T) {
	m := &fakeModeler{}
	err := DefineConcrete(m, []types.Concrete{
		{Name: "5750 psi", Fc: 5750, Ec: 4322239},
		{Name: "5750 psi", Fc: 5750, Ec: 4322239}, // duplicate collapsed
	})
	require.NoError(t, err)
	require.Len(t, m.calls, 3)
	assert.Contains(t, m.calls[0], "SetMaterial")
	assert.Contains(t, m.calls[1], "SetMPIsotropic")
	assert.Contains(t, m.calls[2], "SetConcrete")
}

func TestDefineColumnSections(t *testing.T) {
	m := &fakeModeler{}
	err := DefineColumnSections(m,
		[]types.RectColumn{
			{Level: "L1", Name: "C30X30", Material: "5750 psi", B: 30, H: 30},
			{Level: "L2", Name: "C30X30", Material: "5750 psi", B: 30, H: 30},
		},
		[]types.CircColumn{{Level: "L1", Name: "C36DIA", Material: "5750 psi", Diameter: 36}},
	)
	require.NoError(t, err)

	// Same section name across levels defined once.
	assert.Equal(t, 1, m.count("SetRectangle C30X30"))
	assert.Equal(t, 1, m.count("SetCircle C36DIA"))
	assert.Equal(t, 1, m.count(fmt.Sprintf("SetRebarColumn C30X30 pattern=%d", PatternRectangular)))
	assert.Equal(t, 1, m.count(fmt.Sprintf("SetRebarColumn C36DIA pattern=%d", PatternCircular)))
}

func TestDefineSectionFatalStatus(t *testing.T) {
	m := &fakeModeler{failOn: "SetWall W18X", failStatus: 7}
	err := DefineWallSections(m, []types.Wall{{Name: "W18X", Thickness: 18}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"W18X"`)
	assert.Contains(t, err.Error(), "status 7")
}

func TestCreateColumnsContinuesPastFailure(t *testing.T) {
	m := &fakeModeler{failOn: "AddFrame BAD", failStatus: 3}
	var buf bytes.Buffer

	cols := []types.ColumnGeom{
		{Section: "C30X30", Level: "L1"},
		{Section: "BAD", Level: "L2"},
		{Section: "C30X30", Level: "L3"},
	}
	result := CreateColumns(m, cols, &buf)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, result.HasFailures())
	assert.Contains(t, buf.String(), "failed:")
	assert.Contains(t, buf.String(), "status 3")
	assert.Contains(t, buf.String(), "Batch summary: 2 columns created, 1 failed (total: 3)")
}

func TestCreateSlabsAssignsLoads(t *testing.T) {
	m := &fakeModeler{}
	var buf bytes.Buffer

	slabs := []types.SlabGeom{{
		Name:    "S1_L1",
		Section: "S8",
		Level:   "L1",
		X:       []float64{0, 120, 120, 0},
		Y:       []float64{0, 0, 120, 120},
		Z:       []float64{120, 120, 120, 120},
		SDL:     20.0 / 144,
		Live:    40.0 / 144,
	}}
	result := CreateSlabs(m, slabs, LoadPatterns{Dead: "SDL", Live: "Live"}, &buf)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, m.count("SetUniformLoad A1 SDL"))
	assert.Equal(t, 1, m.count("SetUniformLoad A1 Live"))
	assert.Equal(t, 2, m.count(fmt.Sprintf("dir=%d", LoadDirGravity)))
}

func TestCreateSlabsSkipsZeroLoads(t *testing.T) {
	m := &fakeModeler{}
	var buf bytes.Buffer

	slabs := []types.SlabGeom{{
		Name: "S1_", Section: "Default",
		X: []float64{0, 1, 1}, Y: []float64{0, 0, 1}, Z: []float64{10, 10, 10},
	}}
	CreateSlabs(m, slabs, LoadPatterns{Dead: "SDL", Live: "Live"}, &buf)
	assert.Zero(t, m.count("SetUniformLoad"))
}

func TestDefineAllOrder(t *testing.T) {
	m := &fakeModeler{}
	var buf bytes.Buffer

	err := DefineAll(m, 1, 0,
		[]types.Story{{Level: "L1", Height: 10}},
		[]types.Concrete{{Name: "5750 psi", Fc: 5750}},
		SectionTables{
			RectColumns: []types.RectColumn{{Name: "C30X30"}},
			Walls:       []types.Wall{{Name: "W18X"}},
			Slabs:       []types.Slab{{Name: "S8"}},
		}, &buf)
	require.NoError(t, err)

	// Present units first, then stories, materials, sections.
	require.NotEmpty(t, m.calls)
	assert.Contains(t, m.calls[0], "SetPresentUnits code=1")
	assert.Contains(t, m.calls[1], "SetStories")
	assert.Contains(t, m.calls[2], "SetMaterial")
	assert.Contains(t, buf.String(), "defined 1 stories")
}

func TestDefineAllPresentUnitsFatal(t *testing.T) {
	m := &fakeModeler{failOn: "SetPresentUnits", failStatus: 2}
	var buf bytes.Buffer

	err := DefineAll(m, 9, 0,
		[]types.Story{{Level: "L1", Height: 3}}, nil, SectionTables{}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 2")

	// Nothing else crossed the boundary after the failure.
	require.Len(t, m.calls, 1)
}
