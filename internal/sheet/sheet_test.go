// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/model-builder/pkg/types"
)

// writeWorkbook builds a workbook in the fixed input layout: two header
// rows, then data rows, per sheet.
func writeWorkbook(t *testing.T, sheets map[string][][]any) string {
	t.Helper()
	f := excelize.NewFile()
	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for r, row := range rows {
			for c, v := range row {
				cellName, err := excelize.CoordinatesToCellName(c+1, r+3) // rows 1-2 are headers
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, cellName, v))
			}
		}
	}
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestStories(t *testing.T) {
	// Sheet order is top-down, as authored.
	path := writeWorkbook(t, map[string][][]any{
		SheetStory: {
			{"L3", 12.0},
			{"L2", 11.0},
			{"L1", 10.0},
		},
	})

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	stories, err := w.Stories()
	require.NoError(t, err)
	require.Len(t, stories, 3)

	// Reversed to bottom-up on load.
	assert.Equal(t, "L1", stories[0].Level)
	assert.Equal(t, 10.0, stories[0].Height)
	assert.Equal(t, "L3", stories[2].Level)

	// Engine defaults filled in.
	assert.True(t, stories[0].IsMaster)
	assert.Equal(t, types.NoSimilarStory, stories[0].SimilarTo)
	assert.False(t, stories[0].SpliceAbove)
}

func TestStoriesOptionalColumns(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		SheetStory: {
			{"L2", 10.0, "No", "L1", "Yes", 2.5, 255},
			{"L1", 10.0},
		},
	})

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	stories, err := w.Stories()
	require.NoError(t, err)
	require.Len(t, stories, 2)

	l2 := stories[1]
	assert.False(t, l2.IsMaster)
	assert.Equal(t, "L1", l2.SimilarTo)
	assert.True(t, l2.SpliceAbove)
	assert.Equal(t, 2.5, l2.SpliceHeight)
	assert.Equal(t, 255, l2.Color)
}

func TestStopsAtBlankKey(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		SheetStory: {
			{"L2", 10.0},
			{"L1", 10.0},
			{"", 99.0},
			{"L0", 10.0}, // below the blank key: never read
		},
	})

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	stories, err := w.Stories()
	require.NoError(t, err)
	assert.Len(t, stories, 2)
}

func TestConcrete(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		SheetMaterial: {
			{"5750 psi", 5750.0, 4322239.003},
		},
	})

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	mats, err := w.Concrete()
	require.NoError(t, err)
	require.Len(t, mats, 1)
	assert.Equal(t, "5750 psi", mats[0].Name)
	assert.Equal(t, 5750.0, mats[0].Fc)
	assert.InDelta(t, 4322239.003, mats[0].Ec, 1e-6)
}

func TestColumnsTables(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		SheetRectColumn: {
			{"L1", "5750 psi", 5750.0, "C30X30", 30.0, 30.0},
		},
		SheetCircColumn: {
			{"L1", "5750 psi", 5750.0, "C36DIA", 36.0},
		},
	})

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	rect, err := w.RectColumns()
	require.NoError(t, err)
	require.Len(t, rect, 1)
	assert.Equal(t, types.RectColumn{
		Level: "L1", Material: "5750 psi", Fc: 5750, Name: "C30X30", B: 30, H: 30,
	}, rect[0])

	circ, err := w.CircColumns()
	require.NoError(t, err)
	require.Len(t, circ, 1)
	assert.Equal(t, "C36DIA", circ[0].Name)
	assert.Equal(t, 36.0, circ[0].Diameter)
}

func TestWallsSplitDirections(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		SheetWall: {
			{"L1", "5750 psi", 5750.0, "W18X", 18.0, "W16Y", 16.0},
			{"L2", "5750 psi", 5750.0, "W18X", 18.0, "", ""},
		},
	})

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	walls, err := w.Walls()
	require.NoError(t, err)
	require.Len(t, walls, 3)

	assert.Equal(t, types.DirectionX, walls[0].Direction)
	assert.Equal(t, "W18X", walls[0].Name)
	assert.Equal(t, types.DirectionY, walls[1].Direction)
	assert.Equal(t, "W16Y", walls[1].Name)
	assert.Equal(t, 16.0, walls[1].Thickness)

	// Blank Y variant on L2 skipped.
	assert.Equal(t, "L2", walls[2].Level)
	assert.Equal(t, types.DirectionX, walls[2].Direction)
}

func TestCouplingBeamsSplitDirections(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		SheetCouplingBeam: {
			{"L1", "5750 psi", 5750.0, "CBX24", 24.0, 36.0, "CBY20", 20.0, 30.0},
		},
	})

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	beams, err := w.CouplingBeams()
	require.NoError(t, err)
	require.Len(t, beams, 2)
	assert.Equal(t, "CBX24", beams[0].Name)
	assert.Equal(t, 24.0, beams[0].B)
	assert.Equal(t, 36.0, beams[0].H)
	assert.Equal(t, types.DirectionY, beams[1].Direction)
}

func TestSlabs(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		SheetSlab: {
			{"L1", "5750 psi", 5750.0, "S8", 8.0, 20.0, 40.0},
		},
	})

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	slabs, err := w.Slabs()
	require.NoError(t, err)
	require.Len(t, slabs, 1)
	assert.Equal(t, 20.0, slabs[0].SDL)
	assert.Equal(t, 40.0, slabs[0].Live)
}

func TestOpenMissingWorkbook(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}

func TestBadHeight(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		SheetStory: {
			{"L1", "tall"},
		},
	})

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Stories()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "L1")
}
