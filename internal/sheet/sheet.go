// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet reads the story and section-property tables from the
// input workbook. Every table shares the same shape: a fixed two-row
// header, one record per row, reading stops at the first row whose key
// column is blank. The Story sheet is authored top-down and is reversed
// to bottom-up here, at the ingestion boundary, so the rest of the
// pipeline can assume ascending story order.
package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/model-builder/internal/ledger"
	"github.com/pdiddy/model-builder/pkg/types"
)

// Sheet names in the input workbook.
const (
	SheetStory        = "Story"
	SheetMaterial     = "Material"
	SheetRectColumn   = "Rectangular Column"
	SheetCircColumn   = "Circular Column"
	SheetWall         = "Wall"
	SheetCouplingBeam = "Coupling Beam"
	SheetSlab         = "Slab"
)

// headerRows is the number of header rows every table carries.
const headerRows = 2

// Workbook wraps an open .xlsx input file.
type Workbook struct {
	f    *excelize.File
	path string
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	return &Workbook{f: f, path: path}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// rows returns the data rows of a sheet: header skipped, stopped at the
// first blank key cell.
func (w *Workbook) rows(sheet string) ([][]string, error) {
	all, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, w.path, err)
	}
	var out [][]string
	for i := headerRows; i < len(all); i++ {
		if cell(all[i], 0) == "" {
			break
		}
		out = append(out, all[i])
	}
	return out, nil
}

// Stories reads the Story table and returns it bottom-up, ready for the
// ledger. Engine-facing story fields missing from the sheet get their
// defaults (master story, similar to none).
func (w *Workbook) Stories() ([]types.Story, error) {
	rows, err := w.rows(SheetStory)
	if err != nil {
		return nil, err
	}
	topDown := make([]types.Story, 0, len(rows))
	for _, row := range rows {
		level := cell(row, 0)
		height, err := num(row, 1)
		if err != nil {
			return nil, fmt.Errorf("story %q: parsing height: %w", level, err)
		}
		s := types.Story{
			Level:     level,
			Height:    height,
			IsMaster:  true,
			SimilarTo: types.NoSimilarStory,
		}
		if v := cell(row, 2); v != "" {
			s.IsMaster = parseBool(v)
		}
		if v := cell(row, 3); v != "" {
			s.SimilarTo = v
		}
		if v := cell(row, 4); v != "" {
			s.SpliceAbove = parseBool(v)
		}
		if v := cell(row, 5); v != "" {
			if s.SpliceHeight, err = num(row, 5); err != nil {
				return nil, fmt.Errorf("story %q: parsing splice height: %w", level, err)
			}
		}
		if v := cell(row, 6); v != "" {
			color, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("story %q: parsing color: %w", level, err)
			}
			s.Color = color
		}
		topDown = append(topDown, s)
	}
	return ledger.Ascending(topDown), nil
}

// Concrete reads the Material table.
func (w *Workbook) Concrete() ([]types.Concrete, error) {
	rows, err := w.rows(SheetMaterial)
	if err != nil {
		return nil, err
	}
	out := make([]types.Concrete, 0, len(rows))
	for _, row := range rows {
		name := cell(row, 0)
		fc, err := num(row, 1)
		if err != nil {
			return nil, fmt.Errorf("material %q: parsing fc: %w", name, err)
		}
		ec, err := num(row, 2)
		if err != nil {
			return nil, fmt.Errorf("material %q: parsing Ec: %w", name, err)
		}
		out = append(out, types.Concrete{Name: name, Fc: fc, Ec: ec})
	}
	return out, nil
}

// RectColumns reads the rectangular column table.
func (w *Workbook) RectColumns() ([]types.RectColumn, error) {
	rows, err := w.rows(SheetRectColumn)
	if err != nil {
		return nil, err
	}
	out := make([]types.RectColumn, 0, len(rows))
	for _, row := range rows {
		level := cell(row, 0)
		fc, err := num(row, 2)
		if err != nil {
			return nil, fmt.Errorf("rect column at %q: parsing fc: %w", level, err)
		}
		b, err := num(row, 4)
		if err != nil {
			return nil, fmt.Errorf("rect column at %q: parsing b: %w", level, err)
		}
		h, err := num(row, 5)
		if err != nil {
			return nil, fmt.Errorf("rect column at %q: parsing h: %w", level, err)
		}
		out = append(out, types.RectColumn{
			Level:    level,
			Material: cell(row, 1),
			Fc:       fc,
			Name:     cell(row, 3),
			B:        b,
			H:        h,
		})
	}
	return out, nil
}

// CircColumns reads the circular column table.
func (w *Workbook) CircColumns() ([]types.CircColumn, error) {
	rows, err := w.rows(SheetCircColumn)
	if err != nil {
		return nil, err
	}
	out := make([]types.CircColumn, 0, len(rows))
	for _, row := range rows {
		level := cell(row, 0)
		fc, err := num(row, 2)
		if err != nil {
			return nil, fmt.Errorf("circ column at %q: parsing fc: %w", level, err)
		}
		dia, err := num(row, 4)
		if err != nil {
			return nil, fmt.Errorf("circ column at %q: parsing diameter: %w", level, err)
		}
		out = append(out, types.CircColumn{
			Level:    level,
			Material: cell(row, 1),
			Fc:       fc,
			Name:     cell(row, 3),
			Diameter: dia,
		})
	}
	return out, nil
}

// Walls reads the wall table. Each sheet row carries an X and a Y
// variant; both become direction-qualified records, and a blank variant
// name is skipped.
func (w *Workbook) Walls() ([]types.Wall, error) {
	rows, err := w.rows(SheetWall)
	if err != nil {
		return nil, err
	}
	var out []types.Wall
	for _, row := range rows {
		level := cell(row, 0)
		fc, err := num(row, 2)
		if err != nil {
			return nil, fmt.Errorf("wall at %q: parsing fc: %w", level, err)
		}
		variants := []struct {
			nameCol, thkCol int
			dir             types.Direction
		}{
			{3, 4, types.DirectionX},
			{5, 6, types.DirectionY},
		}
		for _, v := range variants {
			name := cell(row, v.nameCol)
			if name == "" {
				continue
			}
			thk, err := num(row, v.thkCol)
			if err != nil {
				return nil, fmt.Errorf("wall %q at %q: parsing thickness: %w", name, level, err)
			}
			out = append(out, types.Wall{
				Level:     level,
				Material:  cell(row, 1),
				Fc:        fc,
				Name:      name,
				Thickness: thk,
				Direction: v.dir,
			})
		}
	}
	return out, nil
}

// CouplingBeams reads the coupling beam table, splitting the combined
// X/Y row the same way as Walls.
func (w *Workbook) CouplingBeams() ([]types.CouplingBeam, error) {
	rows, err := w.rows(SheetCouplingBeam)
	if err != nil {
		return nil, err
	}
	var out []types.CouplingBeam
	for _, row := range rows {
		level := cell(row, 0)
		fc, err := num(row, 2)
		if err != nil {
			return nil, fmt.Errorf("coupling beam at %q: parsing fc: %w", level, err)
		}
		variants := []struct {
			nameCol, bCol, hCol int
			dir                 types.Direction
		}{
			{3, 4, 5, types.DirectionX},
			{6, 7, 8, types.DirectionY},
		}
		for _, v := range variants {
			name := cell(row, v.nameCol)
			if name == "" {
				continue
			}
			b, err := num(row, v.bCol)
			if err != nil {
				return nil, fmt.Errorf("coupling beam %q at %q: parsing b: %w", name, level, err)
			}
			h, err := num(row, v.hCol)
			if err != nil {
				return nil, fmt.Errorf("coupling beam %q at %q: parsing h: %w", name, level, err)
			}
			out = append(out, types.CouplingBeam{
				Level:     level,
				Material:  cell(row, 1),
				Fc:        fc,
				Name:      name,
				B:         b,
				H:         h,
				Direction: v.dir,
			})
		}
	}
	return out, nil
}

// Slabs reads the slab table.
func (w *Workbook) Slabs() ([]types.Slab, error) {
	rows, err := w.rows(SheetSlab)
	if err != nil {
		return nil, err
	}
	out := make([]types.Slab, 0, len(rows))
	for _, row := range rows {
		level := cell(row, 0)
		fc, err := num(row, 2)
		if err != nil {
			return nil, fmt.Errorf("slab at %q: parsing fc: %w", level, err)
		}
		thk, err := num(row, 4)
		if err != nil {
			return nil, fmt.Errorf("slab at %q: parsing thickness: %w", level, err)
		}
		sdl, err := num(row, 5)
		if err != nil {
			return nil, fmt.Errorf("slab at %q: parsing sdl: %w", level, err)
		}
		live, err := num(row, 6)
		if err != nil {
			return nil, fmt.Errorf("slab at %q: parsing live: %w", level, err)
		}
		out = append(out, types.Slab{
			Level:     level,
			Material:  cell(row, 1),
			Fc:        fc,
			Name:      cell(row, 3),
			Thickness: thk,
			SDL:       sdl,
			Live:      live,
		})
	}
	return out, nil
}

// cell returns the trimmed cell at column i, or "" when the row is short.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// num parses the cell at column i as a float.
func num(row []string, i int) (float64, error) {
	v := cell(row, i)
	if v == "" {
		return 0, fmt.Errorf("column %d is empty", i+1)
	}
	return strconv.ParseFloat(v, 64)
}

// parseBool accepts the spellings spreadsheets produce for booleans.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}
