// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"io"

	"github.com/pdiddy/model-builder/pkg/types"
)

// Rebar defaults applied to every column section. The spreadsheet does
// not carry reinforcement columns; these match typical office practice
// and get refined inside the application afterwards.
const (
	rebarLongMat  = "A615Gr60"
	rebarTieMat   = "A615Gr60"
	rebarCover    = 1.5
	rebarBars2Dir = 3
	rebarBars3Dir = 3
	rebarNumCBars = 8
	rebarLongSize = "#9"
	rebarTieSize  = "#4"
	rebarTieSpace = 6.0
	rebarTieLegs  = 3
)

// Isotropic defaults for concrete. Ec comes from the material record;
// Poisson's ratio and the thermal coefficient are fixed.
const (
	concretePoisson = 0.2
	concreteThermal = 5.5e-6
)

// DefineStories pushes the full story table across the boundary in one
// call. Stories must already be ordered bottom-up. Non-zero status is
// fatal.
func DefineStories(m Modeler, base float64, stories []types.Story) error {
	n := len(stories)
	names := make([]string, n)
	heights := make([]float64, n)
	isMaster := make([]bool, n)
	similarTo := make([]string, n)
	spliceAbove := make([]bool, n)
	spliceHeight := make([]float64, n)
	colors := make([]int, n)
	for i, s := range stories {
		names[i] = s.Level
		heights[i] = s.Height
		isMaster[i] = s.IsMaster
		similarTo[i] = s.SimilarTo
		spliceAbove[i] = s.SpliceAbove
		spliceHeight[i] = s.SpliceHeight
		colors[i] = s.Color
	}
	if status := m.SetStories(base, names, heights, isMaster, similarTo, spliceAbove, spliceHeight, colors); status != 0 {
		return statusErr("defining story table", "stories", status)
	}
	return nil
}

// DefineConcrete defines each unique concrete material: base type,
// isotropic properties, then stress-strain parameters, as three
// separate boundary calls.
func DefineConcrete(m Modeler, mats []types.Concrete) error {
	seen := make(map[string]bool)
	for _, mat := range mats {
		if seen[mat.Name] {
			continue
		}
		seen[mat.Name] = true

		if status := m.SetMaterial(mat.Name, MatConcrete); status != 0 {
			return statusErr("defining material", mat.Name, status)
		}
		if status := m.SetMPIsotropic(mat.Name, mat.Ec, concretePoisson, concreteThermal); status != 0 {
			return statusErr("setting isotropic properties", mat.Name, status)
		}
		if status := m.SetConcrete(mat.Name, mat.Fc); status != 0 {
			return statusErr("setting concrete parameters", mat.Name, status)
		}
	}
	return nil
}

// DefineColumnSections defines rectangular and circular column frame
// sections, deduplicated by name, each followed by its rebar pattern.
func DefineColumnSections(m Modeler, rect []types.RectColumn, circ []types.CircColumn) error {
	seen := make(map[string]bool)
	for _, c := range rect {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true

		if status := m.SetRectangle(c.Name, c.Material, c.B, c.H); status != 0 {
			return statusErr("defining rectangular section", c.Name, status)
		}
		status := m.SetRebarColumn(c.Name, rebarLongMat, rebarTieMat,
			PatternRectangular, ConfineTies, rebarCover,
			0, rebarBars3Dir, rebarBars2Dir,
			rebarLongSize, rebarTieSize, rebarTieSpace,
			rebarTieLegs, rebarTieLegs, false)
		if status != 0 {
			return statusErr("assigning rebar", c.Name, status)
		}
	}
	for _, c := range circ {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true

		if status := m.SetCircle(c.Name, c.Material, c.Diameter); status != 0 {
			return statusErr("defining circular section", c.Name, status)
		}
		status := m.SetRebarColumn(c.Name, rebarLongMat, rebarTieMat,
			PatternCircular, ConfineTies, rebarCover,
			rebarNumCBars, 0, 0,
			rebarLongSize, rebarTieSize, rebarTieSpace,
			0, 0, false)
		if status != 0 {
			return statusErr("assigning rebar", c.Name, status)
		}
	}
	return nil
}

// DefineBeamSections defines coupling beam frame sections, deduplicated
// by name.
func DefineBeamSections(m Modeler, beams []types.CouplingBeam) error {
	seen := make(map[string]bool)
	for _, b := range beams {
		if seen[b.Name] {
			continue
		}
		seen[b.Name] = true

		if status := m.SetRectangle(b.Name, b.Material, b.H, b.B); status != 0 {
			return statusErr("defining beam section", b.Name, status)
		}
	}
	return nil
}

// DefineWallSections defines wall shell sections, deduplicated by name.
func DefineWallSections(m Modeler, walls []types.Wall) error {
	seen := make(map[string]bool)
	for _, w := range walls {
		if seen[w.Name] {
			continue
		}
		seen[w.Name] = true

		if status := m.SetWall(w.Name, wallPropSpecified, shellThin, w.Material, w.Thickness); status != 0 {
			return statusErr("defining wall section", w.Name, status)
		}
	}
	return nil
}

// DefineSlabSections defines slab shell sections, deduplicated by name.
func DefineSlabSections(m Modeler, slabs []types.Slab) error {
	seen := make(map[string]bool)
	for _, s := range slabs {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true

		if status := m.SetSlab(s.Name, slabTypeSlab, shellThin, s.Material, s.Thickness); status != 0 {
			return statusErr("defining slab section", s.Name, status)
		}
	}
	return nil
}

// DefineAll runs every definition stage in dependency order: present
// units first, then stories, materials, and sections. The first fatal
// status aborts.
func DefineAll(m Modeler, unitCode int, base float64, stories []types.Story, mats []types.Concrete, props SectionTables, w io.Writer) error {
	if status := m.SetPresentUnits(unitCode); status != 0 {
		return fmt.Errorf("setting present units to %d: engine status %d", unitCode, status)
	}
	if err := DefineStories(m, base, stories); err != nil {
		return err
	}
	fmt.Fprintf(w, "defined %d stories\n", len(stories))

	if err := DefineConcrete(m, mats); err != nil {
		return err
	}
	if err := DefineColumnSections(m, props.RectColumns, props.CircColumns); err != nil {
		return err
	}
	if err := DefineBeamSections(m, props.Beams); err != nil {
		return err
	}
	if err := DefineWallSections(m, props.Walls); err != nil {
		return err
	}
	if err := DefineSlabSections(m, props.Slabs); err != nil {
		return err
	}
	fmt.Fprintf(w, "defined %d materials and %d section records\n", len(mats), props.Count())
	return nil
}

// SectionTables bundles the property tables handed to DefineAll.
type SectionTables struct {
	RectColumns []types.RectColumn
	CircColumns []types.CircColumn
	Walls       []types.Wall
	Beams       []types.CouplingBeam
	Slabs       []types.Slab
}

// Count returns the total number of section property records.
func (t SectionTables) Count() int {
	return len(t.RectColumns) + len(t.CircColumns) + len(t.Walls) + len(t.Beams) + len(t.Slabs)
}
