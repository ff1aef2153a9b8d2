// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extrude turns 2D plan primitives into 3D element geometry. Two
// strategies share the section resolver and the single unit-conversion
// point: Engine extrudes into explicit story bands (per-story plans),
// Reconciler extrudes blind through the whole height stack and recovers
// story labels by elevation lookup afterwards (shared whole-building
// plan).
//
// All inputs are in story input units. Conversion to model units happens
// here, exactly once, as each geometry record is finalized; nothing
// upstream converts, and nothing downstream converts again.
package extrude

import (
	"fmt"

	"github.com/pdiddy/model-builder/internal/ledger"
	"github.com/pdiddy/model-builder/internal/units"
	"github.com/pdiddy/model-builder/pkg/types"
)

// Engine extrudes plan primitives into explicit story bands. For the
// per-story plan workflow the caller passes a single band; for a shared
// plan replicated across the building it passes all of them.
type Engine struct {
	Units units.Config
	Props Props
}

// Columns emits one column per point per band, floor to ceiling.
func (e Engine) Columns(points []types.Point2D, bands []ledger.Band) []types.ColumnGeom {
	var out []types.ColumnGeom
	for _, pt := range points {
		for _, band := range bands {
			section := e.Props.ColumnSection(band.Level)
			out = append(out, columnGeom(e.Units, pt.X, pt.Y, band.Floor, band.Ceiling, section, band.Level))
		}
	}
	return out
}

// Walls emits one 4-vertex quad per line per band.
func (e Engine) Walls(lines []types.Line2D, bands []ledger.Band, axis types.Direction) []types.WallGeom {
	var out []types.WallGeom
	for _, ln := range lines {
		for _, band := range bands {
			section := e.Props.WallSection(band.Level, axis)
			out = append(out, wallGeom(e.Units, ln, band.Floor, band.Ceiling, section, band.Level))
		}
	}
	return out
}

// Beams emits one beam per line per band, at the band ceiling only:
// coupling beams live at the floor slab, not through the story height.
func (e Engine) Beams(lines []types.Line2D, bands []ledger.Band, axis types.Direction) []types.BeamGeom {
	var out []types.BeamGeom
	for _, ln := range lines {
		for _, band := range bands {
			section := e.Props.BeamSection(band.Level, axis)
			out = append(out, beamGeom(e.Units, ln, band.Ceiling, section, band.Level))
		}
	}
	return out
}

// Slabs emits one slab per polygon per band at the band ceiling,
// carrying the matched record's area loads, or zero loads when no
// record matches.
func (e Engine) Slabs(polys []types.Polygon2D, bands []ledger.Band) []types.SlabGeom {
	var out []types.SlabGeom
	for i, poly := range polys {
		for _, band := range bands {
			out = append(out, e.slab(poly, i, band.Level, band.Ceiling))
		}
	}
	return out
}

func (e Engine) slab(poly types.Polygon2D, idx int, level string, ceiling float64) types.SlabGeom {
	section := DefaultSection
	var sdl, live float64
	if rec, ok := e.Props.SlabFor(level); ok {
		section = rec.Name
		sdl = rec.SDL
		live = rec.Live
	}
	g := slabGeom(e.Units, poly, ceiling, section, level)
	g.Name = fmt.Sprintf("S%d_%s", idx+1, level)
	g.SDL = e.Units.ToModelLoad(sdl, true)
	g.Live = e.Units.ToModelLoad(live, true)
	return g
}

// --- geometry finalization: the one unit-conversion point ---

func columnGeom(u units.Config, x, y, zb, zt float64, section, level string) types.ColumnGeom {
	return types.ColumnGeom{
		Start:   types.Point3D{X: u.ToModelLength(x), Y: u.ToModelLength(y), Z: u.ToModelLength(zb)},
		End:     types.Point3D{X: u.ToModelLength(x), Y: u.ToModelLength(y), Z: u.ToModelLength(zt)},
		Section: section,
		Level:   level,
	}
}

func beamGeom(u units.Config, ln types.Line2D, z float64, section, level string) types.BeamGeom {
	return types.BeamGeom{
		Start:   types.Point3D{X: u.ToModelLength(ln.StartX), Y: u.ToModelLength(ln.StartY), Z: u.ToModelLength(z)},
		End:     types.Point3D{X: u.ToModelLength(ln.EndX), Y: u.ToModelLength(ln.EndY), Z: u.ToModelLength(z)},
		Section: section,
		Level:   level,
	}
}

// wallGeom builds the quad in the fixed winding order start-bottom,
// end-bottom, end-top, start-top; downstream area orientation depends
// on it.
func wallGeom(u units.Config, ln types.Line2D, zb, zt float64, section, level string) types.WallGeom {
	x1, y1 := u.ToModelLength(ln.StartX), u.ToModelLength(ln.StartY)
	x2, y2 := u.ToModelLength(ln.EndX), u.ToModelLength(ln.EndY)
	zbm, ztm := u.ToModelLength(zb), u.ToModelLength(zt)
	return types.WallGeom{
		X:       []float64{x1, x2, x2, x1},
		Y:       []float64{y1, y2, y2, y1},
		Z:       []float64{zbm, zbm, ztm, ztm},
		Section: section,
		Level:   level,
	}
}

func slabGeom(u units.Config, poly types.Polygon2D, z float64, section, level string) types.SlabGeom {
	n := len(poly.Vertices)
	g := types.SlabGeom{
		X:       make([]float64, n),
		Y:       make([]float64, n),
		Z:       make([]float64, n),
		Section: section,
		Level:   level,
	}
	zm := u.ToModelLength(z)
	for i, v := range poly.Vertices {
		g.X[i] = u.ToModelLength(v.X)
		g.Y[i] = u.ToModelLength(v.Y)
		g.Z[i] = zm
	}
	return g
}
