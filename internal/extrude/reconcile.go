// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extrude

import (
	"fmt"

	"github.com/pdiddy/model-builder/internal/ledger"
	"github.com/pdiddy/model-builder/pkg/types"
)

// Reconciler extrudes a shared whole-building plan blind through the
// full height stack and then recovers each segment's story label from
// the elevation frame. The two passes exist because the plan has no
// notion of which story a drawing belongs to — only the frame, built
// independently from the spreadsheet, does. Columns and walls are
// labeled by their bottom elevation against the floor map; slabs and
// beams by their top elevation against the ceiling map. An exact
// boundary hit wins outright; sub-epsilon drift is absorbed by the
// frame's nearest-key fallback.
type Reconciler struct {
	Frame *ledger.Frame
	// Base and Heights define the blind extrusion walk. They usually
	// come from the frame itself but may carry independent float noise
	// when the plan stack was accumulated separately.
	Base    float64
	Heights []float64

	Engine Engine
}

// NewReconciler builds a Reconciler walking the frame's own stack.
func NewReconciler(frame *ledger.Frame, eng Engine) *Reconciler {
	return &Reconciler{
		Frame:   frame,
		Base:    frame.Elevations[0],
		Heights: frame.Heights(),
		Engine:  eng,
	}
}

// walk visits each blind segment bottom-up as (zBottom, zTop).
func (r *Reconciler) walk(visit func(zBottom, zTop float64)) {
	z := r.Base
	for _, h := range r.Heights {
		zNext := z + h
		visit(z, zNext)
		z = zNext
	}
}

// labelAt recovers a story label, or "" when the elevation matches no
// story within tolerance. Unlabeled segments keep the sentinel section.
func (r *Reconciler) labelAt(z float64, use ledger.Reference) string {
	level, ok := r.Frame.LevelAt(z, use)
	if !ok {
		return ""
	}
	return level
}

// Columns extrudes each point through the full stack, one segment per
// story, labeled by segment bottom.
func (r *Reconciler) Columns(points []types.Point2D) []types.ColumnGeom {
	var out []types.ColumnGeom
	for _, pt := range points {
		r.walk(func(zb, zt float64) {
			level := r.labelAt(zb, ledger.Floor)
			section := DefaultSection
			if level != "" {
				section = r.Engine.Props.ColumnSection(level)
			}
			out = append(out, columnGeom(r.Engine.Units, pt.X, pt.Y, zb, zt, section, level))
		})
	}
	return out
}

// Walls extrudes each line into one quad per story, labeled by segment
// bottom.
func (r *Reconciler) Walls(lines []types.Line2D, axis types.Direction) []types.WallGeom {
	var out []types.WallGeom
	for _, ln := range lines {
		r.walk(func(zb, zt float64) {
			level := r.labelAt(zb, ledger.Floor)
			section := DefaultSection
			if level != "" {
				section = r.Engine.Props.WallSection(level, axis)
			}
			out = append(out, wallGeom(r.Engine.Units, ln, zb, zt, section, level))
		})
	}
	return out
}

// Beams places each line once per story at the segment top, labeled by
// that top elevation against the ceiling map.
func (r *Reconciler) Beams(lines []types.Line2D, axis types.Direction) []types.BeamGeom {
	var out []types.BeamGeom
	for _, ln := range lines {
		r.walk(func(_, zt float64) {
			level := r.labelAt(zt, ledger.Ceiling)
			section := DefaultSection
			if level != "" {
				section = r.Engine.Props.BeamSection(level, axis)
			}
			out = append(out, beamGeom(r.Engine.Units, ln, zt, section, level))
		})
	}
	return out
}

// Slabs places each polygon once per story at the segment top, labeled
// by that top elevation against the ceiling map.
func (r *Reconciler) Slabs(polys []types.Polygon2D) []types.SlabGeom {
	var out []types.SlabGeom
	for i, poly := range polys {
		r.walk(func(_, zt float64) {
			level := r.labelAt(zt, ledger.Ceiling)
			section := DefaultSection
			var sdl, live float64
			if level != "" {
				if rec, ok := r.Engine.Props.SlabFor(level); ok {
					section = rec.Name
					sdl = rec.SDL
					live = rec.Live
				}
			}
			g := slabGeom(r.Engine.Units, poly, zt, section, level)
			g.Name = fmt.Sprintf("S%d_%s", i+1, level)
			g.SDL = r.Engine.Units.ToModelLoad(sdl, true)
			g.Live = r.Engine.Units.ToModelLoad(live, true)
			out = append(out, g)
		})
	}
	return out
}
