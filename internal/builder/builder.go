// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package builder orchestrates a model-building run: read the workbook
// tables, build the elevation frame, define stories/materials/sections
// across the engine boundary, extrude plan geometry, and create the
// elements. Two workflows exist: Run merges one shared whole-building
// plan with the full section table through the reconciler; RunLevels
// reads one plan per story and extrudes each into its own band.
package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/model-builder/internal/engine"
	"github.com/pdiddy/model-builder/internal/extrude"
	"github.com/pdiddy/model-builder/internal/ledger"
	"github.com/pdiddy/model-builder/internal/plan"
	"github.com/pdiddy/model-builder/internal/sheet"
	"github.com/pdiddy/model-builder/internal/units"
	"github.com/pdiddy/model-builder/pkg/types"
)

// openPlan is a seam for tests; production always parses DXF files.
var openPlan = func(path string) (PlanSource, error) {
	return plan.Open(path)
}

// PlanSource is the layer-scoped view of one plan drawing.
type PlanSource interface {
	PointsOnLayer(layer string) []types.Point3D
	LinesOnLayer(layer string) []types.Segment3D
	PolygonsOnLayer(layer string, closedOnly bool) [][]types.Point3D
}

// Inputs holds every table read from the workbook.
type Inputs struct {
	Stories     []types.Story
	Concrete    []types.Concrete
	RectColumns []types.RectColumn
	CircColumns []types.CircColumn
	Walls       []types.Wall
	Beams       []types.CouplingBeam
	Slabs       []types.Slab
}

func (in Inputs) props() extrude.Props {
	return extrude.Props{
		RectColumns: in.RectColumns,
		CircColumns: in.CircColumns,
		Walls:       in.Walls,
		Beams:       in.Beams,
		Slabs:       in.Slabs,
	}
}

func (in Inputs) tables() engine.SectionTables {
	return engine.SectionTables{
		RectColumns: in.RectColumns,
		CircColumns: in.CircColumns,
		Walls:       in.Walls,
		Beams:       in.Beams,
		Slabs:       in.Slabs,
	}
}

// LoadWorkbook reads every input table from the workbook at path.
// Stories come back bottom-up with colors assigned by colors.
func LoadWorkbook(path string, colors ColorFunc) (Inputs, error) {
	wb, err := sheet.Open(path)
	if err != nil {
		return Inputs{}, err
	}
	defer wb.Close()

	var in Inputs
	if in.Stories, err = wb.Stories(); err != nil {
		return Inputs{}, err
	}
	for i := range in.Stories {
		in.Stories[i].Color = colors(i)
	}
	if in.Concrete, err = wb.Concrete(); err != nil {
		return Inputs{}, err
	}
	if in.RectColumns, err = wb.RectColumns(); err != nil {
		return Inputs{}, err
	}
	if in.CircColumns, err = wb.CircColumns(); err != nil {
		return Inputs{}, err
	}
	if in.Walls, err = wb.Walls(); err != nil {
		return Inputs{}, err
	}
	if in.Beams, err = wb.CouplingBeams(); err != nil {
		return Inputs{}, err
	}
	if in.Slabs, err = wb.Slabs(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

// Result summarizes one run.
type Result struct {
	Stories int
	Columns engine.BatchResult
	Beams   engine.BatchResult
	Walls   engine.BatchResult
	Slabs   engine.BatchResult
}

// HasFailures reports whether any element creation failed.
func (r Result) HasFailures() bool {
	return r.Failed() > 0
}

// Failed returns the total number of rejected elements across all
// batches.
func (r Result) Failed() int {
	return r.Columns.Failed + r.Beams.Failed + r.Walls.Failed + r.Slabs.Failed
}

// Builder carries the fixed collaborators of a run.
type Builder struct {
	Modeler engine.Modeler
	Units   units.Config
	Config  types.BuildConfig
	Out     io.Writer
}

// define builds the elevation frame and pushes all definitions across
// the boundary. Any definition failure is fatal.
func (b *Builder) define(in Inputs) (*ledger.Frame, error) {
	frame, err := ledger.Build(in.Stories, b.Config.BaseElevation)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(b.Out, "read %d stories (%s units)\n", len(in.Stories), b.Units.System)

	// Property rows referencing a level absent from the story table are
	// almost always typos; they would silently fall back to the sentinel
	// section downstream.
	if unknown := frame.LevelSet().Unknown(in.props().Levels()); len(unknown) > 0 {
		fmt.Fprintf(b.Out, "warning: section records reference unknown levels: %s\n",
			strings.Join(unknown, ", "))
	}

	if err := engine.DefineAll(b.Modeler, b.Units.EngineUnitCode, b.Config.BaseElevation, in.Stories, in.Concrete, in.tables(), b.Out); err != nil {
		return nil, err
	}
	return frame, nil
}

// Run executes the whole-building workflow: one shared plan, blind
// extrusion through the full stack, story labels recovered by elevation.
func (b *Builder) Run(in Inputs, p PlanSource) (Result, error) {
	frame, err := b.define(in)
	if err != nil {
		return Result{}, err
	}

	rec := extrude.NewReconciler(frame, extrude.Engine{Units: b.Units, Props: in.props()})
	layers := b.Config.Layers

	points := append(points2D(p.PointsOnLayer(layers.RectColumns)),
		points2D(p.PointsOnLayer(layers.CircColumns))...)
	cols := rec.Columns(points)
	wallsX := rec.Walls(lines2D(p.LinesOnLayer(layers.WallX)), types.DirectionX)
	wallsY := rec.Walls(lines2D(p.LinesOnLayer(layers.WallY)), types.DirectionY)
	beamsX := rec.Beams(lines2D(p.LinesOnLayer(layers.BeamX)), types.DirectionX)
	beamsY := rec.Beams(lines2D(p.LinesOnLayer(layers.BeamY)), types.DirectionY)
	slabs := rec.Slabs(polygons2D(p.PolygonsOnLayer(layers.Slabs, true)))

	return b.create(in, cols, append(beamsX, beamsY...), append(wallsX, wallsY...), slabs)
}

// RunLevels executes the level-by-level workflow: one plan drawing per
// story at <plans-dir>/<level>.dxf, each extruded into its own band. A
// story with no drawing is skipped with a warning; an unreadable drawing
// is fatal.
func (b *Builder) RunLevels(in Inputs) (Result, error) {
	frame, err := b.define(in)
	if err != nil {
		return Result{}, err
	}

	eng := extrude.Engine{Units: b.Units, Props: in.props()}
	layers := b.Config.Layers

	var cols []types.ColumnGeom
	var beams []types.BeamGeom
	var walls []types.WallGeom
	var slabs []types.SlabGeom

	for _, band := range frame.Bands() {
		path := filepath.Join(b.Config.PlansDir, band.Level+".dxf")
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(b.Out, "warning: no plan for %s (%s), story skipped\n", band.Level, path)
			continue
		}
		p, err := openPlan(path)
		if err != nil {
			return Result{}, err
		}

		bands := []ledger.Band{band}
		points := append(points2D(p.PointsOnLayer(layers.RectColumns)),
			points2D(p.PointsOnLayer(layers.CircColumns))...)
		cols = append(cols, eng.Columns(points, bands)...)
		walls = append(walls, eng.Walls(lines2D(p.LinesOnLayer(layers.WallX)), bands, types.DirectionX)...)
		walls = append(walls, eng.Walls(lines2D(p.LinesOnLayer(layers.WallY)), bands, types.DirectionY)...)
		beams = append(beams, eng.Beams(lines2D(p.LinesOnLayer(layers.BeamX)), bands, types.DirectionX)...)
		beams = append(beams, eng.Beams(lines2D(p.LinesOnLayer(layers.BeamY)), bands, types.DirectionY)...)
		slabs = append(slabs, eng.Slabs(polygons2D(p.PolygonsOnLayer(layers.Slabs, true)), bands)...)
	}

	return b.create(in, cols, beams, walls, slabs)
}

// create pushes all element geometry across the boundary, batch by
// batch, and prints the run summary.
func (b *Builder) create(in Inputs, cols []types.ColumnGeom, beams []types.BeamGeom, walls []types.WallGeom, slabs []types.SlabGeom) (Result, error) {
	result := Result{Stories: len(in.Stories)}

	result.Columns = engine.CreateColumns(b.Modeler, cols, b.Out)
	result.Beams = engine.CreateBeams(b.Modeler, beams, b.Out)
	result.Walls = engine.CreateWalls(b.Modeler, walls, b.Out)

	patterns := engine.LoadPatterns{Dead: b.Config.DeadPattern, Live: b.Config.LivePattern}
	result.Slabs = engine.CreateSlabs(b.Modeler, slabs, patterns, b.Out)

	fmt.Fprintf(b.Out, "\nRun summary: %d stories, %d columns, %d beams, %d walls, %d slabs (%d failed)\n",
		result.Stories,
		result.Columns.Created, result.Beams.Created, result.Walls.Created, result.Slabs.Created,
		result.Failed())
	return result, nil
}

// --- plan primitive adapters: drop the drawing Z, keep the layer ---

func points2D(pts []types.Point3D) []types.Point2D {
	out := make([]types.Point2D, len(pts))
	for i, p := range pts {
		out[i] = types.Point2D{X: p.X, Y: p.Y}
	}
	return out
}

func lines2D(segs []types.Segment3D) []types.Line2D {
	out := make([]types.Line2D, len(segs))
	for i, s := range segs {
		out[i] = types.Line2D{StartX: s.Start.X, StartY: s.Start.Y, EndX: s.End.X, EndY: s.End.Y}
	}
	return out
}

func polygons2D(loops [][]types.Point3D) []types.Polygon2D {
	out := make([]types.Polygon2D, len(loops))
	for i, loop := range loops {
		verts := make([]types.Point2D, len(loop))
		for j, p := range loop {
			verts[j] = types.Point2D{X: p.X, Y: p.Y}
		}
		out[i] = types.Polygon2D{Vertices: verts, Closed: true}
	}
	return out
}
