// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Point3D is a coordinate triple. Plan queries return the drawing-native
// Z, which downstream stages discard or reuse as a plan reference.
type Point3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Segment3D is a line segment between two 3D points.
type Segment3D struct {
	Start Point3D `json:"start" yaml:"start"`
	End   Point3D `json:"end" yaml:"end"`
}

// Point2D is a plan primitive: a single point on a named layer.
type Point2D struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Layer string  `json:"layer,omitempty" yaml:"layer,omitempty"`
}

// Line2D is a plan primitive: a line segment on a named layer.
type Line2D struct {
	StartX float64 `json:"start_x" yaml:"start_x"`
	StartY float64 `json:"start_y" yaml:"start_y"`
	EndX   float64 `json:"end_x" yaml:"end_x"`
	EndY   float64 `json:"end_y" yaml:"end_y"`
	Layer  string  `json:"layer,omitempty" yaml:"layer,omitempty"`
}

// Polygon2D is a plan primitive: an ordered vertex loop on a named layer.
type Polygon2D struct {
	Vertices []Point2D `json:"vertices" yaml:"vertices"`
	Closed   bool      `json:"closed" yaml:"closed"`
	Layer    string    `json:"layer,omitempty" yaml:"layer,omitempty"`
}

// ColumnGeom is a vertical line element through one story band, in model
// units, carrying the section name to assign at creation. Element
// geometry records are created once by the extrusion stage, consumed once
// by the engine boundary, and never mutated.
type ColumnGeom struct {
	Start   Point3D `json:"start" yaml:"start"`
	End     Point3D `json:"end" yaml:"end"`
	Section string  `json:"section" yaml:"section"`
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	Level   string  `json:"level,omitempty" yaml:"level,omitempty"`
}

// BeamGeom is a horizontal line element at a story ceiling, in model units.
type BeamGeom struct {
	Start   Point3D `json:"start" yaml:"start"`
	End     Point3D `json:"end" yaml:"end"`
	Section string  `json:"section" yaml:"section"`
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	Level   string  `json:"level,omitempty" yaml:"level,omitempty"`
}

// WallGeom is a 4-vertex planar area element spanning one story band, in
// model units. Vertex order is start-bottom, end-bottom, end-top,
// start-top; the engine derives area orientation from it.
type WallGeom struct {
	X       []float64 `json:"x" yaml:"x"`
	Y       []float64 `json:"y" yaml:"y"`
	Z       []float64 `json:"z" yaml:"z"`
	Section string    `json:"section" yaml:"section"`
	Name    string    `json:"name,omitempty" yaml:"name,omitempty"`
	Level   string    `json:"level,omitempty" yaml:"level,omitempty"`
}

// SlabGeom is an area element at a story ceiling, in model units, with
// super-dead and live area loads already converted to model load units.
type SlabGeom struct {
	X       []float64 `json:"x" yaml:"x"`
	Y       []float64 `json:"y" yaml:"y"`
	Z       []float64 `json:"z" yaml:"z"`
	Section string    `json:"section" yaml:"section"`
	Name    string    `json:"name,omitempty" yaml:"name,omitempty"`
	Level   string    `json:"level,omitempty" yaml:"level,omitempty"`
	SDL     float64   `json:"sdl" yaml:"sdl"`
	Live    float64   `json:"live" yaml:"live"`
}
