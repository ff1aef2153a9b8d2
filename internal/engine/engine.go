// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine marshals story, material, section, and geometry data
// into the structural-analysis application's automation boundary. Every
// boundary call returns a numeric status, zero meaning success.
// Definition calls (stories, materials, sections) treat a non-zero
// status as fatal: the model is inconsistent and the run cannot safely
// continue. Element-creation calls treat a non-zero status as local:
// the failure is logged and counted and the batch moves on.
package engine

import "fmt"

// Boundary constants, as the application's automation interface defines
// them.
const (
	// MatConcrete is the material base type code for concrete.
	MatConcrete = 2

	// Rebar pattern ids for SetRebarColumn.
	PatternRectangular = 1
	PatternCircular    = 2

	// Confinement type codes.
	ConfineTies   = 1
	ConfineSpiral = 2

	// LoadDirGravity is the direction code for a gravity-direction
	// uniform surface load.
	LoadDirGravity = 6

	// CoordGlobal names the global coordinate system for element
	// creation.
	CoordGlobal = "Global"
)

// Shell property codes for area sections.
const (
	wallPropSpecified = 1
	shellThin         = 1
	slabTypeSlab      = 0
)

// Modeler is the element-creation and property-definition boundary of
// the external structural-analysis application. A live automation
// client and the offline Recorder both satisfy it. Status return values
// follow the application's convention: 0 is success.
type Modeler interface {
	// SetPresentUnits selects the unit system (by the application's
	// unit code) that all following values are interpreted in. Must be
	// the first call of a run.
	SetPresentUnits(unitCode int) int

	// SetStories defines the full story table in one call. All slices
	// are parallel, ordered bottom-up.
	SetStories(base float64, names []string, heights []float64, isMaster []bool, similarTo []string, spliceAbove []bool, spliceHeight []float64, colors []int) int

	// SetMaterial sets a material's base type; SetMPIsotropic its
	// isotropic mechanical properties; SetConcrete its nonlinear
	// stress-strain parameters. The application requires the three as
	// separate calls.
	SetMaterial(name string, matType int) int
	SetMPIsotropic(name string, e, poisson, thermal float64) int
	SetConcrete(name string, fc float64) int

	// Frame (line-element) sections: geometry first, then the rebar
	// pattern.
	SetRectangle(name, material string, depth, width float64) int
	SetCircle(name, material string, diameter float64) int
	SetRebarColumn(name, longBarMat, confineMat string, pattern, confineType int, cover float64, numCBars, numR3Bars, numR2Bars int, longBarSize, tieBarSize string, tieSpacing float64, tieLegs2, tieLegs3 int, toBeDesigned bool) int

	// Area (shell) sections.
	SetWall(name string, wallProp, shellType int, material string, thickness float64) int
	SetSlab(name string, slabType, shellType int, material string, thickness float64) int

	// AddFrame creates a line element between two points in model
	// units; AddArea creates an area element from parallel coordinate
	// slices. Both return the name the application assigned.
	AddFrame(xi, yi, zi, xj, yj, zj float64, section, userName string) (string, int)
	AddArea(x, y, z []float64, section, userName string) (string, int)

	// SetUniformLoad assigns a uniform surface load to an area element
	// under the named load pattern.
	SetUniformLoad(area, pattern string, value float64, dir int, replace bool) int
}

// statusErr wraps a non-zero boundary status with the operation and the
// offending entity name.
func statusErr(op, name string, status int) error {
	return fmt.Errorf("%s %q: engine status %d", op, name, status)
}
