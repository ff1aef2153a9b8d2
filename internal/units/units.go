// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units converts linear dimensions and area loads from story
// input units (ft or m) to engine model units (in or mm). Conversion
// happens exactly once, at geometry finalization in the extrusion stage;
// spreadsheet and plan values stay in input units before that, and the
// engine boundary sees model units only.
package units

import (
	"fmt"

	"github.com/pdiddy/model-builder/pkg/types"
)

// psfPerPsi converts lb/ft² area loads to lb/in².
const psfPerPsi = 144.0

// Config is a unit system configuration. Pure data, no state; a run
// selects one Config and applies it uniformly.
type Config struct {
	System types.UnitSystem

	// EngineUnitCode is the present-units code for the engine boundary
	// (1 = lb-in-F, 9 = N-mm-C).
	EngineUnitCode int

	LengthUnit     string // model length unit: "in" or "mm"
	ForceUnit      string // model force unit: "lb" or "N"
	StoryInputUnit string // story input length unit: "ft" or "m"

	// LengthToModel multiplies an input-unit length into model units.
	LengthToModel float64
}

// US is the lb-in-F configuration: story input in feet, model in inches,
// area loads psf → psi.
func US() Config {
	return Config{
		System:         types.UnitsUS,
		EngineUnitCode: 1,
		LengthUnit:     "in",
		ForceUnit:      "lb",
		StoryInputUnit: "ft",
		LengthToModel:  12.0,
	}
}

// Metric is the N-mm-C configuration: story input in meters, model in
// millimeters, area loads already N/mm²-compatible.
func Metric() Config {
	return Config{
		System:         types.UnitsMetric,
		EngineUnitCode: 9,
		LengthUnit:     "mm",
		ForceUnit:      "N",
		StoryInputUnit: "m",
		LengthToModel:  1000.0,
	}
}

// ForSystem returns the built-in configuration for the named system.
func ForSystem(system types.UnitSystem) (Config, error) {
	switch system {
	case types.UnitsUS, "":
		return US(), nil
	case types.UnitsMetric:
		return Metric(), nil
	}
	return Config{}, fmt.Errorf("unsupported unit system %q", system)
}

// ToModelLength converts a length from story input units to model units.
func (c Config) ToModelLength(x float64) float64 {
	return x * c.LengthToModel
}

// ToModelLoad converts a load from input units to model units. For the
// US system, area loads convert psf → psi; everything else passes
// through unchanged.
func (c Config) ToModelLoad(x float64, fromArea bool) float64 {
	if c.System == types.UnitsUS && fromArea {
		return x / psfPerPsi
	}
	return x
}
