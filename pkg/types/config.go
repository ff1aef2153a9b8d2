// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// UnitSystem selects the input/model unit pairing for a run. A run uses
// exactly one system; mixing systems mid-run is not supported.
type UnitSystem string

const (
	UnitsUS     UnitSystem = "US"     // story input ft, model lb-in
	UnitsMetric UnitSystem = "Metric" // story input m, model N-mm
)

// LayerConfig names the plan layers each element kind is drawn on.
type LayerConfig struct {
	RectColumns string `json:"rect_columns" yaml:"rect_columns"`
	CircColumns string `json:"circ_columns" yaml:"circ_columns"`
	WallX       string `json:"wall_x" yaml:"wall_x"`
	WallY       string `json:"wall_y" yaml:"wall_y"`
	BeamX       string `json:"beam_x" yaml:"beam_x"`
	BeamY       string `json:"beam_y" yaml:"beam_y"`
	Slabs       string `json:"slabs" yaml:"slabs"`
}

// DefaultLayers returns the layer names the plan drawings use by
// convention.
func DefaultLayers() LayerConfig {
	return LayerConfig{
		RectColumns: "REC COLS",
		CircColumns: "CIR COLS",
		WallX:       "WALL X",
		WallY:       "WALL Y",
		BeamX:       "CB X",
		BeamY:       "CB Y",
		Slabs:       "SLAB",
	}
}

// BuildConfig holds the settings for one model-building run.
type BuildConfig struct {
	// SpreadsheetPath is the .xlsx workbook with the story and section tables.
	SpreadsheetPath string `json:"spreadsheet" yaml:"spreadsheet"`

	// PlanPath is the shared whole-building plan drawing (build workflow).
	PlanPath string `json:"plan" yaml:"plan"`

	// PlansDir holds per-story plan drawings named <level>.dxf
	// (build-levels workflow).
	PlansDir string `json:"plans_dir" yaml:"plans_dir"`

	// BaseElevation is the elevation of the lowest story floor, in story
	// input units (ft or m).
	BaseElevation float64 `json:"base_elevation" yaml:"base_elevation"`

	// Units selects the unit system for the whole run.
	Units UnitSystem `json:"units" yaml:"units"`

	// Layers maps element kinds to plan layer names.
	Layers LayerConfig `json:"layers" yaml:"layers"`

	// DeadPattern and LivePattern name the load patterns slab area loads
	// are assigned to.
	DeadPattern string `json:"dead_pattern" yaml:"dead_pattern"`
	LivePattern string `json:"live_pattern" yaml:"live_pattern"`
}
