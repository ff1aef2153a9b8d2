// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Direction qualifies wall and coupling-beam sections by plan axis.
type Direction string

const (
	DirectionX Direction = "X"
	DirectionY Direction = "Y"
)

// Concrete is one row of the material table.
type Concrete struct {
	// Name is the material name as defined in the engine (e.g. "5750 psi").
	Name string `json:"name" yaml:"name"`

	// Fc is the compressive strength in input force/area units.
	Fc float64 `json:"fc" yaml:"fc"`

	// Ec is the modulus of elasticity in input force/area units.
	Ec float64 `json:"ec" yaml:"ec"`
}

// RectColumn is one row of the rectangular column table, keyed by story level.
type RectColumn struct {
	Level    string  `json:"level" yaml:"level"`
	Material string  `json:"material" yaml:"material"`
	Fc       float64 `json:"fc" yaml:"fc"`
	Name     string  `json:"name" yaml:"name"`
	B        float64 `json:"b" yaml:"b"`
	H        float64 `json:"h" yaml:"h"`
}

// CircColumn is one row of the circular column table, keyed by story level.
type CircColumn struct {
	Level    string  `json:"level" yaml:"level"`
	Material string  `json:"material" yaml:"material"`
	Fc       float64 `json:"fc" yaml:"fc"`
	Name     string  `json:"name" yaml:"name"`
	Diameter float64 `json:"diameter" yaml:"diameter"`
}

// Wall is a direction-qualified wall section for one story level. The
// spreadsheet carries the X and Y variants in a single row; the sheet
// reader splits them into two records.
type Wall struct {
	Level     string    `json:"level" yaml:"level"`
	Material  string    `json:"material" yaml:"material"`
	Fc        float64   `json:"fc" yaml:"fc"`
	Name      string    `json:"name" yaml:"name"`
	Thickness float64   `json:"thickness" yaml:"thickness"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// CouplingBeam is a direction-qualified coupling beam section for one
// story level, split from the combined X/Y spreadsheet row like Wall.
type CouplingBeam struct {
	Level     string    `json:"level" yaml:"level"`
	Material  string    `json:"material" yaml:"material"`
	Fc        float64   `json:"fc" yaml:"fc"`
	Name      string    `json:"name" yaml:"name"`
	B         float64   `json:"b" yaml:"b"`
	H         float64   `json:"h" yaml:"h"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// Slab is one row of the slab table, keyed by story level. SDL and Live
// are area loads in input units (psf or N/mm²-compatible).
type Slab struct {
	Level     string  `json:"level" yaml:"level"`
	Material  string  `json:"material" yaml:"material"`
	Fc        float64 `json:"fc" yaml:"fc"`
	Name      string  `json:"name" yaml:"name"`
	Thickness float64 `json:"thickness" yaml:"thickness"`
	SDL       float64 `json:"sdl" yaml:"sdl"`
	Live      float64 `json:"live" yaml:"live"`
}
