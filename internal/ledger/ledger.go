// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger builds the vertical coordinate frame for a building: the
// cumulative story elevations and the lookups that map an elevation back
// to a story level. Everything here works in story input units; unit
// conversion belongs to the extrusion stage.
package ledger

import (
	"errors"
	"fmt"
	"math"

	"github.com/pdiddy/model-builder/pkg/types"
)

// Epsilon is the tolerance, in story input units, for matching an
// elevation against a frame boundary. Covers floating-point drift from
// cumulative sums without bridging distinct stories.
const Epsilon = 1e-3

// ErrEmptyStoryList is returned when a frame is built from no stories.
var ErrEmptyStoryList = errors.New("story list is empty")

// Reference selects which boundary of a story band an elevation lookup
// refers to.
type Reference string

const (
	Floor   Reference = "floor"
	Ceiling Reference = "ceiling"
)

// Band is the vertical interval of one story, in story input units.
type Band struct {
	Level   string
	Floor   float64
	Ceiling float64
}

// Frame is the elevation frame derived from a bottom-up story sequence:
// n+1 strictly increasing boundary elevations, plus floor and ceiling
// maps from elevation to level. Immutable after Build.
type Frame struct {
	// Levels holds the story labels, bottom to top.
	Levels []string

	// Elevations holds the n+1 boundary elevations, bottom to top.
	// Elevations[i] is the floor of Levels[i]; Elevations[n] is the roof.
	Elevations []float64

	base     map[float64]string // floor elevation → level
	top      map[float64]string // ceiling elevation → level
	floorIdx map[string]int     // level → index into Elevations
}

// Build constructs the frame from stories ordered bottom-to-top and the
// base elevation of the lowest floor. Bottom-up ordering is a
// precondition enforced at the ingestion boundary (see Ascending); the
// frame does not re-derive it. Heights must be strictly positive and
// levels unique.
func Build(stories []types.Story, baseElevation float64) (*Frame, error) {
	if len(stories) == 0 {
		return nil, ErrEmptyStoryList
	}

	f := &Frame{
		Levels:     make([]string, len(stories)),
		Elevations: make([]float64, len(stories)+1),
		base:       make(map[float64]string, len(stories)),
		top:        make(map[float64]string, len(stories)),
		floorIdx:   make(map[string]int, len(stories)),
	}

	z := baseElevation
	f.Elevations[0] = z
	for i, s := range stories {
		if s.Height <= 0 {
			return nil, fmt.Errorf("story %q: height must be positive, got %v", s.Level, s.Height)
		}
		if _, dup := f.floorIdx[s.Level]; dup {
			return nil, fmt.Errorf("story %q: duplicate level name", s.Level)
		}
		f.Levels[i] = s.Level
		f.floorIdx[s.Level] = i
		f.base[z] = s.Level
		z += s.Height
		f.top[z] = s.Level
		f.Elevations[i+1] = z
	}

	return f, nil
}

// FloorOf returns the floor elevation of a level.
func (f *Frame) FloorOf(level string) (float64, bool) {
	i, ok := f.floorIdx[level]
	if !ok {
		return 0, false
	}
	return f.Elevations[i], true
}

// CeilingOf returns the ceiling elevation of a level.
func (f *Frame) CeilingOf(level string) (float64, bool) {
	i, ok := f.floorIdx[level]
	if !ok {
		return 0, false
	}
	return f.Elevations[i+1], true
}

// LevelAt maps an elevation back to a story level. The lookup order is
// fixed for output compatibility: exact match in the map selected by
// use, then exact match in the other map, then nearest key within
// Epsilon in the selected map. An exact boundary hit therefore wins
// outright over any nearest-key candidate.
func (f *Frame) LevelAt(z float64, use Reference) (string, bool) {
	primary, secondary := f.base, f.top
	if use == Ceiling {
		primary, secondary = f.top, f.base
	}

	if level, ok := primary[z]; ok {
		return level, true
	}
	if level, ok := secondary[z]; ok {
		return level, true
	}
	return nearestKey(primary, z)
}

// nearestKey finds the map key closest to z within Epsilon.
func nearestKey(m map[float64]string, z float64) (string, bool) {
	bestDist := math.Inf(1)
	var bestLevel string
	found := false
	for k, level := range m {
		d := math.Abs(k - z)
		if d <= Epsilon && d < bestDist {
			bestDist = d
			bestLevel = level
			found = true
		}
	}
	return bestLevel, found
}

// Bands returns the story bands bottom to top.
func (f *Frame) Bands() []Band {
	bands := make([]Band, len(f.Levels))
	for i, level := range f.Levels {
		bands[i] = Band{Level: level, Floor: f.Elevations[i], Ceiling: f.Elevations[i+1]}
	}
	return bands
}

// Band returns the band for a single level.
func (f *Frame) Band(level string) (Band, bool) {
	i, ok := f.floorIdx[level]
	if !ok {
		return Band{}, false
	}
	return Band{Level: level, Floor: f.Elevations[i], Ceiling: f.Elevations[i+1]}, true
}

// Heights returns the story heights bottom to top.
func (f *Frame) Heights() []float64 {
	hs := make([]float64, len(f.Levels))
	for i := range f.Levels {
		hs[i] = f.Elevations[i+1] - f.Elevations[i]
	}
	return hs
}

// Ascending returns a bottom-up copy of a story sequence read in the
// spreadsheet's top-down order. Later elevation math depends on the
// cumulative sum of all preceding heights, so every caller must reorder
// before entering Build; getting this wrong produces silently shifted
// elevations, not an error.
func Ascending(topDown []types.Story) []types.Story {
	out := make([]types.Story, len(topDown))
	for i, s := range topDown {
		out[len(topDown)-1-i] = s
	}
	return out
}
