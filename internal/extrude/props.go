// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extrude

import (
	"strings"

	"github.com/pdiddy/model-builder/pkg/types"
)

// DefaultSection is the sentinel section assigned when no property
// record matches a primitive's story. Unmatched geometry is not an
// error: incomplete input produces a partial-but-inspectable model.
const DefaultSection = "Default"

// Props bundles the section property tables for one run.
type Props struct {
	RectColumns []types.RectColumn
	CircColumns []types.CircColumn
	Walls       []types.Wall
	Beams       []types.CouplingBeam
	Slabs       []types.Slab
}

// ColumnSection resolves the section for a column at level: rectangular
// match first, then circular, then the sentinel.
func (p Props) ColumnSection(level string) string {
	for _, c := range p.RectColumns {
		if c.Level == level {
			return c.Name
		}
	}
	for _, c := range p.CircColumns {
		if c.Level == level {
			return c.Name
		}
	}
	return DefaultSection
}

// WallSection resolves the wall section for level and axis. With a
// single record at the level it wins as-is; with several, the axis
// letter is matched as a substring of the section name. The substring
// match is kept for compatibility with existing section naming even
// though the records carry an explicit Direction.
func (p Props) WallSection(level string, axis types.Direction) string {
	var candidates []types.Wall
	for _, w := range p.Walls {
		if w.Level == level {
			candidates = append(candidates, w)
		}
	}
	switch len(candidates) {
	case 0:
		return DefaultSection
	case 1:
		return candidates[0].Name
	}
	for _, w := range candidates {
		if strings.Contains(strings.ToUpper(w.Name), string(axis)) {
			return w.Name
		}
	}
	return candidates[0].Name
}

// BeamSection resolves the coupling beam section for level and axis by
// the same substring convention as WallSection.
func (p Props) BeamSection(level string, axis types.Direction) string {
	for _, b := range p.Beams {
		if b.Level == level && strings.Contains(strings.ToUpper(b.Name), string(axis)) {
			return b.Name
		}
	}
	for _, b := range p.Beams {
		if b.Level == level {
			return b.Name
		}
	}
	return DefaultSection
}

// SlabFor returns the slab record for level, if any.
func (p Props) SlabFor(level string) (types.Slab, bool) {
	for _, s := range p.Slabs {
		if s.Level == level {
			return s, true
		}
	}
	return types.Slab{}, false
}

// Levels returns every level referenced by any property record, for
// registry validation against the story table.
func (p Props) Levels() []string {
	var out []string
	for _, c := range p.RectColumns {
		out = append(out, c.Level)
	}
	for _, c := range p.CircColumns {
		out = append(out, c.Level)
	}
	for _, w := range p.Walls {
		out = append(out, w.Level)
	}
	for _, b := range p.Beams {
		out = append(out, b.Level)
	}
	for _, s := range p.Slabs {
		out = append(out, s.Level)
	}
	return out
}
