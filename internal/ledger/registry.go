// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

// LevelSet is the registry of level names known to a frame. Section
// tables are joined to stories only by the level string, so a typo'd
// level would otherwise fall back to the sentinel section silently; the
// registry lets the pipeline surface those rows up front.
type LevelSet map[string]struct{}

// LevelSet returns the set of level names in the frame.
func (f *Frame) LevelSet() LevelSet {
	set := make(LevelSet, len(f.Levels))
	for _, level := range f.Levels {
		set[level] = struct{}{}
	}
	return set
}

// Has reports whether level is a known story level.
func (s LevelSet) Has(level string) bool {
	_, ok := s[level]
	return ok
}

// Unknown returns the levels from refs that are not in the set, in
// first-seen order without duplicates.
func (s LevelSet) Unknown(refs []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, level := range refs {
		if s.Has(level) {
			continue
		}
		if _, dup := seen[level]; dup {
			continue
		}
		seen[level] = struct{}{}
		out = append(out, level)
	}
	return out
}
