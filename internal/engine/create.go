// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"io"

	"github.com/pdiddy/model-builder/pkg/types"
)

// BatchResult holds the outcome of one element-creation batch.
type BatchResult struct {
	Created int
	Failed  int
}

// Total returns the number of elements attempted.
func (r BatchResult) Total() int {
	return r.Created + r.Failed
}

// HasFailures reports whether any element in the batch was rejected.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

func (r *BatchResult) add(other BatchResult) {
	r.Created += other.Created
	r.Failed += other.Failed
}

// CreateColumns pushes column geometry across the boundary. A non-zero
// status on one element is logged and counted; the batch continues.
func CreateColumns(m Modeler, cols []types.ColumnGeom, w io.Writer) BatchResult {
	var result BatchResult
	for _, c := range cols {
		_, status := m.AddFrame(
			c.Start.X, c.Start.Y, c.Start.Z,
			c.End.X, c.End.Y, c.End.Z,
			c.Section, c.Name)
		if status != 0 {
			fmt.Fprintf(w, "failed:  column %s at %s (status %d)\n", c.Name, c.Level, status)
			result.Failed++
			continue
		}
		result.Created++
	}
	fmt.Fprintf(w, "Batch summary: %d columns created, %d failed (total: %d)\n",
		result.Created, result.Failed, result.Total())
	return result
}

// CreateBeams pushes coupling beam geometry across the boundary.
func CreateBeams(m Modeler, beams []types.BeamGeom, w io.Writer) BatchResult {
	var result BatchResult
	for _, b := range beams {
		_, status := m.AddFrame(
			b.Start.X, b.Start.Y, b.Start.Z,
			b.End.X, b.End.Y, b.End.Z,
			b.Section, b.Name)
		if status != 0 {
			fmt.Fprintf(w, "failed:  beam %s at %s (status %d)\n", b.Name, b.Level, status)
			result.Failed++
			continue
		}
		result.Created++
	}
	fmt.Fprintf(w, "Batch summary: %d beams created, %d failed (total: %d)\n",
		result.Created, result.Failed, result.Total())
	return result
}

// CreateWalls pushes wall quads across the boundary.
func CreateWalls(m Modeler, walls []types.WallGeom, w io.Writer) BatchResult {
	var result BatchResult
	for _, wall := range walls {
		_, status := m.AddArea(wall.X, wall.Y, wall.Z, wall.Section, wall.Name)
		if status != 0 {
			fmt.Fprintf(w, "failed:  wall %s at %s (status %d)\n", wall.Name, wall.Level, status)
			result.Failed++
			continue
		}
		result.Created++
	}
	fmt.Fprintf(w, "Batch summary: %d walls created, %d failed (total: %d)\n",
		result.Created, result.Failed, result.Total())
	return result
}

// LoadPatterns names the load patterns slab surface loads are assigned
// under.
type LoadPatterns struct {
	Dead string
	Live string
}

// CreateSlabs pushes slab polygons across the boundary and assigns
// their uniform surface loads under the given patterns. A failed load
// assignment is logged but does not fail the element.
func CreateSlabs(m Modeler, slabs []types.SlabGeom, patterns LoadPatterns, w io.Writer) BatchResult {
	var result BatchResult
	for _, s := range slabs {
		name, status := m.AddArea(s.X, s.Y, s.Z, s.Section, s.Name)
		if status != 0 {
			fmt.Fprintf(w, "failed:  slab %s at %s (status %d)\n", s.Name, s.Level, status)
			result.Failed++
			continue
		}
		result.Created++

		if s.SDL != 0 {
			if st := m.SetUniformLoad(name, patterns.Dead, s.SDL, LoadDirGravity, true); st != 0 {
				fmt.Fprintf(w, "warning: dead load on slab %s rejected (status %d)\n", s.Name, st)
			}
		}
		if s.Live != 0 {
			if st := m.SetUniformLoad(name, patterns.Live, s.Live, LoadDirGravity, true); st != 0 {
				fmt.Fprintf(w, "warning: live load on slab %s rejected (status %d)\n", s.Name, st)
			}
		}
	}
	fmt.Fprintf(w, "Batch summary: %d slabs created, %d failed (total: %d)\n",
		result.Created, result.Failed, result.Total())
	return result
}
