// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extrude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/model-builder/internal/ledger"
	"github.com/pdiddy/model-builder/internal/units"
	"github.com/pdiddy/model-builder/pkg/types"
)

func reconciler(t *testing.T, props Props) *Reconciler {
	t.Helper()
	frame, err := ledger.Build([]types.Story{
		{Level: "L1", Height: 10},
		{Level: "L2", Height: 10},
		{Level: "L3", Height: 10},
	}, 0)
	require.NoError(t, err)
	return NewReconciler(frame, Engine{Units: units.US(), Props: props})
}

// A column stack extruded blind through heights [10,10,10] from base 0
// recovers labels L1, L2, L3 even when the walk carries float noise.
func TestReconcileColumnLabels(t *testing.T) {
	r := reconciler(t, Props{RectColumns: []types.RectColumn{
		{Level: "L1", Name: "C1"},
		{Level: "L2", Name: "C2"},
		{Level: "L3", Name: "C3"},
	}})

	// Independent accumulation noise, well inside tolerance.
	r.Heights = []float64{10 + 1e-7, 10 - 1e-7, 10 + 1e-7}

	cols := r.Columns([]types.Point2D{{X: 1, Y: 2}})
	require.Len(t, cols, 3)
	assert.Equal(t, "L1", cols[0].Level)
	assert.Equal(t, "C1", cols[0].Section)
	assert.Equal(t, "L2", cols[1].Level)
	assert.Equal(t, "C2", cols[1].Section)
	assert.Equal(t, "L3", cols[2].Level)
	assert.Equal(t, "C3", cols[2].Section)
}

// A segment whose elevation matches no story keeps the sentinel section
// and an empty label; the rest of the stack still resolves.
func TestReconcileUnmatchedSegment(t *testing.T) {
	r := reconciler(t, Props{RectColumns: []types.RectColumn{
		{Level: "L1", Name: "C1"},
	}})

	// Second segment bottom lands at 15, between stories.
	r.Heights = []float64{15, 15}

	cols := r.Columns([]types.Point2D{{X: 0, Y: 0}})
	require.Len(t, cols, 2)
	assert.Equal(t, "L1", cols[0].Level) // bottom 0 is L1's floor
	assert.Equal(t, "C1", cols[0].Section)
	assert.Empty(t, cols[1].Level)
	assert.Equal(t, DefaultSection, cols[1].Section)
}

// Slabs and beams are labeled by their top against the ceiling map.
func TestReconcileSlabsByTop(t *testing.T) {
	r := reconciler(t, Props{Slabs: []types.Slab{
		{Level: "L2", Name: "S8", SDL: 20, Live: 40},
	}})

	poly := types.Polygon2D{Closed: true, Vertices: []types.Point2D{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4},
	}}
	slabs := r.Slabs([]types.Polygon2D{poly})
	require.Len(t, slabs, 3)

	// Tops at 10, 20, 30 ft → 120, 240, 360 in.
	assert.Equal(t, 120.0, slabs[0].Z[0])
	assert.Equal(t, 240.0, slabs[1].Z[0])
	assert.Equal(t, 360.0, slabs[2].Z[0])

	assert.Equal(t, "L2", slabs[1].Level)
	assert.Equal(t, "S8", slabs[1].Section)
	assert.InDelta(t, 20.0/144, slabs[1].SDL, 1e-12)
	assert.Equal(t, "S1_L2", slabs[1].Name)

	// Unmatched stories keep the sentinel and zero loads.
	assert.Equal(t, DefaultSection, slabs[0].Section)
	assert.Zero(t, slabs[0].SDL)
}

func TestReconcileBeamsByTop(t *testing.T) {
	r := reconciler(t, Props{Beams: []types.CouplingBeam{
		{Level: "L3", Name: "CBX24", Direction: types.DirectionX},
	}})

	beams := r.Beams([]types.Line2D{{StartX: 0, StartY: 0, EndX: 6, EndY: 0}}, types.DirectionX)
	require.Len(t, beams, 3)
	assert.Equal(t, "CBX24", beams[2].Section)
	assert.Equal(t, 360.0, beams[2].Start.Z)
	assert.Equal(t, DefaultSection, beams[0].Section)
}

// Walls through the blind stack keep the same winding as banded walls.
func TestReconcileWallWinding(t *testing.T) {
	r := reconciler(t, Props{Walls: []types.Wall{
		{Level: "L1", Name: "W18X", Direction: types.DirectionX},
	}})
	r.Heights = []float64{10}

	walls := r.Walls([]types.Line2D{{StartX: 0, StartY: 0, EndX: 4, EndY: 0}}, types.DirectionX)
	require.Len(t, walls, 1)
	assert.Equal(t, []float64{0, 48, 48, 0}, walls[0].X)
	assert.Equal(t, []float64{0, 0, 120, 120}, walls[0].Z)
	assert.Equal(t, "W18X", walls[0].Section)
}

// Both strategies agree on a building where every story has a plan.
func TestStrategiesAgree(t *testing.T) {
	props := Props{RectColumns: []types.RectColumn{
		{Level: "L1", Name: "C1"},
		{Level: "L2", Name: "C2"},
		{Level: "L3", Name: "C3"},
	}}
	r := reconciler(t, props)
	points := []types.Point2D{{X: 3, Y: 7}}

	banded := r.Engine.Columns(points, r.Frame.Bands())
	blind := r.Columns(points)
	assert.Equal(t, banded, blind)
}
