// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.db")

	r, err := OpenRecorder(path)
	require.NoError(t, err)

	assert.Empty(t, r.RunID(), "run starts lazily")

	require.Zero(t, r.SetPresentUnits(1))
	require.NotEmpty(t, r.RunID())

	status := r.SetStories(0, []string{"L1", "L2"}, []float64{10, 12},
		[]bool{true, false}, []string{"None", "L1"}, []bool{false, false},
		[]float64{0, 0}, []int{0, 0})
	require.Zero(t, status)
	require.NotEmpty(t, r.RunID())

	require.Zero(t, r.SetMaterial("5750 psi", MatConcrete))
	require.Zero(t, r.SetMPIsotropic("5750 psi", 4322239, 0.2, 5.5e-6))
	require.Zero(t, r.SetConcrete("5750 psi", 5750))
	require.Zero(t, r.SetRectangle("C30X30", "5750 psi", 30, 30))
	require.Zero(t, r.SetWall("W18X", 1, 1, "5750 psi", 18))

	name, status := r.AddFrame(0, 0, 0, 0, 0, 120, "C30X30", "")
	require.Zero(t, status)
	assert.Equal(t, "F1", name)

	name, status = r.AddArea(
		[]float64{0, 48, 48, 0},
		[]float64{0, 0, 0, 0},
		[]float64{0, 0, 120, 120},
		"W18X", "")
	require.Zero(t, status)
	assert.Equal(t, "A1", name)

	require.Zero(t, r.SetUniformLoad("A1", "SDL", 20.0/144, LoadDirGravity, true))

	runID := r.RunID()
	require.NoError(t, r.Close())

	// Reopen purely for inspection: no new run appears.
	r2, err := OpenRecorder(path)
	require.NoError(t, err)
	defer r2.Close()

	runs, err := r2.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.ID)
	assert.Equal(t, 1, run.UnitCode)
	assert.Equal(t, 2, run.Stories)
	assert.Equal(t, 1, run.Materials)
	assert.Equal(t, 1, run.Frames)
	assert.Equal(t, 1, run.Areas)
	assert.Equal(t, 1, run.Loads)
}

func TestRecorderAutoNames(t *testing.T) {
	r, err := OpenRecorder(filepath.Join(t.TempDir(), "model.db"))
	require.NoError(t, err)
	defer r.Close()

	for i := 1; i <= 3; i++ {
		name, status := r.AddFrame(0, 0, 0, 0, 0, 1, "Default", "")
		require.Zero(t, status)
		assert.Equal(t, []string{"F1", "F2", "F3"}[i-1], name)
	}
}

func TestRecorderRejectsBadArea(t *testing.T) {
	r, err := OpenRecorder(filepath.Join(t.TempDir(), "model.db"))
	require.NoError(t, err)
	defer r.Close()

	// Mismatched coordinate slices.
	_, status := r.AddArea([]float64{0, 1}, []float64{0, 1, 2}, []float64{0, 1, 2}, "S8", "")
	assert.NotZero(t, status)

	// Degenerate polygon.
	_, status = r.AddArea([]float64{0, 1}, []float64{0, 1}, []float64{0, 1}, "S8", "")
	assert.NotZero(t, status)
}

func TestRecorderSatisfiesModeler(t *testing.T) {
	var _ Modeler = (*Recorder)(nil)
}
