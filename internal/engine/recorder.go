// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Recorder is a Modeler backed by SQLite. It records every boundary
// call under a per-run id so a model can be built and inspected without
// the commercial application attached. The application, when attached,
// remains the system of record; the recorder is an offline stand-in.
type Recorder struct {
	db    *sql.DB
	runID string

	frames int
	areas  int
}

// OpenRecorder opens or creates the recording database at path,
// creating the schema if it does not exist. A run row is inserted
// lazily on the first recorded call, so opening a database purely for
// inspection leaves it untouched.
func OpenRecorder(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening model database: %w", err)
	}

	r := &Recorder{db: db}
	if err := r.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return r, nil
}

// Close releases the database connection.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// RunID returns the id of the current run, or "" before any call has
// been recorded.
func (r *Recorder) RunID() string {
	return r.runID
}

func (r *Recorder) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			unit_code INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS stories (
			run_id TEXT NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			height REAL NOT NULL,
			is_master INTEGER,
			similar_to TEXT,
			splice_above INTEGER,
			splice_height REAL,
			color INTEGER,
			base REAL
		)`,
		`CREATE TABLE IF NOT EXISTS materials (
			run_id TEXT NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			mat_type INTEGER,
			e REAL,
			poisson REAL,
			thermal REAL,
			fc REAL
		)`,
		`CREATE TABLE IF NOT EXISTS frame_sections (
			run_id TEXT NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			shape TEXT NOT NULL,
			material TEXT,
			dim1 REAL,
			dim2 REAL
		)`,
		`CREATE TABLE IF NOT EXISTS area_sections (
			run_id TEXT NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			material TEXT,
			thickness REAL
		)`,
		`CREATE TABLE IF NOT EXISTS frames (
			run_id TEXT NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			section TEXT,
			user_name TEXT,
			xi REAL, yi REAL, zi REAL,
			xj REAL, yj REAL, zj REAL
		)`,
		`CREATE TABLE IF NOT EXISTS areas (
			run_id TEXT NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			section TEXT,
			user_name TEXT,
			vertices TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS loads (
			run_id TEXT NOT NULL REFERENCES runs(id),
			area TEXT NOT NULL,
			pattern TEXT NOT NULL,
			value REAL,
			dir INTEGER,
			replace_existing INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_frames_run ON frames(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_areas_run ON areas(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func (r *Recorder) ensureRun() error {
	if r.runID != "" {
		return nil
	}
	id := uuid.NewString()
	_, err := r.db.Exec(`INSERT INTO runs (id, created_at) VALUES (?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}
	r.runID = id
	return nil
}

// exec records one call; any storage error surfaces as a non-zero
// boundary status.
func (r *Recorder) exec(query string, args ...any) int {
	if err := r.ensureRun(); err != nil {
		return 1
	}
	if _, err := r.db.Exec(query, append([]any{r.runID}, args...)...); err != nil {
		return 1
	}
	return 0
}

// SetPresentUnits records the run's unit code on the run row.
func (r *Recorder) SetPresentUnits(unitCode int) int {
	return r.exec(`UPDATE runs SET unit_code = ?2 WHERE id = ?1`, unitCode)
}

// SetStories records the story table, one row per story.
func (r *Recorder) SetStories(base float64, names []string, heights []float64, isMaster []bool, similarTo []string, spliceAbove []bool, spliceHeight []float64, colors []int) int {
	for i := range names {
		status := r.exec(
			`INSERT INTO stories (run_id, name, height, is_master, similar_to, splice_above, splice_height, color, base)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			names[i], heights[i], isMaster[i], similarTo[i], spliceAbove[i], spliceHeight[i], colors[i], base)
		if status != 0 {
			return status
		}
	}
	return 0
}

func (r *Recorder) SetMaterial(name string, matType int) int {
	return r.exec(`INSERT INTO materials (run_id, name, mat_type) VALUES (?, ?, ?)`, name, matType)
}

// The update queries use numbered parameters because exec binds the
// run id first.
func (r *Recorder) SetMPIsotropic(name string, e, poisson, thermal float64) int {
	return r.exec(`UPDATE materials SET e = ?2, poisson = ?3, thermal = ?4 WHERE run_id = ?1 AND name = ?5`,
		e, poisson, thermal, name)
}

func (r *Recorder) SetConcrete(name string, fc float64) int {
	return r.exec(`UPDATE materials SET fc = ?2 WHERE run_id = ?1 AND name = ?3`, fc, name)
}

func (r *Recorder) SetRectangle(name, material string, depth, width float64) int {
	return r.exec(
		`INSERT INTO frame_sections (run_id, name, shape, material, dim1, dim2) VALUES (?, ?, 'rectangle', ?, ?, ?)`,
		name, material, depth, width)
}

func (r *Recorder) SetCircle(name, material string, diameter float64) int {
	return r.exec(
		`INSERT INTO frame_sections (run_id, name, shape, material, dim1) VALUES (?, ?, 'circle', ?, ?)`,
		name, material, diameter)
}

// SetRebarColumn is accepted and discarded: reinforcement is not part
// of the recorded geometry model.
func (r *Recorder) SetRebarColumn(name, longBarMat, confineMat string, pattern, confineType int, cover float64, numCBars, numR3Bars, numR2Bars int, longBarSize, tieBarSize string, tieSpacing float64, tieLegs2, tieLegs3 int, toBeDesigned bool) int {
	if err := r.ensureRun(); err != nil {
		return 1
	}
	return 0
}

func (r *Recorder) SetWall(name string, wallProp, shellType int, material string, thickness float64) int {
	return r.exec(
		`INSERT INTO area_sections (run_id, name, kind, material, thickness) VALUES (?, ?, 'wall', ?, ?)`,
		name, material, thickness)
}

func (r *Recorder) SetSlab(name string, slabType, shellType int, material string, thickness float64) int {
	return r.exec(
		`INSERT INTO area_sections (run_id, name, kind, material, thickness) VALUES (?, ?, 'slab', ?, ?)`,
		name, material, thickness)
}

// AddFrame records a line element and assigns the next F<n> name.
func (r *Recorder) AddFrame(xi, yi, zi, xj, yj, zj float64, section, userName string) (string, int) {
	r.frames++
	name := fmt.Sprintf("F%d", r.frames)
	status := r.exec(
		`INSERT INTO frames (run_id, name, section, user_name, xi, yi, zi, xj, yj, zj)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name, section, userName, xi, yi, zi, xj, yj, zj)
	if status != 0 {
		return "", status
	}
	return name, 0
}

// AddArea records an area element and assigns the next A<n> name.
// Vertices are stored as a JSON array of [x, y, z] triples.
func (r *Recorder) AddArea(x, y, z []float64, section, userName string) (string, int) {
	if len(x) != len(y) || len(x) != len(z) || len(x) < 3 {
		return "", 1
	}
	verts := make([][3]float64, len(x))
	for i := range x {
		verts[i] = [3]float64{x[i], y[i], z[i]}
	}
	data, err := json.Marshal(verts)
	if err != nil {
		return "", 1
	}

	r.areas++
	name := fmt.Sprintf("A%d", r.areas)
	status := r.exec(
		`INSERT INTO areas (run_id, name, section, user_name, vertices) VALUES (?, ?, ?, ?, ?)`,
		name, section, userName, string(data))
	if status != 0 {
		return "", status
	}
	return name, 0
}

func (r *Recorder) SetUniformLoad(area, pattern string, value float64, dir int, replace bool) int {
	return r.exec(
		`INSERT INTO loads (run_id, area, pattern, value, dir, replace_existing) VALUES (?, ?, ?, ?, ?, ?)`,
		area, pattern, value, dir, replace)
}

// RunSummary holds per-run counts for inspection.
type RunSummary struct {
	ID        string
	CreatedAt string
	UnitCode  int
	Stories   int
	Materials int
	Frames    int
	Areas     int
	Loads     int
}

// Runs returns a summary of every recorded run, oldest first.
func (r *Recorder) Runs() ([]RunSummary, error) {
	rows, err := r.db.Query(`SELECT id, created_at, COALESCE(unit_code, 0) FROM runs ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.UnitCode); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	counts := []struct {
		table string
		field func(*RunSummary) *int
	}{
		{"stories", func(s *RunSummary) *int { return &s.Stories }},
		{"materials", func(s *RunSummary) *int { return &s.Materials }},
		{"frames", func(s *RunSummary) *int { return &s.Frames }},
		{"areas", func(s *RunSummary) *int { return &s.Areas }},
		{"loads", func(s *RunSummary) *int { return &s.Loads }},
	}
	for i := range out {
		for _, c := range counts {
			query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE run_id = ?`, c.table)
			if err := r.db.QueryRow(query, out[i].ID).Scan(c.field(&out[i])); err != nil {
				return nil, fmt.Errorf("counting %s: %w", c.table, err)
			}
		}
	}
	return out, nil
}
