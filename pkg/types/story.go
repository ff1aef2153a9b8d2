// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared record types exchanged between the
// pipeline stages: story rows, section property tables, plan primitives,
// and the 3D element geometry handed to the engine boundary.
package types

// Story is one row of the story table. Sequences of stories are ordered
// bottom-to-top everywhere in the pipeline; the spreadsheet boundary is
// responsible for reversing the top-down sheet order on load.
type Story struct {
	// Level is the unique user-facing story label (e.g. "L12").
	Level string `json:"level" yaml:"level"`

	// Height is the story height in input units (ft or m). Always > 0.
	Height float64 `json:"height" yaml:"height"`

	// IsMaster marks the story as a master story in the engine.
	IsMaster bool `json:"is_master" yaml:"is_master"`

	// SimilarTo names the master story this one mirrors, or "None".
	SimilarTo string `json:"similar_to" yaml:"similar_to"`

	// SpliceAbove indicates a column splice above this story.
	SpliceAbove bool `json:"splice_above" yaml:"splice_above"`

	// SpliceHeight is the splice height in input units, 0 when unused.
	SpliceHeight float64 `json:"splice_height" yaml:"splice_height"`

	// Color is the 24-bit RGB display color for the story.
	Color int `json:"color" yaml:"color"`
}

// NoSimilarStory is the SimilarTo value for stories that mirror none.
const NoSimilarStory = "None"
