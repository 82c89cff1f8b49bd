// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of
// scenario results; it never computes scenario logic itself.
package output

import (
	"io"

	"steelcost/core/compare"
	"steelcost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// Result contains the complete scenario computation output
type Result struct {
	// State is the scenario the frames were derived under
	State types.ScenarioState `json:"state"`

	// Preset names the preset the state came from, when one was used
	Preset types.PresetName `json:"preset,omitempty"`

	// Frames are the per-year animation frames, ascending by year
	Frames []types.Frame `json:"frames"`

	// Summary is the optional region comparison
	Summary *compare.Summary `json:"summary,omitempty"`

	// Metadata describes the run
	Metadata Metadata `json:"metadata"`
}

// Metadata describes the generation run behind a result
type Metadata struct {
	// StartYear is the first generated year
	StartYear int `json:"start_year"`

	// EndYear is the last generated year
	EndYear int `json:"end_year"`

	// Seed is the RNG seed used; replaying it reproduces the table
	Seed int64 `json:"seed"`

	// SnapshotID is set when the dataset came from the snapshot store
	SnapshotID string `json:"snapshot_id,omitempty"`

	// Timestamp is when the result was computed
	Timestamp string `json:"timestamp"`

	// Version is the tool version
	Version string `json:"version"`
}

// ForFormat returns the formatter for a format type
func ForFormat(f Format) (Formatter, bool) {
	switch f {
	case FormatCLI:
		return &CLIFormatter{}, true
	case FormatJSON:
		return &JSONFormatter{}, true
	default:
		return nil, false
	}
}
