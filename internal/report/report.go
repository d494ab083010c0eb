// Package report stamps and persists analysis results.
//
// Reports carry a Meta header with the generation time taken from the
// package clock, which tests can freeze via SetClock. WriteJSON is the
// single write path for machine-readable output: indented JSON with a
// trailing newline, parent directories created as needed.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Meta describes one generated report.
type Meta struct {
	GeneratedAt time.Time `json:"generated_at"`
	Dataset     string    `json:"dataset"`
	Source      string    `json:"source"`
	Rows        int       `json:"rows"`
}

// NewMeta stamps a report header with the current clock time in UTC.
func NewMeta(dataset, source string, rows int) Meta {
	return Meta{
		GeneratedAt: clock.Now().UTC(),
		Dataset:     dataset,
		Source:      source,
		Rows:        rows,
	}
}

// WriteJSON marshals v with indentation and writes it to path, creating
// parent directories as needed.
func WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
