// Package harness supplements package tests: snapshot formatting and
// persistence, golden-file comparison, and text search over captured
// frames.
package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/tuilab/loom/backend"
)

// Format selects a snapshot rendering.
type Format int

const (
	Plain Format = iota
	ANSI
	JSON
	JSONPretty
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case ANSI:
		return "ansi"
	case JSON:
		return "json"
	case JSONPretty:
		return "json_pretty"
	default:
		return "unknown"
	}
}

// Snapshot wraps a captured frame with formatting and persistence.
type Snapshot struct {
	backend.Snapshot
}

// Capture snapshots the current state of a backend.
func Capture(c *backend.Capture) Snapshot {
	return Snapshot{c.Snapshot()}
}

// Render returns the snapshot in the requested format.
func (s Snapshot) Render(f Format) (string, error) {
	switch f {
	case Plain:
		return s.Plain(), nil
	case ANSI:
		return s.ANSI(), nil
	case JSON:
		data, err := json.Marshal(s.Snapshot)
		return string(data), err
	case JSONPretty:
		data, err := json.MarshalIndent(s.Snapshot, "", "  ")
		return string(data), err
	default:
		return "", fmt.Errorf("unknown snapshot format %d", f)
	}
}

// WriteFile renders the snapshot and writes it, creating parent
// directories as needed.
func (s Snapshot) WriteFile(path string, f Format) error {
	data, err := s.Render(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(data), 0o644)
}

// ReadFile loads a snapshot previously written in JSON format.
func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	snap, err := backend.ParseSnapshot(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return Snapshot{snap}, nil
}

// FuzzyMatch is one content line matched by a fuzzy pattern.
type FuzzyMatch struct {
	// Line is the row index in the snapshot.
	Line int

	// Text is the full content of the matched line.
	Text string

	// Score ranks the match; higher is better.
	Score int
}

// FuzzyFind fuzzy-matches pattern against the snapshot's content lines,
// best matches first.
func (s Snapshot) FuzzyFind(pattern string) []FuzzyMatch {
	matches := fuzzy.Find(pattern, s.ContentLines())
	out := make([]FuzzyMatch, len(matches))
	for i, m := range matches {
		out[i] = FuzzyMatch{Line: m.Index, Text: m.Str, Score: m.Score}
	}
	return out
}

// StripANSI removes all escape sequences, leaving plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
