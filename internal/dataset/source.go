package dataset

import (
	"log/slog"
	"sync"
)

// Source is the process-wide dataset cache. The table is read, decoded and
// enriched exactly once, on first use, and the resulting slice is reused for
// every render until the process exits — the source file is assumed static
// for the process lifetime, so there is no invalidation.
//
// Init-once contract: the first call to Records (from any goroutine)
// performs the load; every later call returns the same slice and the same
// error. A failed load is sticky and is not retried. Callers must treat the
// returned records as read-only; filtering copies, it never mutates.
type Source struct {
	path string

	once     sync.Once
	records  []Record
	warnings []Warning
	err      error
}

// NewSource creates a Source for the table at path. Nothing is read until
// the first call to Records.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Records returns the enriched dataset, loading it on first use.
func (s *Source) Records() ([]Record, error) {
	s.once.Do(s.load)
	return s.records, s.err
}

// Warnings returns the per-row load warnings gathered during the initial
// load. Loads the dataset if it has not been loaded yet.
func (s *Source) Warnings() ([]Warning, error) {
	s.once.Do(s.load)
	return s.warnings, s.err
}

// Departments returns the distinct Department values in order of first
// appearance — the filter widget's default "all" selection.
func (s *Source) Departments() ([]string, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if r.Department == "" || seen[r.Department] {
			continue
		}
		seen[r.Department] = true
		out = append(out, r.Department)
	}
	return out, nil
}

func (s *Source) load() {
	records, warnings, err := ReadFile(s.path)
	if err != nil {
		s.err = err
		return
	}
	s.records = Enrich(records)
	s.warnings = warnings

	for _, w := range warnings {
		slog.Warn("dataset: malformed value",
			"row", w.Row, "column", w.Column, "reason", w.Message)
	}
	slog.Info("dataset loaded",
		"path", s.path, "records", len(s.records), "warnings", len(warnings))
}
