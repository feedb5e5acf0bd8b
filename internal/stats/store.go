// Package stats holds the canonical per-file records produced by a cloc run.
package stats

import (
	"errors"
	"fmt"
)

// Record is one physical file counted by cloc. Immutable once ingested.
type Record struct {
	Path     string
	Language string
	Code     int
	Comment  int
	Blank    int
}

// Total returns the derived total line count for the record.
func (r Record) Total() int {
	return r.Code + r.Comment + r.Blank
}

// RawRecord is the unvalidated shape handed over by the ingestion collaborator.
type RawRecord struct {
	Path     string
	Language string
	Code     int
	Comment  int
	Blank    int
}

// Warning reports a raw record that failed validation and was dropped.
// Dropping a record is never fatal; a single malformed line from cloc must not
// abort an otherwise usable result set.
type Warning struct {
	Index  int
	Path   string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("record %d (%q) dropped: %s", w.Index, w.Path, w.Reason)
}

// Totals is the grand-total row shown in the persistent summary area.
// It is valid in every grouping mode, including an empty run (all zeros).
type Totals struct {
	Files   int
	Code    int
	Comment int
	Blank   int
}

// Total returns the combined line count across all categories.
func (t Totals) Total() int {
	return t.Code + t.Comment + t.Blank
}

// ErrAlreadyIngested is returned when Ingest is called more than once.
var ErrAlreadyIngested = errors.New("stats: store already ingested")

// Store holds the records of a single run. Write-once: Ingest is called
// exactly once, after which the store is read-only.
type Store struct {
	records  []Record
	warnings []Warning
	totals   Totals
	ingested bool
}

// NewStore creates an empty store awaiting ingestion.
func NewStore() *Store {
	return &Store{}
}

// Ingest validates and stores the raw records in their given order.
// Invalid entries are dropped and reported via Warnings.
func (s *Store) Ingest(raw []RawRecord) error {
	if s.ingested {
		return ErrAlreadyIngested
	}
	s.ingested = true

	s.records = make([]Record, 0, len(raw))
	for i, r := range raw {
		if reason := validate(r); reason != "" {
			s.warnings = append(s.warnings, Warning{Index: i, Path: r.Path, Reason: reason})
			continue
		}
		rec := Record{
			Path:     r.Path,
			Language: r.Language,
			Code:     r.Code,
			Comment:  r.Comment,
			Blank:    r.Blank,
		}
		s.records = append(s.records, rec)
		s.totals.Files++
		s.totals.Code += rec.Code
		s.totals.Comment += rec.Comment
		s.totals.Blank += rec.Blank
	}
	return nil
}

func validate(r RawRecord) string {
	switch {
	case r.Path == "":
		return "empty path"
	case r.Code < 0:
		return "negative code count"
	case r.Comment < 0:
		return "negative comment count"
	case r.Blank < 0:
		return "negative blank count"
	}
	return ""
}

// All returns the valid records in ingestion order. The returned slice is
// shared; callers must not modify it.
func (s *Store) All() []Record {
	return s.records
}

// Len returns the number of valid records.
func (s *Store) Len() int {
	return len(s.records)
}

// Totals returns the grand-total summary row.
func (s *Store) Totals() Totals {
	return s.totals
}

// Warnings returns the records dropped during ingestion.
func (s *Store) Warnings() []Warning {
	return s.warnings
}

// Empty reports whether ingestion produced zero valid records. This is an
// explicit, representable state so the presentation layer can show
// "no files found" instead of failing on an empty view.
func (s *Store) Empty() bool {
	return len(s.records) == 0
}
