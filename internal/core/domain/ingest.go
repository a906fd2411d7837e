package domain

import "time"

// OutcomeStatus classifies how a manifest entry was handled.
type OutcomeStatus int

const (
	// OutcomeProcessed means a new record was inserted.
	OutcomeProcessed OutcomeStatus = iota

	// OutcomeDuplicate means the record triple already existed.
	OutcomeDuplicate

	// OutcomeError means a diagnostic title was recorded in place of a real one.
	OutcomeError
)

// String returns a short label for the status.
func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeProcessed:
		return "processed"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// IngestOutcome reports what happened to one manifest entry.
type IngestOutcome struct {
	// Location is the manifest line as given.
	Location string

	// Filename and DirectoryPath are split from Location.
	Filename      string
	DirectoryPath string

	// Title is the derived or diagnostic title.
	Title string

	// FileModifiedAt is nil when the file could not be stat'ed.
	FileModifiedAt *time.Time

	// Status classifies the outcome.
	Status OutcomeStatus

	// Err holds the classified cause: ErrMissingDocument or
	// ErrMalformedDocument when a diagnostic title was recorded, and
	// ErrDuplicateRecord (possibly joined with the former) on a skip.
	Err error
}

// IngestReport summarises one ingestion run.
type IngestReport struct {
	// RunID identifies the run in logs.
	RunID string

	// ManifestPath is the manifest that was read.
	ManifestPath string

	StartedAt  time.Time
	FinishedAt time.Time

	// Outcomes are in manifest order.
	Outcomes []IngestOutcome

	Processed  int
	Duplicates int
	Errors     int
}

// Add appends an outcome and updates the counters.
func (r *IngestReport) Add(o IngestOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case OutcomeProcessed:
		r.Processed++
	case OutcomeDuplicate:
		r.Duplicates++
	case OutcomeError:
		r.Errors++
	}
}

// Total returns the number of manifest entries handled.
func (r *IngestReport) Total() int {
	return len(r.Outcomes)
}
