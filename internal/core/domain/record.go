package domain

import "time"

// DocumentRecord is one persisted row of the index.
// Records are created once by ingestion and never mutated.
type DocumentRecord struct {
	// ID is the surrogate key, assigned monotonically by the store.
	ID int64

	// Filename is the base name of the source document.
	Filename string

	// Title is the derived or diagnostic title. Nil when stored as NULL.
	Title *string

	// DirectoryPath is the enclosing directory of the source document.
	DirectoryPath string

	// FileModifiedAt is the source mtime at ingestion, nil if it could not be read.
	FileModifiedAt *time.Time

	// RecordCreatedAt is set by the store at insertion.
	RecordCreatedAt time.Time
}

// TitleText returns the title or an empty string when it is absent.
func (r DocumentRecord) TitleText() string {
	if r.Title == nil {
		return ""
	}
	return *r.Title
}

// Row is the projection of a record handed to presentation and export.
type Row struct {
	Filename        string     `json:"filename"`
	Title           *string    `json:"title"`
	Path            string     `json:"path"`
	FileModifiedAt  *time.Time `json:"file_modified_at"`
	RecordCreatedAt time.Time  `json:"record_created_at"`
}

// Row projects the record to its externally visible columns.
func (r DocumentRecord) Row() Row {
	return Row{
		Filename:        r.Filename,
		Title:           r.Title,
		Path:            r.DirectoryPath,
		FileModifiedAt:  r.FileModifiedAt,
		RecordCreatedAt: r.RecordCreatedAt,
	}
}

// Rows projects a slice of records, preserving order.
func Rows(records []DocumentRecord) []Row {
	rows := make([]Row, len(records))
	for i := range records {
		rows[i] = records[i].Row()
	}
	return rows
}

// TimestampLayout is the display format for record timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders an optional time in local time, or an empty
// string when absent. Stores keep times in UTC.
func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(TimestampLayout)
}
