package domain

import (
	"fmt"
	"strings"
)

// ExportFormat identifies a download format for result rows.
type ExportFormat string

// Available export formats.
const (
	// ExportCSV is comma-separated values.
	ExportCSV ExportFormat = "csv"

	// ExportXLSX is an Excel workbook.
	ExportXLSX ExportFormat = "xlsx"
)

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportCSV, ExportXLSX:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// ParseExportFormat maps a flag or config value to a format.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: unknown export format %q (want csv or xlsx)", ErrInvalidInput, s)
	}
	return f, nil
}

// Built-in defaults.
const (
	// DefaultManifest is the manifest read when none is given.
	DefaultManifest = "repository.txt"

	// DefaultDatabase is the index file name.
	DefaultDatabase = "rtf_titles.db"
)

// AppSettings holds the user's persisted preferences.
type AppSettings struct {
	// StorePath is the SQLite index file. Empty means the data directory default.
	StorePath string

	// Manifest is the manifest read by ingest when no argument is given.
	Manifest string

	// ExportFormat is used by export when --format is not set.
	ExportFormat ExportFormat

	// SearchScope is used by search and export when --by is not set.
	SearchScope FieldScope
}

// DefaultAppSettings returns the built-in defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Manifest:     DefaultManifest,
		ExportFormat: ExportXLSX,
		SearchScope:  ScopeAll,
	}
}
