package export

import (
	"fmt"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
)

// DefaultBasename is the file name used for exports without extension.
const DefaultBasename = "rtf_search_results"

// Header is the column header row.
var Header = []string{"Filename", "Title", "Path", "Last Modified", "Record Created"}

// New returns the exporter for a format.
func New(format domain.ExportFormat) (driven.Exporter, error) {
	switch format {
	case domain.ExportCSV:
		return NewCSV(), nil
	case domain.ExportXLSX:
		return NewXLSX(), nil
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", domain.ErrInvalidInput, string(format))
	}
}

// cells returns the string cells of a row in header order.
func cells(row domain.Row) []string {
	title := ""
	if row.Title != nil {
		title = *row.Title
	}
	return []string{
		row.Filename,
		title,
		row.Path,
		domain.FormatTimestamp(row.FileModifiedAt),
		domain.FormatTimestamp(&row.RecordCreatedAt),
	}
}
