package driven

import (
	"io"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// Exporter renders result rows into a downloadable format.
type Exporter interface {
	// Write renders rows to w.
	Write(w io.Writer, rows []domain.Row) error

	// DefaultFilename returns the suggested file name for the output.
	DefaultFilename() string
}
