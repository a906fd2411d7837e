package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
)

// Ensure CSV implements the interface.
var _ driven.Exporter = (*CSV)(nil)

// CSV writes rows as comma-separated values with a header line.
type CSV struct{}

// NewCSV creates a CSV exporter.
func NewCSV() *CSV {
	return &CSV{}
}

// Write renders rows to w.
func (e *CSV) Write(w io.Writer, rows []domain.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(cells(row)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// DefaultFilename returns rtf_search_results.csv.
func (e *CSV) DefaultFilename() string {
	return DefaultBasename + ".csv"
}
