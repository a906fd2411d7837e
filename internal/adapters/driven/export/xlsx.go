package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
)

// Ensure XLSX implements the interface.
var _ driven.Exporter = (*XLSX)(nil)

// sheetName is the single worksheet of an export.
const sheetName = "Sheet1"

// XLSX writes rows to a single-sheet Excel workbook.
type XLSX struct{}

// NewXLSX creates an XLSX exporter.
func NewXLSX() *XLSX {
	return &XLSX{}
}

// Write renders rows to w as a workbook with a bold header row.
func (e *XLSX) Write(w io.Writer, rows []domain.Row) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := writeRow(f, 1, Header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(f, i+2, cells(row)); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetColWidth(sheetName, "A", "E", 24); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", row, err)
	}
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &vals); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

// DefaultFilename returns rtf_search_results.xlsx.
func (e *XLSX) DefaultFilename() string {
	return DefaultBasename + ".xlsx"
}
