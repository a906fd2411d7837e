package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/rtftitles/internal/adapters/driven/export"
	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

var (
	exportFormat string
	exportBy     string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [term]",
	Short: "Export records as CSV or Excel",
	Long: `Writes search results to a CSV or XLSX file with the columns
Filename, Title, Path, Last Modified and Record Created. Timestamps are
written in local time.

Without a term every record is exported. The format defaults to the
export.format setting (xlsx). The file defaults to rtf_search_results.xlsx
or rtf_search_results.csv; use -o - to write to stdout.

Examples:
  rtftitles export report --by title
  rtftitles export --format csv -o all.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format: csv or xlsx")
	exportCmd.Flags().StringVar(&exportBy, "by", "", "field to search: all, filename, title or path")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if queryService == nil {
		return errors.New("query service not configured")
	}

	format, err := resolveExportFormat(exportFormat)
	if err != nil {
		return err
	}
	exporter, err := export.New(format)
	if err != nil {
		return err
	}

	var records []domain.DocumentRecord
	if len(args) == 1 {
		scope, scopeErr := resolveScope(exportBy)
		if scopeErr != nil {
			return scopeErr
		}
		records, err = queryService.Search(cmd.Context(), args[0], scope)
	} else {
		records, err = queryService.ListAll(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	rows := domain.Rows(records)

	if exportOutput == "-" {
		out := cmd.OutOrStdout()
		if format == domain.ExportXLSX && isTerminal(out) {
			return errors.New("refusing to write a binary workbook to a terminal; use -o <file>")
		}
		return exporter.Write(out, rows)
	}

	path := exportOutput
	if path == "" {
		path = exporter.DefaultFilename()
	}
	if err := writeExportFile(path, rows, exporter.Write); err != nil {
		return err
	}
	cmd.Printf("Exported %d record(s) to %s\n", len(rows), path)
	return nil
}

// resolveExportFormat returns the --format value, falling back to settings.
func resolveExportFormat(flag string) (domain.ExportFormat, error) {
	if flag != "" {
		return domain.ParseExportFormat(flag)
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.ExportFormat, nil
		}
	}
	return domain.DefaultAppSettings().ExportFormat, nil
}

func writeExportFile(path string, rows []domain.Row, write func(io.Writer, []domain.Row) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := write(f, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
