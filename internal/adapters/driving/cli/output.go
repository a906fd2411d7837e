package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// recordHeaders are the columns of the record table.
var recordHeaders = []string{"Filename", "Title", "Path", "Last Modified", "Record Created"}

// printRecords renders records to stdout as a table, or as JSON rows when
// asJSON is set.
func printRecords(cmd *cobra.Command, records []domain.DocumentRecord, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		data, err := json.MarshalIndent(domain.Rows(records), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No records found.")
		return nil
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Filename,
			r.TitleText(),
			r.DirectoryPath,
			domain.FormatTimestamp(r.FileModifiedAt),
			domain.FormatTimestamp(&r.RecordCreatedAt),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(recordHeaders...).
		Rows(rows...)
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "%d record(s)\n", len(records))
	return nil
}

// resolveScope returns the --by flag value, falling back to the configured
// default scope.
func resolveScope(flag string) (domain.FieldScope, error) {
	if flag != "" {
		return domain.ParseFieldScope(flag)
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.SearchScope, nil
		}
	}
	return domain.ScopeAll, nil
}
