package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	searchBy   string
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search indexed documents",
	Long: `Finds records whose filename, title or path contains the term.
Matching is a case-insensitive substring match.

Use --by to restrict the match to one field:
  all       filename, title or path (default)
  filename  the document file name
  title     the derived title
  path      the enclosing directory`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchBy, "by", "", "field to search: all, filename, title or path")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if queryService == nil {
		return errors.New("query service not configured")
	}

	scope, err := resolveScope(searchBy)
	if err != nil {
		return err
	}

	records, err := queryService.Search(cmd.Context(), args[0], scope)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return printRecords(cmd, records, searchJSON)
}
