package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every indexed document",
	Long:  `Lists all records in the index in the order they were ingested.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if queryService == nil {
		return errors.New("query service not configured")
	}

	records, err := queryService.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	return printRecords(cmd, records, listJSON)
}
