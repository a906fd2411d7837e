package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rtftitles/internal/adapters/driving/tui"
)

var tuiBy string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch an interactive browser over the index.

The browser opens with every record listed. Type a term and press Enter
to search the active field scope.

Controls:
  Enter    - Search
  Tab      - Cycle scope (All Fields, Filename, Title, Path)
  Ctrl+A   - Show all records
  ↑/↓      - Navigate records
  Esc      - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiBy, "by", "", "initial scope: all, filename, title or path")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := ensureServices(); err != nil {
		return err
	}
	if queryService == nil {
		return errors.New("query service not configured")
	}

	scope, err := resolveScope(tuiBy)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(queryService), scope)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
