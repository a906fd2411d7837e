package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

var (
	ingestWatch bool
	ingestQuiet bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [manifest]",
	Short: "Rebuild the index from a manifest",
	Long: `Reads a manifest (one document path per line), extracts the text of
each RTF document and records its title: the first non-blank line.

The index is rebuilt from scratch on every run. A missing or unreadable
document is recorded with an error title instead of stopping the run.
After the run every stored record is listed unless --quiet is given.

The manifest defaults to the ingest.manifest setting, or repository.txt.
With --watch the manifest is ingested again every time it changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVarP(&ingestWatch, "watch", "w", false, "re-ingest whenever the manifest changes")
	ingestCmd.Flags().BoolVarP(&ingestQuiet, "quiet", "q", false, "do not list the stored records afterwards")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	manifest := manifestPath(args)

	ingestService.SetProgress(func(o domain.IngestOutcome) {
		printOutcome(cmd, o)
	})
	defer ingestService.SetProgress(nil)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if ingestWatch {
		cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", manifest)
		err := ingestService.RunWatch(ctx, manifest, func(report *domain.IngestReport) {
			printSummary(cmd, report)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}
		return nil
	}

	report, err := ingestService.Run(ctx, manifest)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	printSummary(cmd, report)

	if ingestQuiet || queryService == nil {
		return nil
	}
	records, err := queryService.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "All records:")
	return printRecords(cmd, records, false)
}

// manifestPath returns the argument, the configured manifest, or the default.
func manifestPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.Manifest != "" {
			return settings.Manifest
		}
	}
	return domain.DefaultManifest
}

func printOutcome(cmd *cobra.Command, o domain.IngestOutcome) {
	switch o.Status {
	case domain.OutcomeProcessed:
		cmd.Printf("Processed: %s\n", o.Location)
	case domain.OutcomeDuplicate:
		cmd.Printf("Duplicate entry skipped: %s\n", o.Location)
	case domain.OutcomeError:
		cmd.Printf("Recorded with error: %s\n", o.Title)
	}
}

func printSummary(cmd *cobra.Command, r *domain.IngestReport) {
	cmd.Printf("Ingested %d document(s): %d processed, %d duplicate, %d error\n",
		r.Total(), r.Processed, r.Duplicates, r.Errors)
}
