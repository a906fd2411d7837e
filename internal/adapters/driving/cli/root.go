// Package cli provides the cobra command tree for rtftitles.
package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rtftitles/internal/core/ports/driving"
	"github.com/custodia-labs/rtftitles/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose    bool
	dbPath     string
	configPath string
)

// Services injected by SetServices or built by the bootstrap function.
var (
	ingestService   driving.IngestService
	queryService    driving.QueryService
	settingsService driving.SettingsService
	closeServices   func() error
)

// Options carries the global flag values to a Bootstrap function.
type Options struct {
	// ConfigPath is the --config file, empty for the default location.
	ConfigPath string

	// DBPath is the --db file, empty to use settings or the default.
	DBPath string
}

// Services is the set of core services the commands drive.
type Services struct {
	Ingest   driving.IngestService
	Query    driving.QueryService
	Settings driving.SettingsService

	// Close releases the store. Optional.
	Close func() error
}

// Bootstrap builds services once global flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var (
	bootstrap     Bootstrap
	bootstrapOnce sync.Once
	bootstrapErr  error
)

var rootCmd = &cobra.Command{
	Use:   "rtftitles",
	Short: "Index and search RTF document titles",
	Long: `rtftitles reads a manifest of RTF document paths, derives a title for
each document from its first non-blank line of text, and keeps the results
in a local SQLite index that can be searched by filename, title or path.

Get started:
  rtftitles ingest repository.txt
  rtftitles search "annual report"
  rtftitles tui`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline steps to stderr")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "index database file (default ~/.rtftitles/data/rtf_titles.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.rtftitles/config.toml)")
}

// SetServices injects services directly. Used by tests and embedders.
func SetServices(s *Services) {
	if s == nil {
		ingestService, queryService, settingsService, closeServices = nil, nil, nil, nil
		return
	}
	ingestService = s.Ingest
	queryService = s.Query
	settingsService = s.Settings
	closeServices = s.Close
}

// SetBootstrap installs the function that builds services on first use.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
	bootstrapOnce = sync.Once{}
	bootstrapErr = nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// ensureServices runs the bootstrap function once, if one is installed.
func ensureServices() error {
	if bootstrap == nil {
		return nil
	}
	bootstrapOnce.Do(func() {
		s, err := bootstrap(Options{ConfigPath: configPath, DBPath: dbPath})
		if err != nil {
			bootstrapErr = fmt.Errorf("starting services: %w", err)
			return
		}
		SetServices(s)
	})
	return bootstrapErr
}

// Execute runs the root command and releases services afterwards.
// Cancelling ctx stops long-running commands such as ingest --watch.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		err = errors.Join(err, closeServices())
		closeServices = nil
	}
	return err
}
