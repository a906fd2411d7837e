package driving

import (
	"context"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// ProgressFunc receives each outcome as soon as its document is handled.
type ProgressFunc func(domain.IngestOutcome)

// IngestService rebuilds the index from a manifest.
type IngestService interface {
	// Run initialises the store and ingests every manifest entry in order.
	// Per-document failures are recorded in the report; only storage
	// failures abort the run.
	Run(ctx context.Context, manifestPath string) (*domain.IngestReport, error)

	// RunWatch runs once, then again each time the manifest changes,
	// until ctx is cancelled.
	RunWatch(ctx context.Context, manifestPath string, onReport func(*domain.IngestReport)) error

	// SetProgress installs a per-document callback. Nil disables it.
	SetProgress(fn ProgressFunc)
}
