package driven

import (
	"context"
	"time"
)

// DocumentSource enumerates documents to ingest and reads their content.
// Backed by the local filesystem.
type DocumentSource interface {
	// ListDocuments returns one location per non-empty manifest line, in order.
	// Duplicated lines are kept.
	ListDocuments(manifestPath string) ([]string, error)

	// ReadDocument returns the document body.
	// Returns domain.ErrMissingDocument when the location does not exist.
	ReadDocument(location string) (string, error)

	// StatDocument returns the last modification time, or nil if the stat fails.
	StatDocument(location string) *time.Time

	// SplitLocation splits a location into its parent directory and base name.
	SplitLocation(location string) (dir, base string)
}

// ManifestWatcher signals changes to a manifest file.
type ManifestWatcher interface {
	// WatchManifest calls onChange after each write to or re-creation of the
	// manifest. It blocks until ctx is cancelled or the watcher fails.
	WatchManifest(ctx context.Context, manifestPath string, onChange func()) error
}
