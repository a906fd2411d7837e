package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// IndexStore persists document records under the
// (path, filename, title) uniqueness constraint.
// Backed by SQLite for durable storage.
type IndexStore interface {
	// Initialize discards all records and recreates the schema.
	Initialize(ctx context.Context) error

	// Insert adds a record. It returns false without error when the
	// uniqueness triple already exists.
	Insert(ctx context.Context, filename string, title *string, path string, fileModifiedAt *time.Time) (bool, error)

	// QueryAll returns every record in insertion order.
	QueryAll(ctx context.Context) ([]domain.DocumentRecord, error)

	// Search returns records whose scoped fields contain the term,
	// ignoring ASCII case only, in insertion order.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.DocumentRecord, error)

	// Count returns the number of records.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
