package driving

import (
	"context"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// QueryService answers searches over the index for presentation layers.
type QueryService interface {
	// Search returns records whose scoped fields contain term.
	// An empty term returns domain.ErrInvalidQuery without querying.
	Search(ctx context.Context, term string, scope domain.FieldScope) ([]domain.DocumentRecord, error)

	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]domain.DocumentRecord, error)
}
