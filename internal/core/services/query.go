package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driving"
	"github.com/custodia-labs/rtftitles/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService answers searches over the index.
type QueryService struct {
	store driven.IndexStore
}

// NewQueryService creates a new query service.
func NewQueryService(store driven.IndexStore) *QueryService {
	return &QueryService{store: store}
}

// Search returns records whose scoped fields contain term.
func (s *QueryService) Search(
	ctx context.Context, term string, scope domain.FieldScope,
) ([]domain.DocumentRecord, error) {
	query := domain.SearchQuery{Term: term, Scope: scope}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Search %q in %s", query.Term, scope)

	records, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	logger.Debug("Search returned %d record(s)", len(records))
	return records, nil
}

// ListAll returns every record in insertion order.
func (s *QueryService) ListAll(ctx context.Context) ([]domain.DocumentRecord, error) {
	records, err := s.store.QueryAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing index: %w", err)
	}
	return records, nil
}
