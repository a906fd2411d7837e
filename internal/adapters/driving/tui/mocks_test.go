package tui

import (
	"context"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// MockQueryService is a mock implementation of driving.QueryService.
type MockQueryService struct {
	Records   []domain.DocumentRecord
	Err       error
	LastTerm  string
	LastScope domain.FieldScope
	Searches  int
	Listings  int
}

func (m *MockQueryService) Search(
	_ context.Context, term string, scope domain.FieldScope,
) ([]domain.DocumentRecord, error) {
	m.Searches++
	m.LastTerm, m.LastScope = term, scope
	if m.Err != nil {
		return nil, m.Err
	}
	if term == "" {
		return nil, domain.ErrInvalidQuery
	}
	return m.Records, nil
}

func (m *MockQueryService) ListAll(_ context.Context) ([]domain.DocumentRecord, error) {
	m.Listings++
	return m.Records, m.Err
}
