package mcp

import (
	"context"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driving"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	records   []domain.DocumentRecord
	err       error
	lastTerm  string
	lastScope domain.FieldScope
}

func (m *mockQueryService) Search(
	_ context.Context,
	term string,
	scope domain.FieldScope,
) ([]domain.DocumentRecord, error) {
	m.lastTerm, m.lastScope = term, scope
	return m.records, m.err
}

func (m *mockQueryService) ListAll(_ context.Context) ([]domain.DocumentRecord, error) {
	return m.records, m.err
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	report       *domain.IngestReport
	err          error
	lastManifest string
}

func (m *mockIngestService) Run(_ context.Context, manifestPath string) (*domain.IngestReport, error) {
	m.lastManifest = manifestPath
	return m.report, m.err
}

func (m *mockIngestService) RunWatch(
	_ context.Context, _ string, _ func(*domain.IngestReport),
) error {
	return m.err
}

func (m *mockIngestService) SetProgress(_ driving.ProgressFunc) {}
