package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Term  string `json:"term" jsonschema:"text to find as a case-insensitive substring"`
	Scope string `json:"scope,omitempty" jsonschema:"field to match: all (default), filename, title or path"`
}

// ListInput is the input schema for the list_records tool.
type ListInput struct{}

// IngestInput is the input schema for the ingest tool.
type IngestInput struct {
	Manifest string `json:"manifest" jsonschema:"path of the manifest file listing one document per line"`
}

// RecordsOutput is the output schema for the search and list_records tools.
type RecordsOutput struct {
	Records []RecordOutput `json:"records"`
	Count   int            `json:"count"`
}

// RecordOutput represents a single index record.
type RecordOutput struct {
	ID              int64  `json:"id"`
	Filename        string `json:"filename"`
	Title           string `json:"title"`
	Path            string `json:"path"`
	FileModifiedAt  string `json:"file_modified_at,omitempty"`
	RecordCreatedAt string `json:"record_created_at"`
}

// IngestOutput is the output schema for the ingest tool.
type IngestOutput struct {
	RunID      string `json:"run_id"`
	Total      int    `json:"total"`
	Processed  int    `json:"processed"`
	Duplicates int    `json:"duplicates"`
	Errors     int    `json:"errors"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search indexed RTF documents by filename, title or path",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_records",
		Description: "List every indexed RTF document in ingestion order",
	}, s.handleList)

	if s.ports.Ingest != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ingest",
			Description: "Rebuild the index from a manifest of RTF document paths",
		}, s.handleIngest)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, RecordsOutput, error) {
	scope, err := domain.ParseFieldScope(input.Scope)
	if err != nil {
		return nil, RecordsOutput{}, err
	}

	records, err := s.ports.Query.Search(ctx, input.Term, scope)
	if err != nil {
		return nil, RecordsOutput{}, err
	}

	return nil, toRecordsOutput(records), nil
}

// handleList handles the list_records tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, RecordsOutput, error) {
	records, err := s.ports.Query.ListAll(ctx)
	if err != nil {
		return nil, RecordsOutput{}, err
	}
	return nil, toRecordsOutput(records), nil
}

// handleIngest handles the ingest tool invocation.
func (s *Server) handleIngest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestInput,
) (*mcp.CallToolResult, IngestOutput, error) {
	if input.Manifest == "" {
		return nil, IngestOutput{}, fmt.Errorf("%w: manifest is required", domain.ErrInvalidInput)
	}

	report, err := s.ports.Ingest.Run(ctx, input.Manifest)
	if err != nil {
		return nil, IngestOutput{}, err
	}

	return nil, IngestOutput{
		RunID:      report.RunID,
		Total:      report.Total(),
		Processed:  report.Processed,
		Duplicates: report.Duplicates,
		Errors:     report.Errors,
	}, nil
}

func toRecordsOutput(records []domain.DocumentRecord) RecordsOutput {
	output := RecordsOutput{
		Records: make([]RecordOutput, len(records)),
		Count:   len(records),
	}
	for i := range records {
		output.Records[i] = toRecordOutput(records[i])
	}
	return output
}

func toRecordOutput(r domain.DocumentRecord) RecordOutput {
	return RecordOutput{
		ID:              r.ID,
		Filename:        r.Filename,
		Title:           r.TitleText(),
		Path:            r.DirectoryPath,
		FileModifiedAt:  domain.FormatTimestamp(r.FileModifiedAt),
		RecordCreatedAt: domain.FormatTimestamp(&r.RecordCreatedAt),
	}
}
