package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for rtftitles resources.
	uriScheme = "rtftitles://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing every record.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "records",
		Name:        "records",
		Description: "All indexed RTF documents with their titles",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	// Template for scoped searches.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "search/{scope}/{term}",
		Name:        "search",
		Description: "Records whose scoped field contains the term",
		MIMEType:    "application/json",
	}, s.handleSearchResource)
}

// handleRecordsResource returns every record.
func (s *Server) handleRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Query.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return jsonResult(req.Params.URI, records)
}

// handleSearchResource returns records matching a scoped search.
func (s *Server) handleSearchResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract scope and term from URI: rtftitles://search/{scope}/{term}
	scopeLabel, term := extractSearch(req.Params.URI)
	if term == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	scope, err := domain.ParseFieldScope(scopeLabel)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Query.Search(ctx, term, scope)
	if err != nil {
		return nil, fmt.Errorf("searching records: %w", err)
	}
	return jsonResult(req.Params.URI, records)
}

func jsonResult(uri string, records []domain.DocumentRecord) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(toRecordsOutput(records).Records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling records: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSearch extracts the scope and unescaped term from a URI like
// rtftitles://search/{scope}/{term}.
func extractSearch(uri string) (scope, term string) {
	const prefix = uriScheme + "search/"

	if !strings.HasPrefix(uri, prefix) {
		return "", ""
	}

	rest := strings.TrimPrefix(uri, prefix)
	scope, rawTerm, ok := strings.Cut(rest, "/")
	if !ok {
		return "", ""
	}

	term, err := url.PathUnescape(rawTerm)
	if err != nil {
		return "", ""
	}
	return scope, term
}
