package mcp

import (
	"github.com/custodia-labs/rtftitles/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query answers searches over the index.
	Query driving.QueryService

	// Ingest rebuilds the index. Optional; the ingest tool is only
	// registered when set.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
