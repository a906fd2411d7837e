// Package tui provides an interactive terminal browser for the RTF title index.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/rtftitles/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Query answers searches and listings over the index.
	Query driving.QueryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(query driving.QueryService) *Ports {
	return &Ports{Query: query}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
