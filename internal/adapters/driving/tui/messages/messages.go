// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Term    string
	Scope   domain.FieldScope
	Records []domain.DocumentRecord
	Err     error
}

// RecordsLoaded carries the full listing back to the model.
type RecordsLoaded struct {
	Records []domain.DocumentRecord
	Err     error
}
