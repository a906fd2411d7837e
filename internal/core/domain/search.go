package domain

import (
	"fmt"
	"strings"
)

// FieldScope selects which record fields a search term is matched against.
type FieldScope int

const (
	// ScopeAll matches filename, title or path.
	ScopeAll FieldScope = iota

	// ScopeFilename matches the filename only.
	ScopeFilename

	// ScopeTitle matches the title only.
	ScopeTitle

	// ScopePath matches the directory path only.
	ScopePath
)

// FieldScopes lists every scope in display order.
func FieldScopes() []FieldScope {
	return []FieldScope{ScopeAll, ScopeFilename, ScopeTitle, ScopePath}
}

// String returns the label used by the CLI and MCP surfaces.
func (s FieldScope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeFilename:
		return "filename"
	case ScopeTitle:
		return "title"
	case ScopePath:
		return "path"
	default:
		return fmt.Sprintf("FieldScope(%d)", int(s))
	}
}

// Description returns a human-readable label for the scope.
func (s FieldScope) Description() string {
	switch s {
	case ScopeAll:
		return "All Fields"
	case ScopeFilename:
		return "Filename"
	case ScopeTitle:
		return "Title"
	case ScopePath:
		return "Path"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is one of the defined scopes.
func (s FieldScope) IsValid() bool {
	return s >= ScopeAll && s <= ScopePath
}

// Next returns the scope after s, wrapping around.
func (s FieldScope) Next() FieldScope {
	if !s.IsValid() {
		return ScopeAll
	}
	return (s + 1) % (ScopePath + 1)
}

// ParseFieldScope maps a label to a scope. Matching is case-insensitive and
// accepts both the short label ("title") and the description ("All Fields").
// An empty label means ScopeAll.
func ParseFieldScope(label string) (FieldScope, error) {
	normalised := strings.ToLower(strings.TrimSpace(label))
	if normalised == "" {
		return ScopeAll, nil
	}
	for _, s := range FieldScopes() {
		if normalised == s.String() || normalised == strings.ToLower(s.Description()) {
			return s, nil
		}
	}
	return ScopeAll, fmt.Errorf("%w: unknown field scope %q", ErrInvalidQuery, label)
}

// SearchQuery is a transient search request.
type SearchQuery struct {
	// Term is matched as a case-insensitive substring.
	Term string

	// Scope selects the fields Term is matched against.
	Scope FieldScope
}

// Validate checks the query has a non-blank term and a known scope.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Term) == "" {
		return fmt.Errorf("%w: search term is required", ErrInvalidQuery)
	}
	if !q.Scope.IsValid() {
		return fmt.Errorf("%w: unknown field scope %d", ErrInvalidQuery, int(q.Scope))
	}
	return nil
}
