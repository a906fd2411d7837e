// Package domain defines the core business entities for rtftitles.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentRecord: One indexed RTF document and its derived title
//   - SearchQuery: A search term scoped to one or all record fields
//   - IngestOutcome: The result of processing one manifest entry
//   - IngestReport: The summary of one ingestion run
//
// It also owns the title heuristic (DeriveTitle), since that rule is
// pure business logic with no I/O.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
