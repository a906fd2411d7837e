package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Document Errors.
	// These are recovered per document and never abort an ingestion run.

	// ErrMissingDocument indicates a manifest location could not be found.
	ErrMissingDocument = errors.New("document not found")

	// ErrMalformedDocument indicates the markup could not be converted to text.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrDuplicateRecord indicates the (path, filename, title) triple already exists.
	// It is reported as a skip, not a failure.
	ErrDuplicateRecord = errors.New("duplicate record")

	// Query Errors.

	// ErrInvalidQuery indicates an empty search term or an unknown field scope.
	ErrInvalidQuery = errors.New("invalid query")

	// Storage Errors.

	// ErrStorageUnavailable indicates the index store cannot be initialised or written.
	// This is the one fatal condition of an ingestion run.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
