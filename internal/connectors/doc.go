// Package connectors groups the document sources used by ingestion.
// Each source implements driven.DocumentSource for one kind of location;
// filesystem reads manifests and documents from local disk.
package connectors
