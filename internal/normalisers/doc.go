// Package normalisers groups the text extractors used by ingestion.
// Each extractor implements driven.TextExtractor for one markup format;
// rtf converts Rich Text Format into plain text.
package normalisers
