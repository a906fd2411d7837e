package driven

// TextExtractor converts a markup document body into plain text lines.
// Each extractor handles one markup format.
type TextExtractor interface {
	// Extract returns the visible text of raw.
	// Returns an error wrapping domain.ErrMalformedDocument on bad markup.
	Extract(raw string) (string, error)
}
