package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// NoTitleFound is returned by DeriveTitle for documents without visible text.
const NoTitleFound = "No title found"

// DeriveTitle returns the first non-blank line of plainText, trimmed.
// Lines holding only whitespace or control characters left over from markup
// stripping count as blank.
func DeriveTitle(plainText string) string {
	for _, line := range strings.Split(plainText, "\n") {
		if isBlankLine(line) {
			continue
		}
		return strings.TrimSpace(line)
	}
	return NoTitleFound
}

func isBlankLine(line string) bool {
	for _, r := range line {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == '\uFEFF' {
			continue
		}
		return false
	}
	return true
}

// MissingDocumentTitle is the diagnostic title for a location that does not exist.
func MissingDocumentTitle(location string) string {
	return fmt.Sprintf("Error: File not found - %s", location)
}

// ProcessingErrorTitle is the diagnostic title for a document that failed extraction.
func ProcessingErrorTitle(location string, err error) string {
	return fmt.Sprintf("Error processing %s: %v", location, err)
}
