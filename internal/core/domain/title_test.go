package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"first line", "Hello World\nSecond line", "Hello World"},
		{"skips leading blank lines", "\n\n   \nAnnual Report 2023\nBody", "Annual Report 2023"},
		{"trims surrounding whitespace", "   \t Padded Title \t  \nnext", "Padded Title"},
		{"keeps inner spacing", "A  B   C", "A  B   C"},
		{"carriage return line endings", "\r\nTitle\r\nBody\r\n", "Title"},
		{"control artifacts count as blank", "\x00\x01\n\t\x0b\nReal Title", "Real Title"},
		{"byte order mark counts as blank", "\uFEFF\nAfter BOM", "After BOM"},
		{"non-breaking space counts as blank", "\u00a0\u00a0\nTitle", "Title"},
		{"trims non-breaking spaces", "\u00a0 Title\u00a0\u00a0\nBody", "Title"},
		{"single line without newline", "Only", "Only"},
		{"unicode content", "\n  Überschrift – Test  ", "Überschrift – Test"},
		{"empty input", "", NoTitleFound},
		{"whitespace only", "  \n\t\n \r\n", NoTitleFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.input))
		})
	}
}

func TestDeriveTitle_NeverMultiLine(t *testing.T) {
	title := DeriveTitle("line one\nline two\nline three")
	assert.NotContains(t, title, "\n")
}

func TestNoTitleFound_Value(t *testing.T) {
	assert.Equal(t, "No title found", NoTitleFound)
}

func TestMissingDocumentTitle(t *testing.T) {
	assert.Equal(t, "Error: File not found - /docs/missing.rtf", MissingDocumentTitle("/docs/missing.rtf"))
}

func TestProcessingErrorTitle(t *testing.T) {
	err := errors.New("unbalanced braces")
	assert.Equal(t, "Error processing /docs/a.rtf: unbalanced braces", ProcessingErrorTitle("/docs/a.rtf", err))
}
