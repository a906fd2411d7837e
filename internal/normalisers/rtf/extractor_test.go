package rtf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.IsType(t, &Extractor{}, extractor)
	var _ driven.TextExtractor = extractor
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "minimal document",
			input: `{\rtf1\ansi Hello World\par}`,
			want:  "Hello World\n",
		},
		{
			name: "font and colour tables are dropped",
			input: `{\rtf1\ansi\deff0{\fonttbl{\f0\fswiss Helvetica;}{\f1 Times;}}` +
				`{\colortbl;\red255\green0\blue0;}\f0\pard Title\par Body text\par}`,
			want: "Title\nBody text\n",
		},
		{
			name:  "info group is dropped",
			input: `{\rtf1{\info{\title Hidden}{\author Someone}}Visible\par}`,
			want:  "Visible\n",
		},
		{
			name:  "ignorable destination is dropped",
			input: `{\rtf1{\*\generator Riched20 10.0;}{\*\unknownthing junk}Text}`,
			want:  "Text",
		},
		{
			name:  "formatting words produce nothing",
			input: `{\rtf1\b Bold\b0  and \i italic\i0\par}`,
			want:  "Bold and italic\n",
		},
		{
			name:  "line and tab",
			input: `{\rtf1 A\tab B\line C}`,
			want:  "A\tB\nC",
		},
		{
			name:  "escaped symbols",
			input: `{\rtf1 a\\b \{c\} d\~e}`,
			want:  "a\\b {c} d\u00a0e",
		},
		{
			name:  "optional hyphen dropped",
			input: `{\rtf1 hy\-phen}`,
			want:  "hyphen",
		},
		{
			name:  "hex escapes use windows-1252 by default",
			input: `{\rtf1\ansi caf\'e9 \'93quoted\'94}`,
			want:  "café “quoted”",
		},
		{
			name:  "hex escapes use declared code page",
			input: `{\rtf1\ansi\ansicpg1251 \'cf\'f0\'e8\'e2\'e5\'f2}`,
			want:  "Привет",
		},
		{
			name:  "unicode escape skips one fallback character",
			input: `{\rtf1 \u8364?100}`,
			want:  "€100",
		},
		{
			name:  "unicode escape honours uc count",
			input: `{\rtf1\uc2 \u915\'c3\'c3amma}`,
			want:  "Γamma",
		},
		{
			name:  "negative unicode parameter",
			input: `{\rtf1 \u-3913?}`,
			want:  "\uf0b7",
		},
		{
			name:  "surrogate pair",
			input: `{\rtf1 \u-10179?\u-8704?}`,
			want:  "\U0001F600",
		},
		{
			name:  "special characters",
			input: `{\rtf1 a\emdash b\endash c \bullet \lquote x\rquote  \ldblquote y\rdblquote}`,
			want:  "a—b–c •‘x’ “y”",
		},
		{
			name:  "raw newlines are not text",
			input: "{\\rtf1 First\r\nline\\par\nSecond}",
			want:  "Firstline\nSecond",
		},
		{
			name:  "escaped newline is a paragraph",
			input: "{\\rtf1 One\\\nTwo}",
			want:  "One\nTwo",
		},
		{
			name:  "binary data is skipped",
			input: `{\rtf1 before{\pict\bin4 abcd}after}`,
			want:  "beforeafter",
		},
		{
			name:  "header and footer are dropped",
			input: `{\rtf1{\header Page header}{\footer Page footer}Body}`,
			want:  "Body",
		},
		{
			name:  "plain text without header passes through",
			input: "Hello World",
			want:  "Hello World",
		},
		{
			name:  "empty document",
			input: `{\rtf1}`,
			want:  "",
		},
	}

	extractor := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"unexpected closing brace", `{\rtf1 text}}`, "unexpected '}'"},
		{"unclosed group", `{\rtf1 {text`, "2 unclosed group(s)"},
		{"truncated hex escape", `{\rtf1 \'e`, "truncated hex escape"},
		{"bad hex escape", `{\rtf1 \'zz}`, "bad hex escape"},
		{"invalid utf-8", "{\\rtf1 \xff\xfe}", "not valid UTF-8"},
	}

	extractor := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedDocument)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, got)
		})
	}
}

func TestExtract_FeedsTitleHeuristic(t *testing.T) {
	input := `{\rtf1\ansi{\fonttbl\f0\fswiss Helvetica;}\f0\pard\par \par   Quarterly Summary  \par Details follow.\par}`

	text, err := New().Extract(input)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Summary", domain.DeriveTitle(text))
}

func TestExtract_NonBreakingSpaceTrimmedFromTitle(t *testing.T) {
	text, err := New().Extract(`{\rtf1\~\~Budget Plan\~\par Notes\par}`)
	require.NoError(t, err)
	assert.Equal(t, "\u00a0\u00a0Budget Plan\u00a0\nNotes\n", text)
	assert.Equal(t, "Budget Plan", domain.DeriveTitle(text))
}

func TestCharmapFor(t *testing.T) {
	assert.Equal(t, 'é', charmapFor(1252).DecodeByte(0xe9))
	assert.Equal(t, 'П', charmapFor(1251).DecodeByte(0xcf))
	// Unknown pages fall back to Windows-1252.
	assert.Equal(t, 'é', charmapFor(932).DecodeByte(0xe9))
}
