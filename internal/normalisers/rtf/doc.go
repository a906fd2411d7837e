// Package rtf converts Rich Text Format documents into plain text.
//
// The extractor is a single-pass tokenizer over control words, control
// symbols, groups and text. It keeps body text and paragraph structure and
// drops everything else: font and colour tables, stylesheets, document info,
// pictures, headers, footers and ignorable (\*) destinations.
//
// Hex escapes (\'hh) are decoded with the document code page declared by
// \ansicpg, \mac, \pc or \pca, defaulting to Windows-1252. Unicode escapes
// (\uN) honour the \ucN fallback-skip count and combine UTF-16 surrogate
// pairs.
//
// Input without an {\rtf header is parsed the same way, so plain text passes
// through unchanged apart from backslash and brace handling.
package rtf
