// Package filesystem reads the document manifest and the documents it names
// from the local filesystem.
//
// A manifest is a plain text file with one document location per line.
// Locations may be bare paths or file:// URIs. Blank lines are skipped;
// repeated lines are kept so the index store decides what is a duplicate.
package filesystem
