// Package migrations embeds the SQL schema for the SQLite index store.
package migrations

import "embed"

// FS contains all SQL schema files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// Schema file names within FS.
const (
	// CreateFile creates rtf_files if it does not exist.
	CreateFile = "001_rtf_files.up.sql"

	// DropFile removes rtf_files and its contents.
	DropFile = "001_rtf_files.down.sql"
)
