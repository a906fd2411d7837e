// Package sqlite provides the SQLite-based implementation of driven.IndexStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// A single table, rtf_files, holds one row per ingested document with a
// UNIQUE(path, filename, title) constraint. The schema SQL is embedded from
// the migrations/ directory as an .up.sql/.down.sql pair. Opening a store
// creates the table if needed; Initialize drops and recreates it, which is
// how each ingestion run rebuilds the index from the manifest.
//
// # Data Location
//
// By default, the database is stored at ~/.rtftitles/data/rtf_titles.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. The store relies on
// database-level locking provided by SQLite in WAL mode, so a search from
// another process can run while an ingestion is writing.
package sqlite
