package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/custodia-labs/rtftitles/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
)

// DefaultFilename is the database file name inside the data directory.
const DefaultFilename = "rtf_titles.db"

// timeLayout is how timestamps are written, matching CURRENT_TIMESTAMP.
const timeLayout = "2006-01-02 15:04:05"

// likeEscape escapes LIKE wildcards so search terms match literally.
var likeEscape = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

// Store is a SQLite-backed index of document records.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath returns ~/.rtftitles/data/rtf_titles.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".rtftitles", "data", DefaultFilename), nil
}

// NewStore opens the SQLite store at dbPath, creating the file and the
// rtf_files table if they do not exist. Existing records are kept.
// If dbPath is empty, DefaultPath is used.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
		}
		dbPath = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %w", domain.ErrStorageUnavailable, err)
	}

	// Open database with WAL mode so readers in other processes are not blocked
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", domain.ErrStorageUnavailable, err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.execFile(context.Background(), s.db, migrations.CreateFile); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: creating schema: %w", domain.ErrStorageUnavailable, err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execFile runs one embedded schema file.
func (s *Store) execFile(ctx context.Context, ex execer, name string) error {
	content, err := fs.ReadFile(migrations.FS, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if _, err := ex.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("executing %s: %w", name, err)
	}
	return nil
}

// Initialize drops rtf_files and recreates it empty.
// Dropping the table also clears its AUTOINCREMENT sequence.
func (s *Store) Initialize(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %w", domain.ErrStorageUnavailable, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := s.execFile(ctx, tx, migrations.DropFile); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	if err := s.execFile(ctx, tx, migrations.CreateFile); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Insert adds a record unless its (path, filename, title) triple exists.
// created_at is filled in by the column default. A rejected duplicate
// aborts the statement, so it does not consume an id.
func (s *Store) Insert(
	ctx context.Context, filename string, title *string, path string, fileModifiedAt *time.Time,
) (bool, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rtf_files (filename, title, path, file_created_at)
		VALUES (?, ?, ?, ?)
	`, filename, nullString(title), path, nullTime(fileModifiedAt))
	if isUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: inserting record: %w", domain.ErrStorageUnavailable, err)
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedriver.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

const selectColumns = `SELECT id, filename, title, path, file_created_at, created_at FROM rtf_files`

// QueryAll returns every record ordered by id.
func (s *Store) QueryAll(ctx context.Context) ([]domain.DocumentRecord, error) {
	return s.query(ctx, selectColumns+` ORDER BY id ASC`)
}

// Search returns records whose scoped columns contain the term.
// LIKE in SQLite is case-insensitive for ASCII letters.
func (s *Store) Search(ctx context.Context, query domain.SearchQuery) ([]domain.DocumentRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, n := wherePredicate(query.Scope)
	pattern := "%" + likeEscape.Replace(query.Term) + "%"
	args := make([]any, n)
	for i := range args {
		args[i] = pattern
	}

	return s.query(ctx, selectColumns+` WHERE `+where+` ORDER BY id ASC`, args...)
}

// wherePredicate returns the WHERE clause for a scope and its number of
// placeholders.
func wherePredicate(scope domain.FieldScope) (string, int) {
	const like = ` LIKE ? ESCAPE '\'`
	switch scope {
	case domain.ScopeFilename:
		return `filename` + like, 1
	case domain.ScopeTitle:
		return `title` + like, 1
	case domain.ScopePath:
		return `path` + like, 1
	case domain.ScopeAll:
		return `(filename` + like + ` OR title` + like + ` OR path` + like + `)`, 3
	}
	// Validate rejects unknown scopes before this point.
	return `0`, 0
}

// Count returns the number of records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rtf_files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]domain.DocumentRecord, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := []domain.DocumentRecord{}
	for rows.Next() {
		var rec domain.DocumentRecord
		var title sql.NullString
		var modified, created timestamp
		if err := rows.Scan(&rec.ID, &rec.Filename, &title, &rec.DirectoryPath, &modified, &created); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if title.Valid {
			t := title.String
			rec.Title = &t
		}
		if modified.Valid {
			m := modified.Time
			rec.FileModifiedAt = &m
		}
		rec.RecordCreatedAt = created.Time
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// nullString converts an optional string for storage.
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// nullTime formats an optional time in UTC for storage.
func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(timeLayout), Valid: true}
}
