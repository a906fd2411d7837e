package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// recordKey is the uniqueness triple. Records without a title never
// collide, matching SQL NULL semantics.
type recordKey struct {
	path     string
	filename string
	title    string
}

// IndexStore is an in-memory implementation of driven.IndexStore.
type IndexStore struct {
	mu      sync.RWMutex
	records []domain.DocumentRecord
	keys    map[recordKey]struct{}
	nextID  int64
	closed  bool
	now     func() time.Time
}

// NewIndexStore creates a new in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{
		keys:   make(map[recordKey]struct{}),
		nextID: 1,
		now:    time.Now,
	}
}

// Initialize discards all records and restarts IDs at 1.
func (s *IndexStore) Initialize(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("%w: store is closed", domain.ErrStorageUnavailable)
	}
	s.records = nil
	s.keys = make(map[recordKey]struct{})
	s.nextID = 1
	return nil
}

// Insert adds a record unless its (path, filename, title) triple exists.
func (s *IndexStore) Insert(
	_ context.Context, filename string, title *string, path string, fileModifiedAt *time.Time,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, fmt.Errorf("%w: store is closed", domain.ErrStorageUnavailable)
	}

	if title != nil {
		key := recordKey{path: path, filename: filename, title: *title}
		if _, exists := s.keys[key]; exists {
			return false, nil
		}
		s.keys[key] = struct{}{}
	}

	rec := domain.DocumentRecord{
		ID:              s.nextID,
		Filename:        filename,
		DirectoryPath:   path,
		RecordCreatedAt: s.now().UTC().Truncate(time.Second),
	}
	if title != nil {
		t := *title
		rec.Title = &t
	}
	if fileModifiedAt != nil {
		m := fileModifiedAt.UTC()
		rec.FileModifiedAt = &m
	}
	s.records = append(s.records, rec)
	s.nextID++
	return true, nil
}

// QueryAll returns every record in insertion order.
func (s *IndexStore) QueryAll(_ context.Context) ([]domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("%w: store is closed", domain.ErrStorageUnavailable)
	}
	return s.filter(func(domain.DocumentRecord) bool { return true }), nil
}

// Search returns records whose scoped fields contain the term.
func (s *IndexStore) Search(_ context.Context, query domain.SearchQuery) ([]domain.DocumentRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("%w: store is closed", domain.ErrStorageUnavailable)
	}

	term := asciiLower(query.Term)
	contains := func(field string) bool {
		return strings.Contains(asciiLower(field), term)
	}

	return s.filter(func(r domain.DocumentRecord) bool {
		title := r.Title != nil && contains(*r.Title)
		switch query.Scope {
		case domain.ScopeFilename:
			return contains(r.Filename)
		case domain.ScopeTitle:
			return title
		case domain.ScopePath:
			return contains(r.DirectoryPath)
		case domain.ScopeAll:
			return contains(r.Filename) || title || contains(r.DirectoryPath)
		}
		return false
	}), nil
}

// Count returns the number of records.
func (s *IndexStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, fmt.Errorf("%w: store is closed", domain.ErrStorageUnavailable)
	}
	return len(s.records), nil
}

// Close marks the store closed. Later calls fail.
func (s *IndexStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// asciiLower folds A-Z only, the same folding SQLite LIKE applies.
func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// filter copies matching records. Caller must hold the lock.
func (s *IndexStore) filter(keep func(domain.DocumentRecord) bool) []domain.DocumentRecord {
	out := []domain.DocumentRecord{}
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
