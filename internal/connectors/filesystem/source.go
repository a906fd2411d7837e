package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
)

// Ensure Source implements the interfaces.
var (
	_ driven.DocumentSource  = (*Source)(nil)
	_ driven.ManifestWatcher = (*Source)(nil)
)

// defaultDebounce coalesces the burst of events a single save produces.
const defaultDebounce = 150 * time.Millisecond

// Source lists and reads documents from the local filesystem.
type Source struct {
	debounce time.Duration
}

// New creates a new filesystem document source.
func New() *Source {
	return &Source{debounce: defaultDebounce}
}

// ListDocuments returns one location per non-empty manifest line, in order.
func (s *Source) ListDocuments(manifestPath string) ([]string, error) {
	f, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	var locations []string
	scanner := bufio.NewScanner(f)
	// Long paths are rare but a line is not bounded by the format.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		locations = append(locations, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return locations, nil
}

// ReadDocument returns the document body.
func (s *Source) ReadDocument(location string) (string, error) {
	data, err := os.ReadFile(ResolvePath(location))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrMissingDocument, location)
		}
		return "", fmt.Errorf("reading document: %w", err)
	}
	return string(data), nil
}

// StatDocument returns the file's modification time, or nil when it cannot be read.
func (s *Source) StatDocument(location string) *time.Time {
	info, err := os.Stat(ResolvePath(location))
	if err != nil {
		return nil
	}
	mtime := info.ModTime()
	return &mtime
}

// SplitLocation splits a location into its parent directory and base name.
// A bare file name has an empty directory.
func (s *Source) SplitLocation(location string) (dir, base string) {
	path := ResolvePath(location)
	dir, base = filepath.Split(path)
	if dir != "" && dir != string(filepath.Separator) {
		dir = strings.TrimRight(dir, string(filepath.Separator))
	}
	return dir, base
}
