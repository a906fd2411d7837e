package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/rtftitles/internal/logger"
)

// WatchManifest calls onChange after each write to or re-creation of the
// manifest. The parent directory is watched so editors that save by
// rename are still seen. It blocks until ctx is cancelled.
func (s *Source) WatchManifest(ctx context.Context, manifestPath string, onChange func()) error {
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return fmt.Errorf("resolving manifest path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("Watching manifest %s", abs)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isManifestEvent(event, abs) {
				continue
			}
			logger.Debug("Manifest event: %s", event)
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching manifest: %w", err)
		}
	}
}

// isManifestEvent reports whether event changes the manifest's content.
func isManifestEvent(event fsnotify.Event, manifestPath string) bool {
	if filepath.Clean(event.Name) != manifestPath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
