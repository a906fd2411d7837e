package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driving"
	"github.com/custodia-labs/rtftitles/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService rebuilds the index from a manifest of document locations.
type IngestService struct {
	source    driven.DocumentSource
	extractor driven.TextExtractor
	store     driven.IndexStore
	watcher   driven.ManifestWatcher

	mu       sync.Mutex
	progress driving.ProgressFunc
	now      func() time.Time
}

// NewIngestService creates a new ingest service.
// The watcher is optional (can be nil); RunWatch fails without one.
func NewIngestService(
	source driven.DocumentSource,
	extractor driven.TextExtractor,
	store driven.IndexStore,
	watcher driven.ManifestWatcher,
) *IngestService {
	return &IngestService{
		source:    source,
		extractor: extractor,
		store:     store,
		watcher:   watcher,
		now:       time.Now,
	}
}

// SetProgress installs a per-document callback. Nil disables it.
func (s *IngestService) SetProgress(fn driving.ProgressFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = fn
}

// Run initialises the store and ingests every manifest entry in order.
func (s *IngestService) Run(ctx context.Context, manifestPath string) (*domain.IngestReport, error) {
	report := &domain.IngestReport{
		RunID:        uuid.New().String(),
		ManifestPath: manifestPath,
		StartedAt:    s.now(),
	}
	logger.Section("Ingest Run")
	logger.Debug("Run %s, manifest %s", report.RunID, manifestPath)

	if err := s.store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialising store: %w", err)
	}

	locations, err := s.source.ListDocuments(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	logger.Info("Manifest lists %d document(s)", len(locations))

	s.mu.Lock()
	progress := s.progress
	s.mu.Unlock()

	for _, location := range locations {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = s.now()
			return report, err
		}

		outcome, err := s.ingestOne(ctx, location)
		if err != nil {
			report.FinishedAt = s.now()
			return report, err
		}

		report.Add(outcome)
		if progress != nil {
			progress(outcome)
		}
	}

	report.FinishedAt = s.now()
	logger.Info("Run %s: %d processed, %d duplicate, %d error",
		report.RunID, report.Processed, report.Duplicates, report.Errors)
	return report, nil
}

// ingestOne handles a single manifest entry. Only storage failures are
// returned as errors; everything else becomes a diagnostic title.
func (s *IngestService) ingestOne(ctx context.Context, location string) (domain.IngestOutcome, error) {
	title, cause := s.deriveTitle(location)
	dir, base := s.source.SplitLocation(location)
	modified := s.source.StatDocument(location)

	outcome := domain.IngestOutcome{
		Location:       location,
		Filename:       base,
		DirectoryPath:  dir,
		Title:          title,
		FileModifiedAt: modified,
		Status:         domain.OutcomeProcessed,
		Err:            cause,
	}
	if cause != nil {
		outcome.Status = domain.OutcomeError
		logger.Warn("%s", title)
	}

	inserted, err := s.store.Insert(ctx, base, &title, dir, modified)
	if err != nil {
		return outcome, fmt.Errorf("storing %s: %w", location, err)
	}
	if !inserted {
		outcome.Status = domain.OutcomeDuplicate
		outcome.Err = errors.Join(domain.ErrDuplicateRecord, cause)
		logger.Debug("Duplicate skipped: %s", location)
		return outcome, nil
	}

	logger.Debug("Processed %s: %q", location, title)
	return outcome, nil
}

// deriveTitle returns the document title, or a diagnostic title and its
// classified cause.
func (s *IngestService) deriveTitle(location string) (string, error) {
	raw, err := s.source.ReadDocument(location)
	if errors.Is(err, domain.ErrMissingDocument) {
		return domain.MissingDocumentTitle(location), err
	}
	if err != nil {
		return domain.ProcessingErrorTitle(location, err), err
	}

	text, err := s.extractor.Extract(raw)
	if err != nil {
		if !errors.Is(err, domain.ErrMalformedDocument) {
			err = fmt.Errorf("%w: %w", domain.ErrMalformedDocument, err)
		}
		return domain.ProcessingErrorTitle(location, err), err
	}
	return domain.DeriveTitle(text), nil
}

// RunWatch runs once, then again each time the manifest changes, until ctx
// is cancelled. Failed re-runs are logged and watching continues.
func (s *IngestService) RunWatch(
	ctx context.Context, manifestPath string, onReport func(*domain.IngestReport),
) error {
	if s.watcher == nil {
		return errors.New("manifest watcher not configured")
	}

	report, err := s.Run(ctx, manifestPath)
	if err != nil {
		return err
	}
	if onReport != nil {
		onReport(report)
	}

	err = s.watcher.WatchManifest(ctx, manifestPath, func() {
		logger.Info("Manifest changed, re-ingesting")
		report, err := s.Run(ctx, manifestPath)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("Re-ingest failed: %v", err)
			}
			return
		}
		if onReport != nil {
			onReport(report)
		}
	})
	if err != nil {
		return fmt.Errorf("watching manifest: %w", err)
	}
	return ctx.Err()
}
