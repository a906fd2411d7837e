package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStorePath    = "store.path"
	KeyManifest     = "ingest.manifest"
	KeyExportFormat = "export.format"
	KeySearchScope  = "search.scope"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Unset or unrecognised values
// fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		StorePath:    s.configStore.GetString(KeyStorePath), // No default - empty means the data directory
		Manifest:     s.getString(KeyManifest, defaults.Manifest),
		ExportFormat: s.getExportFormat(defaults.ExportFormat),
		SearchScope:  s.getSearchScope(defaults.SearchScope),
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are required", domain.ErrInvalidInput)
	}
	if !settings.ExportFormat.IsValid() {
		return fmt.Errorf("%w: unknown export format %q", domain.ErrInvalidInput, settings.ExportFormat)
	}
	if !settings.SearchScope.IsValid() {
		return fmt.Errorf("%w: unknown search scope %d", domain.ErrInvalidInput, int(settings.SearchScope))
	}

	if err := s.configStore.Set(KeyStorePath, settings.StorePath); err != nil {
		return fmt.Errorf("saving %s: %w", KeyStorePath, err)
	}
	if err := s.configStore.Set(KeyManifest, settings.Manifest); err != nil {
		return fmt.Errorf("saving %s: %w", KeyManifest, err)
	}
	if err := s.configStore.Set(KeyExportFormat, settings.ExportFormat.String()); err != nil {
		return fmt.Errorf("saving %s: %w", KeyExportFormat, err)
	}
	if err := s.configStore.Set(KeySearchScope, settings.SearchScope.String()); err != nil {
		return fmt.Errorf("saving %s: %w", KeySearchScope, err)
	}
	return nil
}

// Set validates and persists a single setting by key.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyStorePath:
	case KeyManifest:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
	case KeyExportFormat:
		format, err := domain.ParseExportFormat(value)
		if err != nil {
			return err
		}
		value = format.String()
	case KeySearchScope:
		scope, err := domain.ParseFieldScope(value)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		value = scope.String()
	default:
		return fmt.Errorf("%w: unknown setting %q (want one of %s)",
			domain.ErrInvalidInput, key, strings.Join(s.Keys(), ", "))
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyStorePath, KeyManifest, KeyExportFormat, KeySearchScope}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getExportFormat(defaultVal domain.ExportFormat) domain.ExportFormat {
	val := s.configStore.GetString(KeyExportFormat)
	if val == "" {
		return defaultVal
	}
	format, err := domain.ParseExportFormat(val)
	if err != nil {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getSearchScope(defaultVal domain.FieldScope) domain.FieldScope {
	val := s.configStore.GetString(KeySearchScope)
	if val == "" {
		return defaultVal
	}
	scope, err := domain.ParseFieldScope(val)
	if err != nil {
		return defaultVal
	}
	return scope
}
