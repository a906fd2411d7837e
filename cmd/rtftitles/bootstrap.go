package main

import (
	"fmt"

	"github.com/custodia-labs/rtftitles/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rtftitles/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rtftitles/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/rtftitles/internal/adapters/driving/cli"
	"github.com/custodia-labs/rtftitles/internal/connectors/filesystem"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
	"github.com/custodia-labs/rtftitles/internal/core/services"
	"github.com/custodia-labs/rtftitles/internal/logger"
	"github.com/custodia-labs/rtftitles/internal/normalisers/rtf"
)

// memoryDSN selects a throwaway in-process index.
const memoryDSN = ":memory:"

// bootstrap builds the services from the global flags and the config file.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	config, err := openConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(config)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = settings.StorePath
	}
	store, err := openStore(dbPath)
	if err != nil {
		return nil, err
	}

	source := filesystem.New()
	return &cli.Services{
		Ingest:   services.NewIngestService(source, rtf.New(), store, source),
		Query:    services.NewQueryService(store),
		Settings: settingsService,
		Close:    store.Close,
	}, nil
}

func openConfig(path string) (*file.ConfigStore, error) {
	if path != "" {
		return file.OpenConfigFile(path)
	}
	return file.NewConfigStore("")
}

// openStore opens the SQLite index at path, the default location when
// path is empty, or an in-memory index for ":memory:".
func openStore(path string) (driven.IndexStore, error) {
	if path == memoryDSN {
		logger.Debug("Using in-memory index")
		return memory.NewIndexStore(), nil
	}

	store, err := sqlite.NewStore(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Using index %s", store.Path())
	return store, nil
}
