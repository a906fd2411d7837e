package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rtftitles/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rtftitles/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/rtftitles/internal/adapters/driving/cli"
	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

func TestBootstrap_SQLiteFromFlag(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data", "index.db")

	s, err := bootstrap(cli.Options{
		ConfigPath: filepath.Join(dir, "config.toml"),
		DBPath:     dbPath,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.NotNil(t, s.Ingest)
	assert.NotNil(t, s.Query)
	assert.NotNil(t, s.Settings)
	assert.FileExists(t, dbPath)
}

func TestBootstrap_StorePathFromSettings(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "configured.db")
	configFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[store]\npath = \""+filepath.ToSlash(dbPath)+"\"\n"), 0600))

	s, err := bootstrap(cli.Options{ConfigPath: configFile})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.FileExists(t, dbPath)
}

func TestBootstrap_MemoryStore(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "repository.txt")
	doc := filepath.Join(dir, "a.rtf")
	require.NoError(t, os.WriteFile(doc, []byte(`{\rtf1 Hello World\par}`), 0600))
	require.NoError(t, os.WriteFile(manifest, []byte(doc+"\n"), 0600))

	s, err := bootstrap(cli.Options{ConfigPath: filepath.Join(dir, "config.toml"), DBPath: memoryDSN})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	report, err := s.Ingest.Run(context.Background(), manifest)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)

	records, err := s.Query.Search(context.Background(), "hello", domain.ScopeTitle)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Hello World", records[0].TitleText())
}

func TestBootstrap_BadConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("not = [valid"), 0600))

	_, err := bootstrap(cli.Options{ConfigPath: configFile, DBPath: memoryDSN})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening config")
}

func TestOpenStore(t *testing.T) {
	store, err := openStore(memoryDSN)
	require.NoError(t, err)
	assert.IsType(t, &memory.IndexStore{}, store)

	path := filepath.Join(t.TempDir(), "x.db")
	store, err = openStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.IsType(t, &sqlite.Store{}, store)
	assert.Equal(t, path, store.(*sqlite.Store).Path())
}

func TestOpenStore_Unavailable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	_, err := openStore(filepath.Join(blocker, "x.db"))

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
