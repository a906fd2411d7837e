package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestDefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".rtftitles"), dir)
}

func TestOpenConfigFile_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "rtftitles.toml")

	store, err := OpenConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("store.path", "/tmp/index.db"))

	val, ok := store.Get("store.path")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/index.db", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("export.format", "csv"))
	require.NoError(t, store.Set("int_key", 42))

	assert.Equal(t, "csv", store.GetString("export.format"))
	assert.Empty(t, store.GetString("nonexistent"))
	assert.Empty(t, store.GetString("int_key"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("bool_key", true))
	require.NoError(t, store.Set("bool_key_false", false))
	require.NoError(t, store.Set("string_key", "true"))

	assert.True(t, store.GetBool("bool_key"))
	assert.False(t, store.GetBool("bool_key_false"))
	assert.False(t, store.GetBool("nonexistent"))
	assert.False(t, store.GetBool("string_key"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("store.path", "/data/index.db"))
	require.NoError(t, store1.Set("ingest.manifest", "docs.txt"))
	require.NoError(t, store1.Set("verbose", true))

	// Create new store instance - should load from file
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/data/index.db", store2.GetString("store.path"))
	assert.Equal(t, "docs.txt", store2.GetString("ingest.manifest"))
	assert.True(t, store2.GetBool("verbose"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("store.path", "/data/index.db"))
	require.NoError(t, store.Set("search.scope", "title"))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "[store]")
	assert.Contains(t, string(content), "[search]")
	assert.NotContains(t, string(content), `"store.path"`)
}

func TestConfigStore_LoadsHandWrittenTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[store]\npath = \"/srv/rtf.db\"\n\n[export]\nformat = \"csv\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/rtf.db", store.GetString("store.path"))
	assert.Equal(t, "csv", store.GetString("export.format"))
	assert.Equal(t, []string{"export.format", "store.path"}, store.Keys())
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(""), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("search.scope", "title")
		}()
		go func() {
			defer wg.Done()
			_ = store.GetString("search.scope")
		}()
	}
	wg.Wait()

	assert.Equal(t, "title", store.GetString("search.scope"))
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	// On Unix systems, using a path under /dev/null should fail
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	corrupted := []byte("this is not valid TOML {{{[[")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), corrupted, 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// Manually modify internal data
	store.mu.Lock()
	store.data["manual.key"] = "manual_value"
	store.mu.Unlock()

	require.NoError(t, store.Save())

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "manual_value", store2.GetString("manual.key"))
}

func TestConfigStore_Set_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("another", "value")
	assert.Error(t, err)

	// The failed value is not kept in memory.
	_, ok := store.Get("another")
	assert.False(t, ok)
}

func TestConfigStore_Set_RestoresPreviousOnError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "original"))

	// Channels cannot be marshaled to TOML
	assert.Error(t, store.Set("key", make(chan int)))
	assert.Equal(t, "original", store.GetString("key"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	err = store.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestConfigStore_Load_ReadFileError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	require.NoError(t, os.Chmod(store.Path(), 0000))
	defer func() { _ = os.Chmod(store.Path(), 0600) }()

	err = store.Load()
	assert.Error(t, err)
	assert.False(t, os.IsNotExist(err))
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"store":  map[string]any{"path": "/a.db"},
		"search": map[string]any{"scope": "title", "extra": map[string]any{"deep": 1}},
		"top":    true,
	}

	assert.Equal(t, map[string]any{
		"store.path":        "/a.db",
		"search.scope":      "title",
		"search.extra.deep": 1,
		"top":               true,
	}, flattenMap(nested, ""))
}

func TestNestMap_InverseOfFlatten(t *testing.T) {
	flat := map[string]any{
		"store.path":        "/a.db",
		"search.scope":      "title",
		"search.extra.deep": 1,
		"top":               true,
	}

	assert.Equal(t, flat, flattenMap(nestMap(flat), ""))
}
