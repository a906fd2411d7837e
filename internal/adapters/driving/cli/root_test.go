package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rtftitles/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rtftitles/internal/connectors/filesystem"
	"github.com/custodia-labs/rtftitles/internal/core/services"
	"github.com/custodia-labs/rtftitles/internal/normalisers/rtf"
)

// testEnv wires real services over in-memory stores.
type testEnv struct {
	store    *memory.IndexStore
	config   *memory.ConfigStore
	services *Services
	dir      string
}

func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewIndexStore()
	config := memory.NewConfigStore(nil)
	s := &Services{
		Ingest:   services.NewIngestService(filesystem.New(), rtf.New(), store, nil),
		Query:    services.NewQueryService(store),
		Settings: services.NewSettingsService(config),
		Close:    store.Close,
	}
	SetBootstrap(nil)
	SetServices(s)

	t.Cleanup(func() {
		SetServices(nil)
		SetBootstrap(nil)
		resetFlags()
	})

	return &testEnv{store: store, config: config, services: s, dir: t.TempDir()}
}

// writeFile writes content under the environment's directory and returns
// the absolute path.
func (e *testEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// writeManifest writes one location per line.
func (e *testEnv) writeManifest(t *testing.T, locations ...string) string {
	t.Helper()
	return e.writeFile(t, "repository.txt", strings.Join(locations, "\n")+"\n")
}

func resetFlags() {
	verbose, dbPath, configPath = false, "", ""
	searchBy, searchJSON = "", false
	listJSON = false
	ingestWatch, ingestQuiet = false, false
	exportFormat, exportBy, exportOutput = "", "", ""
	tuiBy = ""
}

// executeCommand runs the root command with args and returns combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "--help")

	require.NoError(t, err)
	for _, sub := range []string{"ingest", "search", "list", "export", "settings", "tui", "mcp", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestCommands_ServicesNotConfigured(t *testing.T) {
	SetServices(nil)
	SetBootstrap(nil)
	t.Cleanup(resetFlags)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"search", "x"}, "query service not configured"},
		{[]string{"list"}, "query service not configured"},
		{[]string{"export"}, "query service not configured"},
		{[]string{"tui"}, "query service not configured"},
		{[]string{"mcp", "serve"}, "query service not configured"},
		{[]string{"ingest", "m.txt"}, "ingest service not configured"},
		{[]string{"settings"}, "settings service not configured"},
		{[]string{"settings", "set", "search.scope", "title"}, "settings service not configured"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEnsureServices_Bootstrap(t *testing.T) {
	env := setupTestServices(t)
	SetServices(nil)

	var calls int
	var got Options
	SetBootstrap(func(opts Options) (*Services, error) {
		calls++
		got = opts
		return env.services, nil
	})

	_, err := executeCommand(t, "--db", "/tmp/x.db", "--config", "/tmp/c.toml", "list")
	require.NoError(t, err)
	_, err = executeCommand(t, "list")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, Options{ConfigPath: "/tmp/c.toml", DBPath: "/tmp/x.db"}, got)
}

func TestEnsureServices_BootstrapError(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)
	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("disk full")
	})

	_, err := executeCommand(t, "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting services: disk full")
}

func TestExecute_ClosesServices(t *testing.T) {
	setupTestServices(t)

	closed := 0
	closeServices = func() error {
		closed++
		return errors.New("close failed")
	}
	rootCmd.SetArgs([]string{"version"})
	rootCmd.SetOut(new(bytes.Buffer))
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	}()

	err := Execute(context.Background())

	assert.EqualError(t, err, "close failed")
	assert.Equal(t, 1, closed)
	assert.Nil(t, closeServices)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}
