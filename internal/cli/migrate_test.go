package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"bookshelf/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStore(t *testing.T, storeName, path string, args ...string) error {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "--store", storeName, "--path", path}, args...))
	return cmd.ExecuteContext(context.Background())
}

func slotTableExists(t *testing.T, path string) bool {
	t.Helper()
	ctx := context.Background()
	db, err := store.ConnectSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'kv_slots'`).Scan(&n))
	return n == 1
}

func TestMigrate_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")

	require.NoError(t, runStore(t, "sqlite", path, "migrate"))
	assert.True(t, slotTableExists(t, path))

	require.NoError(t, runStore(t, "sqlite", path, "migrate", "status"))

	require.NoError(t, runStore(t, "sqlite", path, "migrate", "down"))
	assert.False(t, slotTableExists(t, path))
}

func TestMigrate_RejectsOtherStores(t *testing.T) {
	err := runStore(t, "memory", "", "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema")
}

func TestMigrate_UnknownCommand(t *testing.T) {
	err := runStore(t, "sqlite", filepath.Join(t.TempDir(), "books.db"), "migrate", "sideways")
	assert.Error(t, err)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")

	require.NoError(t, runStore(t, "sqlite", path, "add", "-t", "Emma", "-a", "Austen", "-i", "456"))
	require.NoError(t, runStore(t, "sqlite", path, "remove", "456"))
	assert.Error(t, runStore(t, "sqlite", path, "remove", "456"))
}
