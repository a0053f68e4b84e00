package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/storage"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	_, ok, err := db.Get("settings")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.Set("settings", `{"theme":"dark"}`))

	value, ok, err := db.Get("settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"theme":"dark"}`, value)

	// Overwrite under the same key.
	require.NoError(t, db.Set("settings", `{"theme":"light"}`))
	value, _, _ = db.Get("settings")
	assert.Equal(t, `{"theme":"light"}`, value)

	require.NoError(t, db.Delete("settings"))
	_, ok, err = db.Get("settings")
	require.NoError(t, err)
	assert.False(t, ok)
}
