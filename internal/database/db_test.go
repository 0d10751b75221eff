package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, profile Profile) *DB {
	t.Helper()
	db, err := New(Config{
		Path:    filepath.Join(t.TempDir(), "test.db"),
		Profile: profile,
		Name:    "test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenAndHealthCheck(t *testing.T) {
	db := openTestDB(t, ProfileStandard)

	assert.Equal(t, "test", db.Name())
	assert.NotEmpty(t, db.Path())
	require.NoError(t, db.HealthCheck(context.Background()))
}

func TestMigrateAndQuery(t *testing.T) {
	db := openTestDB(t, ProfileStandard)

	require.NoError(t, db.Migrate(`CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT)`))

	_, err := db.Exec(`INSERT INTO kv (k, v) VALUES (?, ?)`, "venue", "Mars Bazaar")
	require.NoError(t, err)

	var v string
	require.NoError(t, db.QueryRow(`SELECT v FROM kv WHERE k = ?`, "venue").Scan(&v))
	assert.Equal(t, "Mars Bazaar", v)
}

func TestWALCheckpoint(t *testing.T) {
	db := openTestDB(t, ProfileCache)

	require.NoError(t, db.Migrate(`CREATE TABLE IF NOT EXISTS n (i INTEGER)`))
	_, err := db.Exec(`INSERT INTO n (i) VALUES (1)`)
	require.NoError(t, err)

	assert.NoError(t, db.WALCheckpoint(""))
	assert.NoError(t, db.WALCheckpoint("TRUNCATE"))
}
