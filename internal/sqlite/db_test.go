package sqlite

import (
	"testing"

	"github.com/servidz/console/internal/repository"
	"github.com/stretchr/testify/require"
)

var (
	_ repository.ActivityRepository = (*ActivityRepository)(nil)
	_ repository.TokenRepository    = (*TokenStore)(nil)
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"session_tokens", "activity_log"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

func TestMigrationsAreRepeatable(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())
}

func TestSessionTokensHoldOneRow(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec("INSERT INTO session_tokens (id, token) VALUES (2, 'x')")
	require.Error(t, err)
}
