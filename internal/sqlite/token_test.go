package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenStore_SaveLoadClear(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	store := NewTokenStore(db)

	token, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, store.Save(ctx, "first"))
	require.NoError(t, store.Save(ctx, "second"))

	token, err = store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", token)

	require.NoError(t, store.Clear(ctx))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestTokenStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "console.db")

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	require.NoError(t, NewTokenStore(db).Save(ctx, "persisted"))
	require.NoError(t, db.Close())

	db, err = New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	token, err := NewTokenStore(db).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "persisted", token)
}
