package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/servidz/console/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entry1 := &activity.ActivityEntry{
		Entity:    "users",
		ItemID:    "u1",
		Action:    "ban",
		Status:    "suspended",
		Summary:   "set users u1 to suspended",
		CreatedAt: base,
	}
	entry2 := &activity.ActivityEntry{
		Entity:    "taskers",
		ItemID:    "t1",
		Action:    "activate",
		Status:    "active",
		Summary:   "set taskers t1 to active",
		CreatedAt: base.Add(time.Minute),
	}

	require.NoError(t, repo.Log(ctx, entry1))
	require.NoError(t, repo.Log(ctx, entry2))
	require.NotZero(t, entry1.ID)
	require.NotEqual(t, entry1.ID, entry2.ID)

	entries, err := repo.List(ctx, activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "t1", entries[0].ItemID)
	require.Equal(t, "u1", entries[1].ItemID)
	require.True(t, entries[1].CreatedAt.Equal(base))
}

func TestActivityRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	for _, e := range []activity.ActivityEntry{
		{Entity: "users", ItemID: "u1", Action: "ban", Summary: "a"},
		{Entity: "users", ItemID: "u1", Action: "activate", Summary: "b"},
		{Entity: "users", ItemID: "u2", Action: "ban", Summary: "c"},
		{Entity: "bookings", ItemID: "b1", Action: "delete", Summary: "d"},
	} {
		require.NoError(t, repo.Log(ctx, &e))
	}

	entries, err := repo.List(ctx, activity.ListActivityOptions{Entity: "users"})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	itemID := "u1"
	action := "ban"
	entries, err = repo.List(ctx, activity.ListActivityOptions{Entity: "users", ItemID: &itemID, Action: &action})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "a", entries[0].Summary)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
