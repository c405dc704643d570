package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/servidz/console/internal/domain/activity"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogAndList(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	entry := &activity.ActivityEntry{
		Entity:  "users",
		ItemID:  "u1",
		Action:  "ban",
		Status:  "suspended",
		Summary: "set users u1 to suspended",
	}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, activity.ListActivityOptions{Entity: "users", Limit: activity.DefaultLimit}).
		Return([]activity.ActivityEntry{*entry}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{Entity: "users"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

func TestActivityService_RejectsIncompleteEntries(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	require.ErrorIs(t, svc.LogActivity(context.Background(), nil), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.LogActivity(context.Background(), &activity.ActivityEntry{Entity: "users"}), activity.ErrInvalidInput)
}

func TestActivityService_RecordAction(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.Entity == "taskers" && e.ItemID == "t1" && e.Action == "activate" &&
			e.Status == "active" && e.Summary == "set taskers t1 to active"
	})).Return(nil)

	svc := activity.NewService(repo, nil)
	err := svc.RecordAction(ctx, collection.ActionEvent{
		Entity: "taskers",
		ItemID: "t1",
		Action: collection.ActionActivate,
		Status: "active",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestActivityService_RepositoryErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	repo := &mocks.ActivityRepository{}
	repo.On("List", ctx, mock.Anything).Return(nil, boom)

	svc := activity.NewService(repo, nil)
	_, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{})
	require.ErrorIs(t, err, boom)
}

func TestSummarize(t *testing.T) {
	require.Equal(t, "removed bookings b1 from view", activity.Summarize(collection.ActionEvent{
		Entity: "bookings", ItemID: "b1", Action: collection.ActionDelete,
	}))
}
