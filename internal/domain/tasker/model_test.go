package tasker_test

import (
	"testing"

	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/tasker"
	"github.com/stretchr/testify/require"
)

func TestSchema_NormalizeDefaults(t *testing.T) {
	item := tasker.Schema.Normalize(collection.Record{
		"id":    "t1",
		"name":  "Sam",
		"email": "sam@example.com",
	})
	require.Equal(t, tasker.StatusActive, item.Status)
	require.Equal(t, collection.NotAvailable, item.Field(tasker.FieldPhone))
	require.Equal(t, tasker.DefaultProfession, item.Field(tasker.FieldProfession))
	require.Equal(t, "0", item.Field(tasker.FieldRating))
	require.Equal(t, "0", item.Field(tasker.FieldCompletedTasks))
	require.Equal(t, collection.NotAvailable, item.Field(tasker.FieldJoinDate))
}

func TestSchema_NormalizeValues(t *testing.T) {
	item := tasker.Schema.Normalize(collection.Record{
		"id":             "t2",
		"status":         "INACTIVE",
		"skills":         []any{"Plumbing", "Electricity"},
		"rating":         4.5,
		"completedTasks": float64(12),
		"joinDate":       "",
		"createdAt":      "2023-11-05T00:00:00Z",
		"profileImage":   "https://cdn.example.com/t2.png",
		"avatar":         "https://cdn.example.com/old.png",
	})
	require.Equal(t, tasker.StatusInactive, item.Status)
	require.Equal(t, "Plumbing, Electricity", item.Field(tasker.FieldProfession))
	require.Equal(t, "4.5", item.Field(tasker.FieldRating))
	require.Equal(t, "12", item.Field(tasker.FieldCompletedTasks))
	require.Equal(t, "Nov 5, 2023", item.Field(tasker.FieldJoinDate))
	require.Equal(t, "https://cdn.example.com/t2.png", item.Field(tasker.FieldAvatar))
}

func TestSchema_SearchIncludesProfession(t *testing.T) {
	items := []collection.Item{
		tasker.Schema.Normalize(collection.Record{"id": "1", "name": "A", "skills": "Car Repair"}),
		tasker.Schema.Normalize(collection.Record{"id": "2", "name": "B", "skills": "Cleaning"}),
	}
	got := collection.Derive(tasker.Schema, items, collection.Query{Search: "repair"})
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)
}
