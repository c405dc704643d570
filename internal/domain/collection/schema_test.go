package collection_test

import (
	"testing"
	"time"

	"github.com/servidz/console/internal/domain/collection"
	"github.com/stretchr/testify/require"
)

var accountStatuses = []collection.Status{"active", "inactive", "suspended"}

func testSchema() collection.Schema {
	return collection.Schema{
		Entity:        "account",
		Statuses:      accountStatuses,
		DefaultStatus: "active",
		SearchFields:  []string{"name", "email"},
		Project: func(rec collection.Record) collection.Projection {
			date, _ := rec.Date("createdAt")
			return collection.Projection{
				ID:     rec.String("id"),
				Status: rec.String("status"),
				Date:   date,
				Fields: map[string]string{
					"name":  rec.String("name"),
					"email": rec.String("email"),
					"date":  collection.FormatDate(date),
				},
			}
		},
		Transitions: map[collection.Action]collection.Status{
			collection.ActionBan:      "suspended",
			collection.ActionActivate: "active",
		},
	}
}

func TestSchema_NormalizeCanonicalStatus(t *testing.T) {
	schema := testSchema()
	raw := []collection.Record{
		{"id": "1", "status": "Active"},
		{"id": "2", "status": "ACTIVE"},
		{"id": "3", "status": "suspended"},
	}

	var got []collection.Status
	for _, rec := range raw {
		got = append(got, schema.Normalize(rec).Status)
	}
	require.Equal(t, []collection.Status{"active", "active", "suspended"}, got)
}

func TestSchema_NormalizeDefaults(t *testing.T) {
	schema := testSchema()

	item := schema.Normalize(collection.Record{"id": "1", "status": "banned-forever", "createdAt": "not a date"})
	require.Equal(t, collection.Status("active"), item.Status)
	require.Equal(t, collection.NotAvailable, item.Field("date"))
	require.True(t, item.Date.IsZero())

	item = schema.Normalize(collection.Record{"id": "2"})
	require.Equal(t, collection.Status("active"), item.Status)
	require.Equal(t, "2", item.ID)
}

func TestSchema_NormalizeKeepsRaw(t *testing.T) {
	schema := testSchema()
	rec := collection.Record{"id": "1", "status": "Inactive", "extra": map[string]any{"k": "v"}}

	item := schema.Normalize(rec)
	require.Equal(t, collection.Status("inactive"), item.Status)
	require.Equal(t, "Inactive", item.Raw["status"])
	require.Equal(t, map[string]any{"k": "v"}, item.Raw["extra"])
}

func TestSchema_NormalizeDate(t *testing.T) {
	schema := testSchema()
	item := schema.Normalize(collection.Record{"id": "1", "createdAt": "2024-04-29T10:00:00.000Z"})
	require.Equal(t, "Apr 29, 2024", item.Field("date"))
	require.Equal(t, time.Date(2024, 4, 29, 10, 0, 0, 0, time.UTC), item.Date)
}

func TestSchema_CanonicalSeparators(t *testing.T) {
	schema := collection.Schema{Statuses: []collection.Status{"pending", "in_progress"}}

	for _, raw := range []string{"In Progress", "inProgress", "IN_PROGRESS", "in-progress"} {
		status, ok := schema.Canonical(raw)
		require.True(t, ok, raw)
		require.Equal(t, collection.Status("in_progress"), status)
	}
	_, ok := schema.Canonical("")
	require.False(t, ok)
}

func TestSchema_Supports(t *testing.T) {
	schema := testSchema()
	require.True(t, schema.Supports(collection.ActionBan))
	require.True(t, schema.Supports(collection.ActionDelete))

	schema.Transitions = nil
	require.False(t, schema.Supports(collection.ActionActivate))
}
