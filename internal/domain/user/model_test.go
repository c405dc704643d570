package user_test

import (
	"testing"

	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/user"
	"github.com/stretchr/testify/require"
)

func TestSchema_Normalize(t *testing.T) {
	item := user.Schema.Normalize(collection.Record{
		"_id":       "u1",
		"name":      "Ana",
		"email":     "ana@example.com",
		"status":    "Suspended",
		"createdAt": "2024-04-29T08:00:00Z",
	})
	require.Equal(t, "u1", item.ID)
	require.Equal(t, user.StatusSuspended, item.Status)
	require.Equal(t, collection.NotAvailable, item.Field(user.FieldPhone))
	require.Equal(t, "Apr 29, 2024", item.Field(user.FieldJoinDate))
	require.Equal(t, user.DefaultAvatar, item.Field(user.FieldAvatar))
}

func TestSchema_NormalizeMissingStatus(t *testing.T) {
	item := user.Schema.Normalize(collection.Record{"id": "u2", "createdAt": "garbage"})
	require.Equal(t, user.StatusActive, item.Status)
	require.Equal(t, collection.NotAvailable, item.Field(user.FieldJoinDate))
}

func TestSchema_SearchByNameOrEmail(t *testing.T) {
	items := []collection.Item{
		user.Schema.Normalize(collection.Record{"id": "1", "name": "Ana", "email": "a@x.io", "phone": "123"}),
		user.Schema.Normalize(collection.Record{"id": "2", "name": "Bea", "email": "bea@ana.io"}),
		user.Schema.Normalize(collection.Record{"id": "3", "name": "Cy", "email": "c@x.io", "phone": "ana"}),
	}
	got := collection.Derive(user.Schema, items, collection.Query{Search: "ANA"})
	require.Len(t, got, 2)
	require.Equal(t, "1", got[0].ID)
	require.Equal(t, "2", got[1].ID)
}
