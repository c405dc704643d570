// Package user describes marketplace customer accounts as shown in the console.
package user

import (
	"github.com/servidz/console/internal/domain/collection"
)

// Entity is the collection name for users.
const Entity = "users"

const (
	StatusActive    collection.Status = "active"
	StatusInactive  collection.Status = "inactive"
	StatusSuspended collection.Status = "suspended"
)

// Display field names.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldJoinDate = "joinDate"
	FieldAvatar   = "avatar"
)

// DefaultAvatar is shown when the server record has no picture.
const DefaultAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"

// Schema normalizes user records.
var Schema = collection.Schema{
	Entity:        Entity,
	Statuses:      []collection.Status{StatusActive, StatusInactive, StatusSuspended},
	DefaultStatus: StatusActive,
	SearchFields:  []string{FieldName, FieldEmail},
	Project:       project,
	Transitions: map[collection.Action]collection.Status{
		collection.ActionBan:      StatusSuspended,
		collection.ActionActivate: StatusActive,
	},
}

func project(rec collection.Record) collection.Projection {
	joined, _ := rec.Date("createdAt", "joinDate")
	return collection.Projection{
		ID:     rec.FirstString("id", "_id"),
		Status: rec.String("status"),
		Date:   joined,
		Fields: map[string]string{
			FieldName:     rec.String("name"),
			FieldEmail:    rec.String("email"),
			FieldPhone:    orDefault(rec.String("phone"), collection.NotAvailable),
			FieldJoinDate: collection.FormatDate(joined),
			FieldAvatar:   orDefault(rec.FirstString("avatar", "profileImage"), DefaultAvatar),
		},
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
