// Package tasker describes service providers (taskers) as shown in the console.
package tasker

import (
	"strconv"

	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/user"
)

// Entity is the collection name for taskers.
const Entity = "taskers"

// Taskers share the account status enum with users.
const (
	StatusActive    = user.StatusActive
	StatusInactive  = user.StatusInactive
	StatusSuspended = user.StatusSuspended
)

// Display field names.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldProfession     = "profession"
	FieldJoinDate       = "joinDate"
	FieldRating         = "rating"
	FieldCompletedTasks = "completedTasks"
	FieldAvatar         = "avatar"
)

// DefaultProfession is used when a tasker lists no skills.
const DefaultProfession = "General Tasker"

// Schema normalizes tasker records.
var Schema = collection.Schema{
	Entity:        Entity,
	Statuses:      []collection.Status{StatusActive, StatusInactive, StatusSuspended},
	DefaultStatus: StatusActive,
	SearchFields:  []string{FieldName, FieldEmail, FieldProfession},
	Project:       project,
	Transitions: map[collection.Action]collection.Status{
		collection.ActionBan:      StatusSuspended,
		collection.ActionActivate: StatusActive,
	},
}

func project(rec collection.Record) collection.Projection {
	joined, _ := rec.Date("joinDate", "createdAt")
	return collection.Projection{
		ID:     rec.FirstString("id", "_id"),
		Status: rec.String("status"),
		Date:   joined,
		Fields: map[string]string{
			FieldName:           rec.String("name"),
			FieldEmail:          rec.String("email"),
			FieldPhone:          orDefault(rec.String("phone"), collection.NotAvailable),
			FieldProfession:     orDefault(rec.String("skills"), DefaultProfession),
			FieldJoinDate:       collection.FormatDate(joined),
			FieldRating:         number(rec, "rating"),
			FieldCompletedTasks: number(rec, "completedTasks"),
			FieldAvatar:         orDefault(rec.FirstString("profileImage", "avatar"), user.DefaultAvatar),
		},
	}
}

func number(rec collection.Record, key string) string {
	v, ok := rec.Float(key)
	if !ok {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
