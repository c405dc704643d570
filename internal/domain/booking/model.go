// Package booking describes service bookings as shown in the console.
package booking

import (
	"strings"

	"github.com/servidz/console/internal/domain/collection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entity is the collection name for bookings.
const Entity = "bookings"

const (
	StatusPending    collection.Status = "pending"
	StatusAccepted   collection.Status = "accepted"
	StatusConfirmed  collection.Status = "confirmed"
	StatusCompleted  collection.Status = "completed"
	StatusCancelled  collection.Status = "cancelled"
	StatusInProgress collection.Status = "in_progress"
)

// Display field names.
const (
	FieldTaskerName = "taskerName"
	FieldTaskerPic  = "taskerPic"
	FieldTask       = "task"
	FieldDate       = "date"
	FieldTime       = "time"
	FieldPrice      = "price"
)

// Unassigned is shown for bookings without a tasker.
const Unassigned = "Unassigned"

// Schema normalizes booking records. Bookings have no status endpoint, so
// no transitions are declared.
var Schema = collection.Schema{
	Entity: Entity,
	Statuses: []collection.Status{
		StatusPending, StatusAccepted, StatusConfirmed,
		StatusCompleted, StatusCancelled, StatusInProgress,
	},
	DefaultStatus: StatusPending,
	SearchFields:  []string{FieldTaskerName, FieldTask},
	Project:       project,
}

func project(rec collection.Record) collection.Projection {
	date, _ := rec.Date("date")
	taskerName := rec.String("tasker", "name")
	if taskerName == "" {
		taskerName = Unassigned
	}
	earnings := rec.String("earnings")
	if earnings == "" {
		earnings = "-"
	}
	return collection.Projection{
		ID:     rec.FirstString("_id", "id"),
		Status: rec.String("status"),
		Date:   date,
		Fields: map[string]string{
			FieldTaskerName: taskerName,
			FieldTaskerPic:  rec.String("tasker", "profilePic"),
			FieldTask:       rec.String("description"),
			FieldDate:       collection.FormatDate(date),
			FieldTime:       rec.String("time"),
			FieldPrice:      "$" + earnings,
		},
	}
}

// Label renders a status for display, e.g. "In Progress".
func Label(status collection.Status) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(status), "_", " "))
}

// Counts summarizes bookings by status.
type Counts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// Count tallies items. Anything neither completed nor cancelled counts as pending.
func Count(items []collection.Item) Counts {
	c := Counts{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case StatusCompleted:
			c.Completed++
		case StatusCancelled:
			c.Cancelled++
		default:
			c.Pending++
		}
	}
	return c
}
