package collection

import "time"

// Status is the canonical lowercase form of an item's status.
type Status string

// Action names a state-changing operation on a single item.
type Action string

const (
	ActionBan      Action = "ban"
	ActionActivate Action = "activate"
	ActionDelete   Action = "delete"
)

// SortOrder selects how a derived view is ordered.
type SortOrder string

const (
	SortNone   SortOrder = ""
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// NotAvailable is the display value for missing or unparseable fields.
const NotAvailable = "N/A"

// Item is a normalized collection entry. Fields and Raw are shared with
// every snapshot and must be treated as read-only.
type Item struct {
	ID     string            `json:"id"`
	Status Status            `json:"status"`
	Fields map[string]string `json:"fields"`
	Date   time.Time         `json:"-"`
	Raw    Record            `json:"raw,omitempty"`
}

// Field returns a display field, or the empty string.
func (i Item) Field(name string) string {
	return i.Fields[name]
}

// Query holds the inputs of a derived view.
type Query struct {
	Search string    `json:"search,omitempty"`
	Status string    `json:"status,omitempty"`
	Sort   SortOrder `json:"sort,omitempty"`
}

// State is a snapshot of a view model.
type State struct {
	Items   []Item
	Loading bool
	Loaded  bool
	Err     error
}

// ActionEvent describes a successfully applied action.
type ActionEvent struct {
	Entity string
	ItemID string
	Action Action
	Status Status
}
