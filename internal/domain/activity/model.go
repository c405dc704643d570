package activity

import "time"

// ActivityEntry is one applied admin action in the audit log.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	Entity    string    `json:"entity"`
	ItemID    string    `json:"item_id"`
	Action    string    `json:"action"`
	Status    string    `json:"status,omitempty"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
