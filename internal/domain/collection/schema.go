package collection

import (
	"strings"
	"time"
)

// Projection is what an entity extracts from a raw record.
type Projection struct {
	ID     string
	Status string
	Date   time.Time
	Fields map[string]string
}

// Schema describes one entity: its status enum, searchable fields, how raw
// records project into display fields, and which status each action sets.
type Schema struct {
	Entity        string
	Statuses      []Status
	DefaultStatus Status
	SearchFields  []string
	Project       func(rec Record) Projection
	Transitions   map[Action]Status
}

// Normalize turns a raw record into an Item. It is pure and tolerates
// missing or malformed fields.
func (s Schema) Normalize(rec Record) Item {
	var p Projection
	if s.Project != nil {
		p = s.Project(rec)
	}
	status, ok := s.Canonical(p.Status)
	if !ok {
		status = s.DefaultStatus
	}
	fields := p.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	return Item{
		ID:     p.ID,
		Status: status,
		Fields: fields,
		Date:   p.Date,
		Raw:    rec,
	}
}

// Canonical resolves raw status text to a declared status, ignoring case
// and word separators ("In Progress", "in_progress" and "inProgress" match).
func (s Schema) Canonical(raw string) (Status, bool) {
	key := foldStatus(raw)
	if key == "" {
		return "", false
	}
	for _, st := range s.Statuses {
		if foldStatus(string(st)) == key {
			return st, true
		}
	}
	return "", false
}

// Supports reports whether action can be applied to this entity.
func (s Schema) Supports(action Action) bool {
	if action == ActionDelete {
		return true
	}
	_, ok := s.Transitions[action]
	return ok
}

func foldStatus(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
