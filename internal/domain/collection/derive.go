package collection

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Derive filters, searches and sorts items without modifying them. The
// result only contains items from the input, and equal dates keep their
// input order.
func Derive(schema Schema, items []Item, q Query) []Item {
	status, filtered, none := schema.statusFilter(q.Status)
	if none {
		return []Item{}
	}

	folder := cases.Fold()
	term := folder.String(q.Search)

	out := make([]Item, 0, len(items))
	for _, item := range items {
		if filtered && item.Status != status {
			continue
		}
		if term != "" && !schema.matches(folder, item, term) {
			continue
		}
		out = append(out, item)
	}

	switch q.Sort {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b Item) int { return compareDates(a, b, true) })
	case SortOldest:
		slices.SortStableFunc(out, func(a, b Item) int { return compareDates(a, b, false) })
	}
	return out
}

// statusFilter returns the status to match, whether filtering applies, and
// whether the filter can match nothing at all.
func (s Schema) statusFilter(raw string) (Status, bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", false, false
	}
	status, ok := s.Canonical(raw)
	if !ok {
		return "", true, true
	}
	return status, true, false
}

func (s Schema) matches(folder cases.Caser, item Item, term string) bool {
	for _, name := range s.SearchFields {
		if strings.Contains(folder.String(item.Fields[name]), term) {
			return true
		}
	}
	return false
}

// compareDates orders dated items by date and puts undated items last.
func compareDates(a, b Item, newest bool) int {
	az, bz := a.Date.IsZero(), b.Date.IsZero()
	switch {
	case az && bz:
		return 0
	case az:
		return 1
	case bz:
		return -1
	}
	c := a.Date.Compare(b.Date)
	if newest {
		return -c
	}
	return c
}
