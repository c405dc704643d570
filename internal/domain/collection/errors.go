package collection

import "errors"

var (
	// ErrSuperseded is returned by a load whose result was discarded because a newer load started.
	ErrSuperseded = errors.New("load superseded by a newer request")

	// ErrItemGone is returned by an action whose item was dropped by a reload while the call was in flight.
	ErrItemGone = errors.New("item is no longer in the collection")
)
