package collection

import (
	"fmt"
	"strings"

	"github.com/servidz/console/internal/apperr"
)

// ParseSort maps user input to a SortOrder.
func ParseSort(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "newest":
		return SortNewest, nil
	case "oldest":
		return SortOldest, nil
	default:
		return SortNone, apperr.Validation("unknown sort order %q", s)
	}
}

// ParseAction maps user input to an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionBan, ActionActivate, ActionDelete:
		return a, nil
	case "suspend":
		return ActionBan, nil
	default:
		return "", fmt.Errorf("unknown action %q: %w", s, apperr.ErrValidation)
	}
}
