package mcp

import (
	"errors"
	"fmt"

	"github.com/servidz/console/internal/apperr"
	"github.com/servidz/console/internal/domain/collection"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var api *APIError
	if errors.As(err, &api) {
		return api
	}
	msg := err.Error()
	switch {
	case errors.Is(err, apperr.ErrAuth):
		return &APIError{Code: "AUTH_REQUIRED", Message: msg, RecoveryHint: "Call login with admin credentials"}
	case errors.Is(err, apperr.ErrValidation):
		return &APIError{Code: "VALIDATION_ERROR", Message: msg, RecoveryHint: "Fix the arguments and retry"}
	case errors.Is(err, apperr.ErrActionInProgress):
		return &APIError{Code: "ACTION_IN_PROGRESS", Message: msg, RecoveryHint: "Wait for the pending action on this item to finish"}
	case errors.Is(err, apperr.ErrActionFailed):
		return &APIError{Code: "ACTION_FAILED", Message: msg, RecoveryHint: "The item was not changed; list it again before retrying"}
	case errors.Is(err, collection.ErrItemGone):
		return &APIError{Code: "ITEM_GONE", Message: msg, RecoveryHint: "The backend accepted the action but the item left the collection; list it again"}
	case errors.Is(err, apperr.ErrNetwork):
		return &APIError{Code: "NETWORK_ERROR", Message: msg, RecoveryHint: "Retry; list_items keeps returning the last loaded data marked stale"}
	default:
		return &APIError{Code: "INTERNAL_ERROR", Message: msg}
	}
}
