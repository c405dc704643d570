package collection

import "context"

// FetchFunc lists the whole remote collection.
type FetchFunc func(ctx context.Context) ([]Record, error)

// StatusFunc changes the remote status of one item.
type StatusFunc func(ctx context.Context, id string, status Status) error

// ActionRecorder receives successfully applied actions.
type ActionRecorder interface {
	RecordAction(ctx context.Context, event ActionEvent) error
}
