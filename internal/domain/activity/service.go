// Package activity keeps an audit log of actions applied from the console.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/servidz/console/internal/domain/collection"
)

// Service handles activity log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

var _ collection.ActionRecorder = (*Service)(nil)

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// LogActivity logs an activity entry with the current timestamp if missing.
func (s *Service) LogActivity(ctx context.Context, entry *ActivityEntry) error {
	if entry == nil || entry.Entity == "" || entry.ItemID == "" || entry.Action == "" {
		return ErrInvalidInput
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now().UTC()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}

// GetRecentActivity lists activity entries, newest first.
func (s *Service) GetRecentActivity(ctx context.Context, opts ListActivityOptions) ([]ActivityEntry, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	entries, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return entries, nil
}

// RecordAction logs an action applied through a collection view model.
func (s *Service) RecordAction(ctx context.Context, event collection.ActionEvent) error {
	return s.LogActivity(ctx, &ActivityEntry{
		Entity:  event.Entity,
		ItemID:  event.ItemID,
		Action:  string(event.Action),
		Status:  string(event.Status),
		Summary: Summarize(event),
	})
}

// Summarize renders a one-line description of event.
func Summarize(event collection.ActionEvent) string {
	if event.Action == collection.ActionDelete {
		return fmt.Sprintf("removed %s %s from view", event.Entity, event.ItemID)
	}
	return fmt.Sprintf("set %s %s to %s", event.Entity, event.ItemID, event.Status)
}
