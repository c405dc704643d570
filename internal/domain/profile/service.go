package profile

import (
	"context"
	"fmt"
	"log/slog"
)

// Service reads the admin profile and changes its picture.
type Service struct {
	source Source
	logger *slog.Logger
}

// NewService creates a new profile service.
func NewService(source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{source: source, logger: logger}
}

// Get fetches the current admin profile.
func (s *Service) Get(ctx context.Context) (*Profile, error) {
	p, err := s.source.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}

// UploadAvatar validates a and uploads it, returning the new avatar URL.
func (s *Service) UploadAvatar(ctx context.Context, a Avatar) (string, error) {
	if err := ValidateAvatar(a); err != nil {
		return "", err
	}
	a.ContentType = ContentType(a)
	url, err := s.source.UploadAvatar(ctx, a)
	if err != nil {
		return "", fmt.Errorf("uploading avatar: %w", err)
	}
	s.logger.Info("avatar updated", "filename", a.Filename, "bytes", len(a.Data))
	return url, nil
}
