package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/servidz/console/internal/apperr"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/profile"
)

// Service loads the dashboard overview.
type Service struct {
	source Source
	logger *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{source: source, logger: logger}
}

// Load fetches all dashboard sections concurrently. Analytics is required;
// the other sections fall back to empty values and add a warning, except
// that an auth failure from any section fails the load.
func (s *Service) Load(ctx context.Context) (*Overview, error) {
	var (
		mu        sync.Mutex
		analytics *Analytics
		admin     *profile.Profile
		records   []collection.Record
		earnings  []Point
		taskers   []Point
		warnings  []string
	)

	degrade := func(section string, err error) error {
		if apperr.IsAuth(err) {
			return fmt.Errorf("loading %s: %w", section, err)
		}
		s.logger.Warn("dashboard section unavailable", "section", section, "error", err)
		mu.Lock()
		warnings = append(warnings, fmt.Sprintf("%s unavailable: %v", section, err))
		mu.Unlock()
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.source.Analytics(gctx)
		if err != nil {
			return fmt.Errorf("loading analytics: %w", err)
		}
		analytics = a
		return nil
	})
	g.Go(func() error {
		p, err := s.source.Profile(gctx)
		if err != nil {
			return degrade("profile", err)
		}
		admin = p
		return nil
	})
	g.Go(func() error {
		r, err := s.source.RecentActivities(gctx)
		if err != nil {
			return degrade("recent activities", err)
		}
		records = r
		return nil
	})
	g.Go(func() error {
		p, err := s.source.MonthlyEarnings(gctx)
		if err != nil {
			return degrade("monthly earnings", err)
		}
		earnings = p
		return nil
	})
	g.Go(func() error {
		p, err := s.source.TaskersDistribution(gctx)
		if err != nil {
			return degrade("taskers distribution", err)
		}
		taskers = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if analytics == nil {
		return nil, &apperr.RemoteError{Kind: apperr.ErrNetwork, Op: "dashboard analytics", Message: "empty response"}
	}

	shown := profile.Profile{}
	if admin != nil {
		shown = *admin
	}
	shown.Name = admin.DisplayName()
	shown.Email = admin.DisplayEmail()
	slices.Sort(warnings)

	activities := make([]Activity, 0, len(records))
	for _, rec := range records {
		activities = append(activities, ToActivity(rec))
	}

	return &Overview{
		Cards:               Cards(analytics),
		Admin:               &shown,
		RecentActivities:    activities,
		MonthlyEarnings:     nonNil(earnings),
		TaskersDistribution: nonNil(taskers),
		Warnings:            warnings,
	}, nil
}

func nonNil(p []Point) []Point {
	if p == nil {
		return []Point{}
	}
	return p
}
