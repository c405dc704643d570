package dashboard

import (
	"context"

	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/profile"
)

// Source is the backend side of the dashboard.
type Source interface {
	Analytics(ctx context.Context) (*Analytics, error)
	Profile(ctx context.Context) (*profile.Profile, error)
	RecentActivities(ctx context.Context) ([]collection.Record, error)
	MonthlyEarnings(ctx context.Context) ([]Point, error)
	TaskersDistribution(ctx context.Context) ([]Point, error)
}
