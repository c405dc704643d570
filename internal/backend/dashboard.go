package backend

import (
	"context"
	"net/http"

	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/dashboard"
)

var _ dashboard.Source = (*Client)(nil)

// Analytics fetches the headline dashboard figures.
func (c *Client) Analytics(ctx context.Context) (*dashboard.Analytics, error) {
	var out dashboard.Analytics
	if err := c.get(ctx, "dashboard analytics", "/dashboard/analytics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TaskersDistribution fetches the tasker count per category.
func (c *Client) TaskersDistribution(ctx context.Context) ([]dashboard.Point, error) {
	var out []dashboard.Point
	if err := c.get(ctx, "taskers distribution", "/analytics/taskers-distribution", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthlyEarnings fetches platform earnings per month.
func (c *Client) MonthlyEarnings(ctx context.Context) ([]dashboard.Point, error) {
	var out []dashboard.Point
	if err := c.get(ctx, "monthly earnings", "/analytics/monthly-earnings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentActivities fetches the platform activity feed.
func (c *Client) RecentActivities(ctx context.Context) ([]collection.Record, error) {
	var out []collection.Record
	if err := c.get(ctx, "recent activities", "/recent-activities", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	cl, err := c.jsonCall(op, http.MethodGet, path, nil, true, false)
	if err != nil {
		return err
	}
	return c.do(ctx, cl, out)
}
