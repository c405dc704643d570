package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/servidz/console/internal/apperr"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/dashboard"
	"github.com/servidz/console/internal/domain/profile"
	"github.com/servidz/console/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const analyticsJSON = `{
	"totalUsers": 12840,
	"totalTaskers": "532",
	"todaysBookings": 87,
	"todaysEarnings": 1234.5,
	"analytics": {
		"users": {"growth": "12.5", "today": 40},
		"taskers": {"growth": -3, "today": 2},
		"bookings": {"growth": 0, "yesterday": 90},
		"earnings": {"growth": 4.25, "yesterday": 1100}
	}
}`

func sampleAnalytics(t *testing.T) *dashboard.Analytics {
	t.Helper()
	var a dashboard.Analytics
	require.NoError(t, json.Unmarshal([]byte(analyticsJSON), &a))
	return &a
}

func TestAnalytics_DecodesNumericStrings(t *testing.T) {
	a := sampleAnalytics(t)
	require.Equal(t, dashboard.Number(532), a.TotalTaskers)
	require.Equal(t, dashboard.Number(12.5), a.Analytics.Users.Growth)

	var bad dashboard.Analytics
	require.Error(t, json.Unmarshal([]byte(`{"totalUsers":"many"}`), &bad))
}

func TestCards(t *testing.T) {
	cards := dashboard.Cards(sampleAnalytics(t))
	require.Len(t, cards, 4)

	require.Equal(t, "12,840", cards[0].Value)
	require.Equal(t, "+12.5%", cards[0].Growth)
	require.Equal(t, dashboard.TrendUp, cards[0].Trend)
	require.Equal(t, "+40 today", cards[0].Note)

	require.Equal(t, "532", cards[1].Value)
	require.Equal(t, "-3%", cards[1].Growth)
	require.Equal(t, dashboard.TrendDown, cards[1].Trend)

	require.Equal(t, dashboard.TrendFlat, cards[2].Trend)
	require.Equal(t, "Yesterday: 90", cards[2].Note)

	require.Equal(t, "$1,234.5", cards[3].Value)
	require.Equal(t, "Yesterday: $1,100", cards[3].Note)
}

func TestToActivity(t *testing.T) {
	a := dashboard.ToActivity(collection.Record{
		"_id":      "x1",
		"activity": "New booking",
		"type":     "booking",
		"status":   "pending",
		"date":     "2024-03-05T10:00:00Z",
	})
	require.Equal(t, "x1", a.ID)
	require.Equal(t, "Mar 5, 2024", a.Date)

	require.Equal(t, collection.NotAvailable, dashboard.ToActivity(collection.Record{"date": "soon"}).Date)
}

func fullSource(t *testing.T) *mocks.DashboardSource {
	src := &mocks.DashboardSource{}
	src.On("Analytics", mock.Anything).Return(sampleAnalytics(t), nil)
	src.On("RecentActivities", mock.Anything).Return([]collection.Record{{"id": "1", "activity": "Signed up"}}, nil)
	src.On("MonthlyEarnings", mock.Anything).Return([]dashboard.Point{{Name: "Jan", Value: 100}}, nil)
	src.On("TaskersDistribution", mock.Anything).Return([]dashboard.Point{{Name: "Cleaning", Value: 12}}, nil)
	return src
}

func TestDashboardService_Load(t *testing.T) {
	src := fullSource(t)
	src.On("Profile", mock.Anything).Return(&profile.Profile{Name: "Ada", Email: "ada@example.com"}, nil)

	svc := dashboard.NewService(src, nil)
	ov, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ov.Cards, 4)
	require.Equal(t, "Ada", ov.Admin.Name)
	require.Len(t, ov.RecentActivities, 1)
	require.Len(t, ov.MonthlyEarnings, 1)
	require.Len(t, ov.TaskersDistribution, 1)
	require.Empty(t, ov.Warnings)
}

func TestDashboardService_ProfileFailureDegrades(t *testing.T) {
	src := fullSource(t)
	src.On("Profile", mock.Anything).Return(nil, &apperr.RemoteError{Kind: apperr.ErrNetwork, Op: "get profile", StatusCode: 500})

	svc := dashboard.NewService(src, nil)
	ov, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, profile.FallbackName, ov.Admin.Name)
	require.Equal(t, profile.FallbackEmail, ov.Admin.Email)
	require.Len(t, ov.Warnings, 1)
}

func TestDashboardService_AuthFailureIsFatal(t *testing.T) {
	src := fullSource(t)
	src.On("Profile", mock.Anything).Return(nil, &apperr.RemoteError{Kind: apperr.ErrAuth, Op: "get profile", StatusCode: 401})

	svc := dashboard.NewService(src, nil)
	_, err := svc.Load(context.Background())
	require.ErrorIs(t, err, apperr.ErrAuth)
}

func TestDashboardService_AnalyticsFailureIsFatal(t *testing.T) {
	boom := &apperr.RemoteError{Kind: apperr.ErrNetwork, Op: "dashboard analytics", Message: "connection refused"}
	src := &mocks.DashboardSource{}
	src.On("Analytics", mock.Anything).Return(nil, boom)
	src.On("Profile", mock.Anything).Return(&profile.Profile{}, nil).Maybe()
	src.On("RecentActivities", mock.Anything).Return(nil, errors.New("skipped")).Maybe()
	src.On("MonthlyEarnings", mock.Anything).Return(nil, nil).Maybe()
	src.On("TaskersDistribution", mock.Anything).Return(nil, nil).Maybe()

	svc := dashboard.NewService(src, nil)
	_, err := svc.Load(context.Background())
	require.ErrorIs(t, err, apperr.ErrNetwork)
}

func TestTrendOf(t *testing.T) {
	require.Equal(t, dashboard.TrendUp, dashboard.TrendOf(0.1))
	require.Equal(t, dashboard.TrendDown, dashboard.TrendOf(-0.1))
	require.Equal(t, dashboard.TrendFlat, dashboard.TrendOf(0))
}
