package mocks

import (
	"context"

	"github.com/servidz/console/internal/domain/activity"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/dashboard"
	"github.com/servidz/console/internal/domain/profile"
	"github.com/servidz/console/internal/domain/session"
	"github.com/stretchr/testify/mock"
)

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TokenStore is a mock for session.TokenStore.
type TokenStore struct {
	mock.Mock
}

func (m *TokenStore) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *TokenStore) Save(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *TokenStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Authenticator is a mock for session.Authenticator.
type Authenticator struct {
	mock.Mock
}

func (m *Authenticator) Login(ctx context.Context, email, password string) (*session.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if res, ok := args.Get(0).(*session.LoginResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProfileSource is a mock for profile.Source.
type ProfileSource struct {
	mock.Mock
}

func (m *ProfileSource) Profile(ctx context.Context) (*profile.Profile, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).(*profile.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProfileSource) UploadAvatar(ctx context.Context, avatar profile.Avatar) (string, error) {
	args := m.Called(ctx, avatar)
	return args.String(0), args.Error(1)
}

// DashboardSource is a mock for dashboard.Source.
type DashboardSource struct {
	mock.Mock
}

func (m *DashboardSource) Analytics(ctx context.Context) (*dashboard.Analytics, error) {
	args := m.Called(ctx)
	if a, ok := args.Get(0).(*dashboard.Analytics); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DashboardSource) Profile(ctx context.Context) (*profile.Profile, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).(*profile.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DashboardSource) RecentActivities(ctx context.Context) ([]collection.Record, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]collection.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DashboardSource) MonthlyEarnings(ctx context.Context) ([]dashboard.Point, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]dashboard.Point); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DashboardSource) TaskersDistribution(ctx context.Context) ([]dashboard.Point, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]dashboard.Point); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActionRecorder is a mock for collection.ActionRecorder.
type ActionRecorder struct {
	mock.Mock
}

func (m *ActionRecorder) RecordAction(ctx context.Context, event collection.ActionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
