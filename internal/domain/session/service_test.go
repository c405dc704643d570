package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/servidz/console/internal/apperr"
	"github.com/servidz/console/internal/domain/profile"
	"github.com/servidz/console/internal/domain/session"
	"github.com/servidz/console/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_LoginStoresToken(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.Authenticator{}
	store := &mocks.TokenStore{}

	admin := &profile.Profile{ID: "a1", Email: "admin@example.com", Name: "Admin"}
	auth.On("Login", ctx, "admin@example.com", "secret").Return(&session.LoginResult{Token: "tok", Profile: admin}, nil)
	store.On("Save", ctx, "tok").Return(nil)

	svc := session.NewService(auth, store, nil)
	p, err := svc.Login(ctx, " admin@example.com ", "secret")
	require.NoError(t, err)
	require.Equal(t, admin, p)
	require.True(t, svc.Authenticated())
	require.Equal(t, admin, svc.Profile())

	tok, err := svc.Token()
	require.NoError(t, err)
	require.Equal(t, "tok", tok.AccessToken)
	require.Equal(t, "Bearer", tok.Type())

	auth.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestSessionService_LoginValidation(t *testing.T) {
	auth := &mocks.Authenticator{}
	svc := session.NewService(auth, nil, nil)

	_, err := svc.Login(context.Background(), "", "secret")
	require.ErrorIs(t, err, apperr.ErrValidation)
	_, err = svc.Login(context.Background(), "admin@example.com", "")
	require.ErrorIs(t, err, apperr.ErrValidation)
	auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_LoginFailureKeepsSignedOut(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.Authenticator{}
	auth.On("Login", ctx, "admin@example.com", "wrong").
		Return(nil, &apperr.RemoteError{Kind: apperr.ErrAuth, Op: "login", StatusCode: 401, Message: "Invalid credentials"})

	svc := session.NewService(auth, nil, nil)
	_, err := svc.Login(ctx, "admin@example.com", "wrong")
	require.ErrorIs(t, err, apperr.ErrAuth)
	require.False(t, svc.Authenticated())
}

func TestSessionService_LoginWithoutTokenIsAuthError(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.Authenticator{}
	auth.On("Login", ctx, "admin@example.com", "secret").Return(&session.LoginResult{}, nil)

	svc := session.NewService(auth, nil, nil)
	_, err := svc.Login(ctx, "admin@example.com", "secret")
	require.ErrorIs(t, err, apperr.ErrAuth)
}

func TestSessionService_TokenWhenSignedOut(t *testing.T) {
	svc := session.NewService(&mocks.Authenticator{}, nil, nil)
	_, err := svc.Token()
	require.ErrorIs(t, err, apperr.ErrAuth)
}

func TestSessionService_Restore(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "saved"))

	svc := session.NewService(&mocks.Authenticator{}, store, nil)
	ok, err := svc.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	tok, err := svc.Token()
	require.NoError(t, err)
	require.Equal(t, "saved", tok.AccessToken)

	empty := session.NewService(&mocks.Authenticator{}, session.NewMemoryStore(), nil)
	ok, err = empty.Restore(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSessionService_RestoreStoreError(t *testing.T) {
	ctx := context.Background()
	store := &mocks.TokenStore{}
	store.On("Load", ctx).Return("", errors.New("disk gone"))

	svc := session.NewService(&mocks.Authenticator{}, store, nil)
	_, err := svc.Restore(ctx)
	require.Error(t, err)
	require.False(t, svc.Authenticated())
}

func TestSessionService_InvalidateNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "tok"))

	svc := session.NewService(&mocks.Authenticator{}, store, nil)
	_, err := svc.Restore(ctx)
	require.NoError(t, err)

	var reasons []error
	svc.OnInvalidate(func(reason error) { reasons = append(reasons, reason) })

	svc.Invalidate(ctx, "tok", apperr.ErrAuth)
	svc.Invalidate(ctx, "tok", apperr.ErrAuth)

	require.Len(t, reasons, 1)
	require.ErrorIs(t, reasons[0], apperr.ErrAuth)
	require.False(t, svc.Authenticated())

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, saved)
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.Authenticator{}
	auth.On("Login", ctx, "admin@example.com", "secret").Return(&session.LoginResult{Token: "tok"}, nil)
	store := session.NewMemoryStore()

	svc := session.NewService(auth, store, nil)
	_, err := svc.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	notified := 0
	svc.OnInvalidate(func(reason error) {
		require.NoError(t, reason)
		notified++
	})

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))
	require.Equal(t, 1, notified)
	require.False(t, svc.Authenticated())

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, saved)
}

func TestSessionService_InvalidateIgnoresReplacedToken(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.Authenticator{}
	auth.On("Login", ctx, "admin@example.com", "secret").Return(&session.LoginResult{Token: "new"}, nil)
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "old"))

	svc := session.NewService(auth, store, nil)
	_, err := svc.Restore(ctx)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	notified := 0
	svc.OnInvalidate(func(error) { notified++ })

	svc.Invalidate(ctx, "old", apperr.ErrAuth)
	svc.Invalidate(ctx, "", apperr.ErrAuth)
	require.True(t, svc.Authenticated())
	require.Zero(t, notified)
	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", saved)

	svc.Invalidate(ctx, "new", apperr.ErrAuth)
	require.False(t, svc.Authenticated())
	require.Equal(t, 1, notified)
}
