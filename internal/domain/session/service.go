package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/oauth2"

	"github.com/servidz/console/internal/apperr"
	"github.com/servidz/console/internal/domain/profile"
)

// Service holds the current admin token. It is an oauth2.TokenSource so the
// backend transport can attach the token to every authenticated call.
type Service struct {
	auth   Authenticator
	store  TokenStore
	logger *slog.Logger

	mu        sync.RWMutex
	token     string
	profile   *profile.Profile
	listeners []InvalidateFunc
}

var _ oauth2.TokenSource = (*Service)(nil)

// NewService creates a signed-out session. A nil store keeps the token in
// memory only.
func NewService(auth Authenticator, store TokenStore, logger *slog.Logger) *Service {
	if store == nil {
		store = NewMemoryStore()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{auth: auth, store: store, logger: logger}
}

// Login exchanges credentials for a token and keeps it.
func (s *Service) Login(ctx context.Context, email, password string) (*profile.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	if res == nil || res.Token == "" {
		return nil, &apperr.RemoteError{Kind: apperr.ErrAuth, Op: "login", Message: "no token in response"}
	}

	if err := s.store.Save(ctx, res.Token); err != nil {
		return nil, fmt.Errorf("saving token: %w", err)
	}

	s.mu.Lock()
	s.token = res.Token
	s.profile = res.Profile
	s.mu.Unlock()

	s.logger.Info("admin signed in", "email", email)
	return res.Profile, nil
}

// Restore loads a previously saved token. It reports whether one was found.
func (s *Service) Restore(ctx context.Context) (bool, error) {
	token, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("loading token: %w", err)
	}
	if token == "" {
		return false, nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.logger.Debug("session restored")
	return true, nil
}

// Logout ends the session at the operator's request.
func (s *Service) Logout(ctx context.Context) error {
	had := s.clear()
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	if !had {
		return nil
	}
	s.logger.Info("admin signed out")
	s.notify(nil)
	return nil
}

// Invalidate ends the session because the backend rejected token. It does
// nothing when token is no longer the current one, so a late rejection of
// an old token cannot end a newer session. Listeners run once per ended
// session.
func (s *Service) Invalidate(ctx context.Context, token string, reason error) {
	if !s.clearIf(token) {
		s.logger.Debug("ignoring rejection of a replaced token", "reason", reason)
		return
	}
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear stored token", "error", err)
	}
	s.logger.Warn("session invalidated", "reason", reason)
	s.notify(reason)
}

// OnInvalidate registers fn to run whenever the session ends.
func (s *Service) OnInvalidate(fn InvalidateFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Token returns the bearer token, or ErrAuth when signed out.
func (s *Service) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return nil, fmt.Errorf("no session token: %w", apperr.ErrAuth)
	}
	return &oauth2.Token{AccessToken: s.token, TokenType: "Bearer"}, nil
}

// Authenticated reports whether a token is held.
func (s *Service) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Profile returns the profile returned at login, if any.
func (s *Service) Profile() *profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Service) clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

func (s *Service) clearIf(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return false
	}
	return s.clearLocked()
}

func (s *Service) clearLocked() bool {
	had := s.token != ""
	s.token = ""
	s.profile = nil
	return had
}

func (s *Service) notify(reason error) {
	s.mu.RLock()
	listeners := append([]InvalidateFunc(nil), s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(reason)
	}
}
