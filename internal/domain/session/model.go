// Package session tracks the admin bearer token: login, restore, logout
// and invalidation when the backend rejects it.
package session

import "github.com/servidz/console/internal/domain/profile"

// LoginResult is what a successful login yields.
type LoginResult struct {
	Token   string
	Profile *profile.Profile
}

// InvalidateFunc is told why a session ended. reason is nil for an
// explicit logout.
type InvalidateFunc func(reason error)
