// Package repository names the persistence contracts the sqlite package
// fulfils for the domain services.
package repository

import (
	"context"

	"github.com/servidz/console/internal/domain/activity"
	"github.com/servidz/console/internal/domain/session"
)

// ActivityRepository manages audit log persistence.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
	List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// TokenRepository persists the admin session token.
type TokenRepository interface {
	session.TokenStore
}

var (
	_ activity.Repository = ActivityRepository(nil)
	_ session.TokenStore  = TokenRepository(nil)
)
