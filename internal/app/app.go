// Package app assembles the console's services from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/servidz/console/internal/backend"
	"github.com/servidz/console/internal/config"
	"github.com/servidz/console/internal/console"
	"github.com/servidz/console/internal/domain/activity"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/dashboard"
	"github.com/servidz/console/internal/domain/profile"
	"github.com/servidz/console/internal/domain/session"
	"github.com/servidz/console/internal/mcp"
	"github.com/servidz/console/internal/sqlite"
	"github.com/servidz/console/internal/transport"
)

// App is a fully wired console.
type App struct {
	Config    config.Config
	Logger    *slog.Logger
	DB        *sqlite.DB
	Session   *session.Service
	Client    *backend.Client
	Console   *console.Console
	Dashboard *dashboard.Service
	Profile   *profile.Service
	// Activity is nil when no database is configured.
	Activity *activity.Service
}

// Build opens local storage, restores any saved session and wires the
// backend client into every service. An empty DB path keeps the token in
// memory and disables the action log.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &App{Config: cfg, Logger: logger}

	var tokens session.TokenStore
	if cfg.DB.Path != "" {
		if err := ensureDBDir(cfg.DB.Path); err != nil {
			return nil, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.DB.Path)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
		a.DB = db
		tokens = sqlite.NewTokenStore(db)
		a.Activity = activity.NewService(sqlite.NewActivityRepository(db), logger)
	}

	apiCfg := backend.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}
	login, err := backend.New(apiCfg, nil, backend.Options{Logger: logger})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Session = session.NewService(login, tokens, logger)

	a.Client, err = backend.New(apiCfg, a.Session, backend.Options{
		OnUnauthorized: a.Session.Invalidate,
		Logger:         logger,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	var recorder collection.ActionRecorder
	if a.Activity != nil {
		recorder = a.Activity
	}
	a.Console = console.New(a.Client, console.Options{
		Recorder:  recorder,
		Reconcile: cfg.Console.Reconcile,
		Logger:    logger,
	})
	a.Dashboard = dashboard.NewService(a.Client, logger)
	a.Profile = profile.NewService(a.Client, logger)

	restored, err := a.Session.Restore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("console ready", "api", a.Client.BaseURL(), "session_restored", restored, "action_log", a.Activity != nil)
	return a, nil
}

// MCPServer exposes the console as MCP tools.
func (a *App) MCPServer(version string) *sdkmcp.Server {
	services := mcp.Services{
		Session:     a.Session,
		Collections: a.Console,
		Dashboard:   a.Dashboard,
		Profile:     a.Profile,
	}
	if a.Activity != nil {
		services.Activity = a.Activity
	}
	return mcp.NewServer(mcp.Config{Services: services, Version: version, Logger: a.Logger})
}

// HTTPHandler serves server over HTTP, guarded by the operator key when
// auth is enabled.
func (a *App) HTTPHandler(server *sdkmcp.Server) http.Handler {
	opts := transport.Options{Logger: a.Logger}
	if a.Config.Auth.Enabled {
		opts.Auth = transport.AuthMiddleware(transport.StaticKey{Key: a.Config.Auth.Key})
	}
	return transport.NewHandler(server, opts)
}

// Close releases local storage.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
