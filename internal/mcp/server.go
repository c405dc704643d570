package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/servidz/console/internal/domain/activity"
	"github.com/servidz/console/internal/domain/booking"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/dashboard"
	"github.com/servidz/console/internal/domain/profile"
)

// SessionService defines session operations needed by MCP.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*profile.Profile, error)
	Logout(ctx context.Context) error
}

// CollectionService defines collection operations needed by MCP. List may
// return items together with an error; the items then come from the last
// successful load.
type CollectionService interface {
	List(ctx context.Context, entity string, q collection.Query) ([]collection.Item, error)
	Apply(ctx context.Context, entity, id string, action collection.Action) (collection.Item, error)
	BookingCounts(ctx context.Context) (booking.Counts, error)
}

// DashboardService defines dashboard operations needed by MCP.
type DashboardService interface {
	Load(ctx context.Context) (*dashboard.Overview, error)
}

// ProfileService defines profile operations needed by MCP.
type ProfileService interface {
	Get(ctx context.Context) (*profile.Profile, error)
}

// ActivityService defines audit log operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by MCP. Activity may be nil,
// in which case recent_actions is not offered.
type Services struct {
	Session     SessionService
	Collections CollectionService
	Dashboard   DashboardService
	Profile     ProfileService
	Activity    ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "servidz-console",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
