package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/servidz/console/internal/domain/activity"
	"github.com/servidz/console/internal/domain/booking"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/dashboard"
	"github.com/servidz/console/internal/domain/profile"
)

type loginInput struct {
	Email    string `json:"email" jsonschema:"admin account email"`
	Password string `json:"password" jsonschema:"admin account password"`
}

type loginOutput struct {
	Admin profile.Profile `json:"admin"`
}

type emptyInput struct{}

type messageOutput struct {
	Message string `json:"message"`
}

type listInput struct {
	Entity string `json:"entity" jsonschema:"collection to list: users, taskers or bookings"`
	Search string `json:"search,omitempty" jsonschema:"case-insensitive substring matched against the collection's search fields"`
	Status string `json:"status,omitempty" jsonschema:"status filter; empty or all keeps every item"`
	Sort   string `json:"sort,omitempty" jsonschema:"newest, oldest or empty for server order"`
}

type itemView struct {
	ID     string            `json:"id"`
	Status string            `json:"status"`
	Fields map[string]string `json:"fields"`
}

type listOutput struct {
	Entity string     `json:"entity"`
	Count  int        `json:"count"`
	Items  []itemView `json:"items"`
	// Stale is set when the reload failed and Items are from the last good load.
	Stale   bool   `json:"stale,omitempty"`
	Warning string `json:"warning,omitempty"`
}

type applyInput struct {
	Entity string `json:"entity" jsonschema:"collection holding the item: users or taskers"`
	ID     string `json:"id" jsonschema:"item id"`
	Action string `json:"action" jsonschema:"ban, activate or delete (delete only hides the item in this console)"`
}

type applyOutput struct {
	Entity string   `json:"entity"`
	Action string   `json:"action"`
	Item   itemView `json:"item"`
}

type recentInput struct {
	Entity string `json:"entity,omitempty" jsonschema:"only actions on this collection"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum entries to return (default 50)"`
}

type actionView struct {
	Entity    string `json:"entity"`
	ItemID    string `json:"item_id"`
	Action    string `json:"action"`
	Status    string `json:"status,omitempty"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

type recentOutput struct {
	Actions []actionView `json:"actions"`
}

func registerTools(server *sdkmcp.Server, svc Services) {
	t := &tools{svc: svc}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "login",
		Description: "Sign in as an admin. Every other console tool requires a session.",
	}, t.login)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "logout",
		Description: "End the admin session and forget the stored token.",
	}, t.logout)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_items",
		Description: "Load a collection and return its derived view (search, status filter, date sort).",
	}, t.listItems)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "apply_action",
		Description: "Ban, activate or delete one user or tasker. Only one action per item may be in flight.",
	}, t.applyAction)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "booking_counts",
		Description: "Count bookings by status (total, pending, completed, cancelled).",
	}, t.bookingCounts)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard",
		Description: "Summary cards, charts and recent platform activity. Sections that fail to load are listed under warnings.",
	}, t.dashboard)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_profile",
		Description: "The signed-in admin's profile.",
	}, t.profile)
	if svc.Activity != nil {
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "recent_actions",
			Description: "Actions applied from this console, newest first.",
		}, t.recentActions)
	}
}

type tools struct {
	svc Services
}

func (t *tools) login(ctx context.Context, _ *sdkmcp.CallToolRequest, in loginInput) (*sdkmcp.CallToolResult, loginOutput, error) {
	p, err := t.svc.Session.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, loginOutput{}, MapError(err)
	}
	return nil, loginOutput{Admin: shown(p)}, nil
}

func (t *tools) logout(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, messageOutput, error) {
	if err := t.svc.Session.Logout(ctx); err != nil {
		return nil, messageOutput{}, MapError(err)
	}
	return nil, messageOutput{Message: "signed out"}, nil
}

func (t *tools) listItems(ctx context.Context, _ *sdkmcp.CallToolRequest, in listInput) (*sdkmcp.CallToolResult, listOutput, error) {
	sort, err := collection.ParseSort(in.Sort)
	if err != nil {
		return nil, listOutput{}, MapError(err)
	}
	items, err := t.svc.Collections.List(ctx, in.Entity, collection.Query{Search: in.Search, Status: in.Status, Sort: sort})
	if err != nil && items == nil {
		return nil, listOutput{}, MapError(err)
	}
	out := listOutput{Entity: in.Entity, Count: len(items), Items: make([]itemView, 0, len(items))}
	if err != nil {
		out.Stale = true
		out.Warning = MapError(err).Error()
	}
	for _, item := range items {
		out.Items = append(out.Items, viewOf(item))
	}
	return nil, out, nil
}

func (t *tools) applyAction(ctx context.Context, _ *sdkmcp.CallToolRequest, in applyInput) (*sdkmcp.CallToolResult, applyOutput, error) {
	action, err := collection.ParseAction(in.Action)
	if err != nil {
		return nil, applyOutput{}, MapError(err)
	}
	item, err := t.svc.Collections.Apply(ctx, in.Entity, in.ID, action)
	if err != nil {
		return nil, applyOutput{}, MapError(err)
	}
	return nil, applyOutput{Entity: in.Entity, Action: string(action), Item: viewOf(item)}, nil
}

func (t *tools) bookingCounts(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, booking.Counts, error) {
	counts, err := t.svc.Collections.BookingCounts(ctx)
	if err != nil {
		return nil, booking.Counts{}, MapError(err)
	}
	return nil, counts, nil
}

func (t *tools) dashboard(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, dashboard.Overview, error) {
	overview, err := t.svc.Dashboard.Load(ctx)
	if err != nil {
		return nil, dashboard.Overview{}, MapError(err)
	}
	return nil, *overview, nil
}

func (t *tools) profile(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, profile.Profile, error) {
	p, err := t.svc.Profile.Get(ctx)
	if err != nil {
		return nil, profile.Profile{}, MapError(err)
	}
	return nil, shown(p), nil
}

func (t *tools) recentActions(ctx context.Context, _ *sdkmcp.CallToolRequest, in recentInput) (*sdkmcp.CallToolResult, recentOutput, error) {
	entries, err := t.svc.Activity.GetRecentActivity(ctx, activity.ListActivityOptions{Entity: in.Entity, Limit: in.Limit})
	if err != nil {
		return nil, recentOutput{}, MapError(err)
	}
	out := recentOutput{Actions: make([]actionView, 0, len(entries))}
	for _, e := range entries {
		out.Actions = append(out.Actions, actionView{
			Entity:    e.Entity,
			ItemID:    e.ItemID,
			Action:    e.Action,
			Status:    e.Status,
			Summary:   e.Summary,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return nil, out, nil
}

// shown applies display fallbacks for a missing name or email.
func shown(p *profile.Profile) profile.Profile {
	out := profile.Profile{Name: p.DisplayName(), Email: p.DisplayEmail()}
	if p != nil {
		out.ID = p.ID
		out.Avatar = p.Avatar
	}
	return out
}

func viewOf(item collection.Item) itemView {
	return itemView{ID: item.ID, Status: string(item.Status), Fields: item.Fields}
}
