// Package console binds one collection view model per entity to the
// backend client.
package console

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/servidz/console/internal/apperr"
	"github.com/servidz/console/internal/domain/booking"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/tasker"
	"github.com/servidz/console/internal/domain/user"
)

// Backend is the subset of the REST client the collections need.
type Backend interface {
	Users(ctx context.Context) ([]collection.Record, error)
	Taskers(ctx context.Context) ([]collection.Record, error)
	Bookings(ctx context.Context) ([]collection.Record, error)
	SetUserStatus(ctx context.Context, id string, status collection.Status) error
	SetTaskerStatus(ctx context.Context, id string, status collection.Status) error
}

// Options configures the collections.
type Options struct {
	Recorder  collection.ActionRecorder
	Reconcile bool
	Logger    *slog.Logger
}

// Console owns the users, taskers and bookings collections.
type Console struct {
	models map[string]*collection.ViewModel
}

// New creates the three collections. They start empty; call Load.
func New(b Backend, opts Options) *Console {
	base := collection.Options{
		Recorder:  opts.Recorder,
		Reconcile: opts.Reconcile,
		Logger:    opts.Logger,
	}

	users := base
	users.SetStatus = b.SetUserStatus
	taskers := base
	taskers.SetStatus = b.SetTaskerStatus

	return &Console{models: map[string]*collection.ViewModel{
		user.Entity:    collection.NewViewModel(user.Schema, b.Users, users),
		tasker.Entity:  collection.NewViewModel(tasker.Schema, b.Taskers, taskers),
		booking.Entity: collection.NewViewModel(booking.Schema, b.Bookings, base),
	}}
}

// Entities lists the collection names in a stable order.
func (c *Console) Entities() []string {
	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Collection returns the view model for entity. Singular names and any
// casing are accepted.
func (c *Console) Collection(entity string) (*collection.ViewModel, error) {
	key := strings.ToLower(strings.TrimSpace(entity))
	if vm, ok := c.models[key]; ok {
		return vm, nil
	}
	if vm, ok := c.models[key+"s"]; ok {
		return vm, nil
	}
	return nil, apperr.Validation("unknown entity %q (want one of %s)", entity, strings.Join(c.Entities(), ", "))
}

// List loads entity and returns the derived view for q. A load overtaken
// by a newer one returns the current view. When a reload fails for any
// reason other than auth, the previously loaded view is returned together
// with the error.
func (c *Console) List(ctx context.Context, entity string, q collection.Query) ([]collection.Item, error) {
	vm, err := c.Collection(entity)
	if err != nil {
		return nil, err
	}
	err = vm.Load(ctx)
	if errors.Is(err, collection.ErrSuperseded) {
		err = nil
	}
	if err != nil && (apperr.IsAuth(err) || !vm.State().Loaded) {
		return nil, err
	}
	return vm.View(q), err
}

// Apply runs action against one item of entity. The collection is loaded
// first when it has never been loaded.
func (c *Console) Apply(ctx context.Context, entity, id string, action collection.Action) (collection.Item, error) {
	vm, err := c.Collection(entity)
	if err != nil {
		return collection.Item{}, err
	}
	if !vm.State().Loaded {
		if err := vm.Load(ctx); err != nil {
			return collection.Item{}, err
		}
	}
	before, _ := vm.Get(id)
	if err := vm.ApplyAction(ctx, id, action); err != nil {
		return collection.Item{}, err
	}
	if after, ok := vm.Get(id); ok {
		return after, nil
	}
	return before, nil
}

// BookingCounts loads bookings and tallies them by status.
func (c *Console) BookingCounts(ctx context.Context) (booking.Counts, error) {
	items, err := c.List(ctx, booking.Entity, collection.Query{})
	if err != nil {
		return booking.Counts{}, err
	}
	return booking.Count(items), nil
}
