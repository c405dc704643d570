package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/servidz/console/internal/apperr"
)

// Options configures optional collaborators of a ViewModel.
type Options struct {
	// SetStatus is the remote status endpoint. Nil means ban and activate
	// are rejected for this entity.
	SetStatus StatusFunc
	// Recorder is told about every applied action.
	Recorder ActionRecorder
	// Reconcile reloads the collection after a successful status action.
	Reconcile bool
	Logger    *slog.Logger
}

// ViewModel owns one remote collection: it loads it, derives filtered views
// from it, and patches it after remote actions succeed.
type ViewModel struct {
	schema    Schema
	fetch     FetchFunc
	setStatus StatusFunc
	recorder  ActionRecorder
	reconcile bool
	logger    *slog.Logger

	mu       sync.Mutex
	items    []Item
	loading  bool
	loaded   bool
	err      error
	loadSeq  uint64
	pending  map[string]struct{}
	selected map[string]struct{}
}

// NewViewModel creates an empty view model bound to fetch.
func NewViewModel(schema Schema, fetch FetchFunc, opts Options) *ViewModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ViewModel{
		schema:    schema,
		fetch:     fetch,
		setStatus: opts.SetStatus,
		recorder:  opts.Recorder,
		reconcile: opts.Reconcile,
		logger:    logger,
		pending:   make(map[string]struct{}),
		selected:  make(map[string]struct{}),
	}
}

// Schema returns the entity schema.
func (vm *ViewModel) Schema() Schema {
	return vm.schema
}

// Load replaces the collection with a fresh fetch. On failure the previous
// items stay in place and the error is kept in State. When a newer Load
// starts before this one finishes, this result is dropped and ErrSuperseded
// is returned.
func (vm *ViewModel) Load(ctx context.Context) error {
	vm.mu.Lock()
	vm.loadSeq++
	seq := vm.loadSeq
	vm.loading = true
	vm.mu.Unlock()

	records, fetchErr := vm.fetch(ctx)
	var items []Item
	if fetchErr == nil {
		items = vm.normalizeAll(records)
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	if seq != vm.loadSeq {
		vm.logger.Debug("discarding superseded load", "entity", vm.schema.Entity, "seq", seq, "latest", vm.loadSeq)
		return ErrSuperseded
	}
	vm.loading = false
	if fetchErr != nil {
		vm.err = fetchErr
		vm.logger.Warn("load failed", "entity", vm.schema.Entity, "error", fetchErr)
		return fmt.Errorf("loading %s: %w", vm.schema.Entity, fetchErr)
	}

	vm.items = items
	vm.loaded = true
	vm.err = nil
	for id := range vm.selected {
		if vm.indexOf(id) < 0 {
			delete(vm.selected, id)
		}
	}
	vm.logger.Debug("loaded collection", "entity", vm.schema.Entity, "count", len(items))
	return nil
}

func (vm *ViewModel) normalizeAll(records []Record) []Item {
	items := make([]Item, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		item := vm.schema.Normalize(rec)
		if item.ID == "" {
			vm.logger.Warn("dropping record without id", "entity", vm.schema.Entity)
			continue
		}
		if _, dup := seen[item.ID]; dup {
			vm.logger.Warn("dropping duplicate record", "entity", vm.schema.Entity, "id", item.ID)
			continue
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return items
}

// State returns a snapshot of the raw state.
func (vm *ViewModel) State() State {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return State{
		Items:   slices.Clone(vm.items),
		Loading: vm.loading,
		Loaded:  vm.loaded,
		Err:     vm.err,
	}
}

// View derives the visible items for q from the current raw state.
func (vm *ViewModel) View(q Query) []Item {
	vm.mu.Lock()
	items := slices.Clone(vm.items)
	vm.mu.Unlock()
	return Derive(vm.schema, items, q)
}

// Get returns the item with id.
func (vm *ViewModel) Get(id string) (Item, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if i := vm.indexOf(id); i >= 0 {
		return vm.items[i], true
	}
	return Item{}, false
}

// Pending reports whether an action is in flight for id.
func (vm *ViewModel) Pending(id string) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	_, ok := vm.pending[id]
	return ok
}

// ApplyAction runs action against one item. The local item is patched only
// after the remote call succeeds; delete is local only. A second action on
// the same id while one is pending fails with apperr.ErrActionInProgress.
// If a reload drops the item before the call returns, nothing is recorded
// and ErrItemGone is returned.
func (vm *ViewModel) ApplyAction(ctx context.Context, id string, action Action) error {
	status, remote, err := vm.resolve(action)
	if err != nil {
		return err
	}

	vm.mu.Lock()
	if vm.indexOf(id) < 0 {
		vm.mu.Unlock()
		return apperr.Validation("%s %q is not loaded", vm.schema.Entity, id)
	}
	if _, busy := vm.pending[id]; busy {
		vm.mu.Unlock()
		return fmt.Errorf("%s %s %s: %w", action, vm.schema.Entity, id, apperr.ErrActionInProgress)
	}
	vm.pending[id] = struct{}{}
	vm.mu.Unlock()

	if remote {
		if err := vm.setStatus(ctx, id, status); err != nil {
			vm.mu.Lock()
			delete(vm.pending, id)
			vm.mu.Unlock()
			vm.logger.Warn("action failed", "entity", vm.schema.Entity, "id", id, "action", action, "error", err)
			return fmt.Errorf("%s %s %s: %w", action, vm.schema.Entity, id, err)
		}
	}

	vm.mu.Lock()
	delete(vm.pending, id)
	i := vm.indexOf(id)
	switch {
	case i < 0:
	case action == ActionDelete:
		vm.items = slices.Delete(vm.items, i, i+1)
		delete(vm.selected, id)
	default:
		vm.items[i].Status = status
	}
	vm.mu.Unlock()

	if i < 0 {
		// A reload dropped the item while the call was in flight.
		vm.logger.Warn("item gone after action", "entity", vm.schema.Entity, "id", id, "action", action)
		return fmt.Errorf("%s %s %s: %w", action, vm.schema.Entity, id, ErrItemGone)
	}

	vm.logger.Info("action applied", "entity", vm.schema.Entity, "id", id, "action", action, "status", status)
	vm.record(ctx, ActionEvent{Entity: vm.schema.Entity, ItemID: id, Action: action, Status: status})

	if remote && vm.reconcile {
		if err := vm.Load(ctx); err != nil && !errors.Is(err, ErrSuperseded) {
			vm.logger.Warn("reconcile after action failed", "entity", vm.schema.Entity, "error", err)
		}
	}
	return nil
}

func (vm *ViewModel) resolve(action Action) (Status, bool, error) {
	if !vm.schema.Supports(action) {
		return "", false, apperr.Validation("%s does not support %q", vm.schema.Entity, action)
	}
	if action == ActionDelete {
		return "", false, nil
	}
	if vm.setStatus == nil {
		return "", false, apperr.Validation("%s has no status endpoint", vm.schema.Entity)
	}
	return vm.schema.Transitions[action], true, nil
}

func (vm *ViewModel) record(ctx context.Context, event ActionEvent) {
	if vm.recorder == nil {
		return
	}
	if err := vm.recorder.RecordAction(ctx, event); err != nil {
		vm.logger.Warn("recording action failed", "entity", event.Entity, "id", event.ItemID, "error", err)
	}
}

// Toggle flips the selection of a loaded id and reports whether it is now selected.
func (vm *ViewModel) Toggle(id string) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.indexOf(id) < 0 {
		return false
	}
	if _, ok := vm.selected[id]; ok {
		delete(vm.selected, id)
		return false
	}
	vm.selected[id] = struct{}{}
	return true
}

// SelectAll selects every item visible under q, or clears them when all of
// them are already selected. Ids outside the view are left alone.
func (vm *ViewModel) SelectAll(q Query) []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	visible := Derive(vm.schema, vm.items, q)
	all := len(visible) > 0
	for _, item := range visible {
		if _, ok := vm.selected[item.ID]; !ok {
			all = false
			break
		}
	}
	for _, item := range visible {
		if all {
			delete(vm.selected, item.ID)
		} else {
			vm.selected[item.ID] = struct{}{}
		}
	}
	return vm.selectedLocked()
}

// Selected returns selected ids in fetch order.
func (vm *ViewModel) Selected() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.selectedLocked()
}

// ClearSelection drops every selected id.
func (vm *ViewModel) ClearSelection() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	clear(vm.selected)
}

func (vm *ViewModel) selectedLocked() []string {
	ids := make([]string, 0, len(vm.selected))
	for _, item := range vm.items {
		if _, ok := vm.selected[item.ID]; ok {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func (vm *ViewModel) indexOf(id string) int {
	return slices.IndexFunc(vm.items, func(item Item) bool { return item.ID == id })
}
