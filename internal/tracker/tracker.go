package tracker

import (
	"context"
	"time"

	"timekeep/internal/config"
	"timekeep/internal/domain"
	"timekeep/internal/entries"
	"timekeep/internal/registry"
	"timekeep/internal/stats"
	"timekeep/internal/storage"
	"timekeep/internal/timer"
)

// Tracker is the application state: it owns the task registry, the entry
// store, the timer and the aggregation engine, wired to one durable store.
// Components hold only the sub-state they need; there are no ambient
// globals. Mutations flow through Tracker so per-task totals are
// recomputed and change listeners fire after every change.
type Tracker struct {
	store     storage.Store
	registry  *registry.Registry
	entries   *entries.Store
	timer     *timer.Timer
	stats     *stats.Engine
	listeners []func()
}

// New wires a tracker over the given durable store. Call Init before use.
func New(store storage.Store) *Tracker {
	return newTracker(registry.New(store), store)
}

// NewWithConfig wires a tracker whose validation honors the configured
// limits.
func NewWithConfig(store storage.Store, cfg *config.Config) *Tracker {
	return newTracker(registry.NewWithConfig(store, cfg), store)
}

func newTracker(reg *registry.Registry, store storage.Store) *Tracker {
	entryStore := entries.New(store, reg)

	return &Tracker{
		store:    store,
		registry: reg,
		entries:  entryStore,
		timer:    timer.New(store, reg, entryStore),
		stats:    stats.New(reg, entryStore),
	}
}

// Init loads persisted state and resumes the timer from its checkpoint.
func (t *Tracker) Init(ctx context.Context) error {
	if err := t.registry.Load(ctx); err != nil {
		return err
	}
	if err := t.entries.Load(ctx); err != nil {
		return err
	}
	if err := t.timer.Restore(ctx); err != nil {
		return err
	}
	return t.recompute(ctx)
}

// Subscribe registers a listener invoked after every state change. The
// core has no rendering dependency; callers render on notification.
func (t *Tracker) Subscribe(fn func()) {
	t.listeners = append(t.listeners, fn)
}

// Stats returns the aggregation engine.
func (t *Tracker) Stats() *stats.Engine {
	return t.stats
}

// Tasks returns the registered tasks.
func (t *Tracker) Tasks() []*domain.Task {
	return t.registry.Tasks()
}

// FindTask returns the task with the given id.
func (t *Tracker) FindTask(id int64) (*domain.Task, bool) {
	return t.registry.FindTask(id)
}

// AddTask registers a new task.
func (t *Tracker) AddTask(ctx context.Context, name, color string) (*domain.Task, error) {
	task, err := t.registry.AddTask(ctx, name, color)
	if err != nil {
		return nil, err
	}
	t.notify()
	return task, nil
}

// Entries returns every manual entry in insertion order.
func (t *Tracker) Entries() []*domain.TimeEntry {
	return t.entries.Entries()
}

// TodaySessions returns today's recorded timer sessions.
func (t *Tracker) TodaySessions(ctx context.Context) ([]domain.Session, error) {
	return t.entries.TodaySessions(ctx)
}

// FilterEntries returns manual entries within the inclusive date range
// with an optional exact task match.
func (t *Tracker) FilterEntries(from, to *time.Time, taskID *int64) []*domain.TimeEntry {
	return t.entries.Filter(from, to, taskID)
}

// AddEntry appends a manual entry and recomputes totals.
func (t *Tracker) AddEntry(ctx context.Context, in domain.EntryInput) (*domain.TimeEntry, error) {
	entry, err := t.entries.AddManual(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := t.recompute(ctx); err != nil {
		return nil, err
	}
	t.notify()
	return entry, nil
}

// UpdateEntry rewrites the manual entry with the given id; unknown ids are
// a silent no-op.
func (t *Tracker) UpdateEntry(ctx context.Context, id int64, in domain.EntryInput) (*domain.TimeEntry, error) {
	entry, err := t.entries.UpdateManual(ctx, id, in)
	if err != nil || entry == nil {
		return entry, err
	}
	if err := t.recompute(ctx); err != nil {
		return nil, err
	}
	t.notify()
	return entry, nil
}

// DeleteEntry removes the manual entry with the given id; unknown ids are
// a silent no-op.
func (t *Tracker) DeleteEntry(ctx context.Context, id int64) error {
	if err := t.entries.DeleteManual(ctx, id); err != nil {
		return err
	}
	if err := t.recompute(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

// TimerState returns the timer's state.
func (t *Tracker) TimerState() timer.State {
	return t.timer.State()
}

// CurrentTask returns the timer's selected task, or nil.
func (t *Tracker) CurrentTask() *domain.Task {
	return t.timer.CurrentTask()
}

// ElapsedMs returns the elapsed time of the current timer run.
func (t *Tracker) ElapsedMs() int64 {
	return t.timer.ElapsedMs()
}

// SelectTask switches the timer to the given task, committing a running
// session first.
func (t *Tracker) SelectTask(ctx context.Context, taskID int64) error {
	if err := t.timer.Select(ctx, taskID); err != nil {
		return err
	}
	if err := t.recompute(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

// StartTimer resumes the stopped timer.
func (t *Tracker) StartTimer(ctx context.Context) error {
	if err := t.timer.Start(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

// StopTimer halts the running timer, committing the session.
func (t *Tracker) StopTimer(ctx context.Context) error {
	if err := t.timer.Stop(ctx); err != nil {
		return err
	}
	if err := t.recompute(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

// ResetTimer abandons the in-flight run and returns the timer to idle.
func (t *Tracker) ResetTimer(ctx context.Context) error {
	if err := t.timer.Reset(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

// Tick advances the running timer and checkpoints it. Call once per
// second while a resident process is displaying the timer.
func (t *Tracker) Tick(ctx context.Context) error {
	if err := t.timer.Tick(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

// recompute refreshes every task's accumulated-time cache from the
// underlying entries and sessions.
func (t *Tracker) recompute(ctx context.Context) error {
	sessions, err := t.entries.TodaySessions(ctx)
	if err != nil {
		return err
	}
	for _, task := range t.registry.Tasks() {
		if err := t.registry.RecomputeAccumulated(ctx, task, t.entries.Entries(), sessions); err != nil {
			return err
		}
	}
	return nil
}

// notify invokes every subscribed change listener.
func (t *Tracker) notify() {
	for _, fn := range t.listeners {
		fn()
	}
}
