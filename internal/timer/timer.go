package timer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"timekeep/internal/domain"
	"timekeep/internal/entries"
	"timekeep/internal/errors"
	"timekeep/internal/registry"
	"timekeep/internal/storage"
)

// nowFunc is a variable that can be replaced in tests
var nowFunc = time.Now

// State is the timer's lifecycle state.
type State int

const (
	// StateIdle means no task is selected.
	StateIdle State = iota
	// StateRunning means a task is selected and the clock is ticking.
	StateRunning
	// StateStopped means a task is selected with residual elapsed time but
	// the clock is not ticking.
	StateStopped
)

// String returns the state name for display purposes.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Timer governs the live countup against the selected task. Elapsed time
// is always recomputed from the wall clock, never accumulated by
// increments, so drift from missed ticks self-corrects. Every tick
// checkpoints the timer to the durable store for resume across restarts.
type Timer struct {
	kv       storage.Store
	registry *registry.Registry
	entries  *entries.Store

	state     State
	current   *domain.Task
	elapsedMs int64
	startedAt time.Time
}

// New creates a timer backed by the given store, registry and entry store.
func New(kv storage.Store, reg *registry.Registry, entryStore *entries.Store) *Timer {
	return &Timer{
		kv:       kv,
		registry: reg,
		entries:  entryStore,
	}
}

// State returns the timer's current state.
func (t *Timer) State() State {
	return t.state
}

// CurrentTask returns the selected task, or nil when idle.
func (t *Timer) CurrentTask() *domain.Task {
	return t.current
}

// ElapsedMs returns the elapsed time of the current run. While running the
// value is recomputed from the wall clock.
func (t *Timer) ElapsedMs() int64 {
	if t.state == StateRunning {
		return nowFunc().Sub(t.startedAt).Milliseconds()
	}
	return t.elapsedMs
}

// Select switches the timer to the given task: a running timer is stopped
// first (committing its session), elapsed time is reset and the timer
// re-enters Running. Re-selecting the already-current task is a no-op.
func (t *Timer) Select(ctx context.Context, taskID int64) error {
	if t.current != nil && t.current.ID == taskID {
		return nil
	}

	task, ok := t.registry.FindTask(taskID)
	if !ok {
		return errors.NewNotFoundError("task", strconv.FormatInt(taskID, 10))
	}

	if err := t.Stop(ctx); err != nil {
		return err
	}

	t.current = task
	t.elapsedMs = 0
	t.startedAt = nowFunc()
	t.state = StateRunning
	return t.checkpoint(ctx)
}

// Start resumes the timer from the stopped state. It is a no-op when
// already running or when no task is selected.
func (t *Timer) Start(ctx context.Context) error {
	if t.state == StateRunning || t.current == nil {
		return nil
	}

	// Resume from the residual so the clock continues where it stopped.
	t.startedAt = nowFunc().Add(-time.Duration(t.elapsedMs) * time.Millisecond)
	t.state = StateRunning
	return t.checkpoint(ctx)
}

// Stop halts a running timer and commits the run as a session, subject to
// the entry store's one-second floor. It is a no-op when not running.
func (t *Timer) Stop(ctx context.Context) error {
	if t.state != StateRunning {
		return nil
	}

	now := nowFunc()
	t.elapsedMs = now.Sub(t.startedAt).Milliseconds()
	t.state = StateStopped

	if t.elapsedMs > 0 {
		if _, err := t.entries.RecordSession(ctx, t.current, t.elapsedMs, t.startedAt, now); err != nil {
			return err
		}
	}
	return t.checkpoint(ctx)
}

// Reset returns the timer to Idle, abandoning in-flight time rather than
// logging it, and clears the persisted checkpoint.
func (t *Timer) Reset(ctx context.Context) error {
	t.state = StateIdle
	t.current = nil
	t.elapsedMs = 0
	t.startedAt = time.Time{}
	return t.kv.Delete(ctx, storage.KeyCheckpoint)
}

// Tick recomputes elapsed time from the wall clock and checkpoints the
// timer. It is a no-op when not running.
func (t *Timer) Tick(ctx context.Context) error {
	if t.state != StateRunning {
		return nil
	}
	t.elapsedMs = nowFunc().Sub(t.startedAt).Milliseconds()
	return t.checkpoint(ctx)
}

// Restore resumes the timer from a persisted checkpoint, if one exists.
// The restored elapsed time is exactly what was last checkpointed; time
// that passed while the app was closed is not counted. A checkpoint
// referencing a task no longer in the registry is discarded.
func (t *Timer) Restore(ctx context.Context) error {
	value, ok, err := t.kv.Get(ctx, storage.KeyCheckpoint)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var cp domain.Checkpoint
	if err := json.Unmarshal([]byte(value), &cp); err != nil {
		return errors.NewStorageError("decode checkpoint", err)
	}

	task, found := t.registry.FindTask(cp.TaskID)
	if !found {
		return t.kv.Delete(ctx, storage.KeyCheckpoint)
	}

	t.current = task
	t.elapsedMs = cp.ElapsedMs
	t.startedAt = nowFunc().Add(-time.Duration(cp.ElapsedMs) * time.Millisecond)
	t.state = StateRunning
	return t.checkpoint(ctx)
}

// checkpoint persists the timer's current state.
func (t *Timer) checkpoint(ctx context.Context) error {
	if t.current == nil {
		return nil
	}

	cp := domain.Checkpoint{
		TaskID:    t.current.ID,
		ElapsedMs: t.elapsedMs,
		StartedAt: t.startedAt,
	}
	data, err := json.Marshal(cp)
	if err != nil {
		return errors.NewStorageError("encode checkpoint", err)
	}
	return t.kv.Put(ctx, storage.KeyCheckpoint, string(data))
}

