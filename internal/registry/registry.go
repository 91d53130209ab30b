package registry

import (
	"context"
	"encoding/json"

	"timekeep/internal/config"
	"timekeep/internal/domain"
	"timekeep/internal/errors"
	"timekeep/internal/storage"
	"timekeep/internal/validation"
)

// DefaultColor is assigned to tasks created without an explicit color.
const DefaultColor = "#4CAF50"

// Registry holds the task set and persists it through the durable store
// after every mutation. AccumulatedMs on each task is a cache recomputed
// from entries and sessions, never the source of truth.
type Registry struct {
	store         storage.Store
	taskValidator *validation.TaskValidator
	tasks         []*domain.Task
	nextID        int64
}

// New creates a registry backed by the given store. Call Load before use.
func New(store storage.Store) *Registry {
	return &Registry{
		store:         store,
		taskValidator: validation.NewTaskValidator(),
		nextID:        1,
	}
}

// NewWithConfig creates a registry whose task validation honors the
// configured name-length limits.
func NewWithConfig(store storage.Store, cfg *config.Config) *Registry {
	return &Registry{
		store:         store,
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
		nextID:        1,
	}
}

// Load reads the persisted registry, seeding the default task set on
// first run.
func (r *Registry) Load(ctx context.Context) error {
	value, ok, err := r.store.Get(ctx, storage.KeyTasks)
	if err != nil {
		return err
	}

	if !ok {
		r.tasks = domain.DefaultTasks()
		r.bumpNextID()
		return r.persist(ctx)
	}

	var tasks []*domain.Task
	if err := json.Unmarshal([]byte(value), &tasks); err != nil {
		return errors.NewStorageError("decode task registry", err)
	}
	r.tasks = tasks
	r.bumpNextID()
	return nil
}

// Tasks returns the registered tasks in insertion order.
func (r *Registry) Tasks() []*domain.Task {
	return r.tasks
}

// AddTask registers a new task with a fresh id and persists the registry.
// An empty trimmed name is a validation error.
func (r *Registry) AddTask(ctx context.Context, name, color string) (*domain.Task, error) {
	trimmedName, err := r.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}
	if err := r.taskValidator.ValidateTaskColor(color); err != nil {
		return nil, err
	}
	if color == "" {
		color = DefaultColor
	}

	task := domain.NewTask(trimmedName, color)
	task.ID = r.nextID
	r.nextID++

	r.tasks = append(r.tasks, &task)
	if err := r.persist(ctx); err != nil {
		return nil, err
	}
	return &task, nil
}

// FindTask returns the task with the given id.
func (r *Registry) FindTask(id int64) (*domain.Task, bool) {
	for _, task := range r.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return nil, false
}

// RecomputeAccumulated sets the task's accumulated time to the sum of
// every entry and session duration whose task id matches. This is a full
// recomputation each call, which keeps the cache correct when entries are
// edited or deleted out of band.
func (r *Registry) RecomputeAccumulated(ctx context.Context, task *domain.Task, entries []*domain.TimeEntry, sessions []domain.Session) error {
	var total int64
	for _, entry := range entries {
		if entry.TaskID == task.ID {
			total += entry.DurationMs
		}
	}
	for _, session := range sessions {
		if session.TaskID == task.ID {
			total += session.DurationMs
		}
	}

	task.AccumulatedMs = total
	return r.persist(ctx)
}

// persist writes the registry to the durable store.
func (r *Registry) persist(ctx context.Context) error {
	data, err := json.Marshal(r.tasks)
	if err != nil {
		return errors.NewStorageError("encode task registry", err)
	}
	return r.store.Put(ctx, storage.KeyTasks, string(data))
}

// bumpNextID advances nextID past every loaded task id.
func (r *Registry) bumpNextID() {
	for _, task := range r.tasks {
		if task.ID >= r.nextID {
			r.nextID = task.ID + 1
		}
	}
}
