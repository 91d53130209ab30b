package entries

import (
	"context"
	"encoding/json"
	"time"

	"timekeep/internal/domain"
	"timekeep/internal/duration"
	"timekeep/internal/errors"
	"timekeep/internal/registry"
	"timekeep/internal/storage"
	"timekeep/internal/validation"
)

// nowFunc is a variable that can be replaced in tests
var nowFunc = time.Now

// Store is the durable log of manual entries plus the ephemeral log of
// today's timer sessions. Manual entries are global; sessions are keyed by
// calendar day and not retained beyond that day's log.
type Store struct {
	kv             storage.Store
	registry       *registry.Registry
	entryValidator *validation.EntryValidator

	entries    []*domain.TimeEntry
	sessions   []domain.Session
	sessionDay string
	nextID     int64
}

// New creates an entry store backed by the given durable store and task
// registry. Call Load before use.
func New(kv storage.Store, reg *registry.Registry) *Store {
	return &Store{
		kv:             kv,
		registry:       reg,
		entryValidator: validation.NewEntryValidator(),
		nextID:         1,
	}
}

// Load reads the manual entry log and today's session log.
func (s *Store) Load(ctx context.Context) error {
	value, ok, err := s.kv.Get(ctx, storage.KeyEntries)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal([]byte(value), &s.entries); err != nil {
			return errors.NewStorageError("decode entry log", err)
		}
	}
	for _, entry := range s.entries {
		if entry.ID >= s.nextID {
			s.nextID = entry.ID + 1
		}
	}

	return s.loadSessionLog(ctx, nowFunc())
}

// Entries returns every manual entry in insertion order.
func (s *Store) Entries() []*domain.TimeEntry {
	return s.entries
}

// TodaySessions returns today's recorded timer sessions, rotating the log
// first if the calendar day has changed since the last access.
func (s *Store) TodaySessions(ctx context.Context) ([]domain.Session, error) {
	if err := s.rotateSessionLog(ctx); err != nil {
		return nil, err
	}
	return s.sessions, nil
}

// AddManual validates the input and appends a new manual entry, snapshotting
// the task's name and color at entry time.
func (s *Store) AddManual(ctx context.Context, in domain.EntryInput) (*domain.TimeEntry, error) {
	task, durationMs, err := s.resolve(in)
	if err != nil {
		return nil, err
	}

	now := nowFunc()
	entry := &domain.TimeEntry{
		ID:         s.nextID,
		TaskID:     task.ID,
		TaskName:   task.Name,
		TaskColor:  task.Color,
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		DurationMs: durationMs,
		Notes:      in.Notes,
		CreatedAt:  now,
	}
	s.nextID++

	s.entries = append(s.entries, entry)
	if err := s.persistEntries(ctx); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateManual revalidates and rewrites the entry with the given id. The
// task snapshot is refreshed from the current task when the task reference
// changed. A nonpositive id is a validation error; an unknown id is a
// silent no-op returning (nil, nil).
func (s *Store) UpdateManual(ctx context.Context, id int64, in domain.EntryInput) (*domain.TimeEntry, error) {
	if err := s.entryValidator.ValidateEntryID(id); err != nil {
		return nil, err
	}

	entry := s.find(id)
	if entry == nil {
		return nil, nil
	}

	task, durationMs, err := s.resolve(in)
	if err != nil {
		return nil, err
	}

	if in.TaskID != entry.TaskID {
		entry.TaskID = task.ID
		entry.TaskName = task.Name
		entry.TaskColor = task.Color
	}
	entry.Date = in.Date
	entry.StartTime = in.StartTime
	entry.EndTime = in.EndTime
	entry.DurationMs = durationMs
	entry.Notes = in.Notes

	now := nowFunc()
	entry.UpdatedAt = &now

	if err := s.persistEntries(ctx); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteManual removes the entry with the given id. A nonpositive id is a
// validation error; an unknown id is a silent no-op.
func (s *Store) DeleteManual(ctx context.Context, id int64) error {
	if err := s.entryValidator.ValidateEntryID(id); err != nil {
		return err
	}

	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.persistEntries(ctx)
		}
	}
	return nil
}

// RecordSession appends a completed timer run to today's session log.
// Runs under the one-second floor are dropped without error; the returned
// bool reports whether the session was recorded.
func (s *Store) RecordSession(ctx context.Context, task *domain.Task, durationMs int64, startedAt, endedAt time.Time) (bool, error) {
	if durationMs < domain.MinSessionMs {
		return false, nil
	}

	if err := s.rotateSessionLog(ctx); err != nil {
		return false, err
	}

	s.sessions = append(s.sessions, domain.NewSession(task, durationMs, startedAt, endedAt))
	if err := s.persistSessions(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Filter returns manual entries within the inclusive date range with an
// optional exact task match. Results keep the store's insertion order;
// sorting is the caller's concern.
func (s *Store) Filter(from, to *time.Time, taskID *int64) []*domain.TimeEntry {
	loc := nowFunc().Location()

	filtered := make([]*domain.TimeEntry, 0)
	for _, entry := range s.entries {
		date := entry.EffectiveDate(loc)
		if from != nil && date.Before(*from) {
			continue
		}
		if to != nil && date.After(domain.EndOfDay(*to)) {
			continue
		}
		if taskID != nil && entry.TaskID != *taskID {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// resolve validates the input and computes its duration, returning the
// referenced task.
func (s *Store) resolve(in domain.EntryInput) (*domain.Task, int64, error) {
	if err := s.entryValidator.ValidateEntryInput(in); err != nil {
		return nil, 0, err
	}

	task, ok := s.registry.FindTask(in.TaskID)
	if !ok {
		return nil, 0, errors.NewValidationError("task does not exist", nil).WithContext("task_id", in.TaskID)
	}

	durationMs, err := s.computeDuration(in)
	if err != nil {
		return nil, 0, err
	}
	return task, durationMs, nil
}

// computeDuration resolves the input's duration from whichever form was
// supplied. The clock pair takes precedence.
func (s *Store) computeDuration(in domain.EntryInput) (int64, error) {
	if !in.HasClockRange() {
		return duration.FromHMS(in.Hours, in.Minutes), nil
	}

	date, err := domain.ParseDate(in.Date, nowFunc().Location())
	if err != nil {
		return 0, errors.NewValidationError("invalid date", err)
	}
	start, err := domain.ParseClock(date, in.StartTime)
	if err != nil {
		return 0, errors.NewValidationError("invalid start time", err)
	}
	end, err := domain.ParseClock(date, in.EndTime)
	if err != nil {
		return 0, errors.NewValidationError("invalid end time", err)
	}

	durationMs := end.Sub(start).Milliseconds()
	if durationMs <= 0 {
		return 0, errors.NewValidationError("end time must be after start time", nil)
	}
	return durationMs, nil
}

// find returns the manual entry with the given id, or nil.
func (s *Store) find(id int64) *domain.TimeEntry {
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

// rotateSessionLog switches to the current day's session log when the
// calendar day has changed. The previous day's log stays in the store
// untouched.
func (s *Store) rotateSessionLog(ctx context.Context) error {
	today := nowFunc()
	if s.sessionDay == today.Format(domain.DateLayout) {
		return nil
	}
	return s.loadSessionLog(ctx, today)
}

// loadSessionLog reads the session log for the given day.
func (s *Store) loadSessionLog(ctx context.Context, day time.Time) error {
	s.sessionDay = day.Format(domain.DateLayout)
	s.sessions = nil

	value, ok, err := s.kv.Get(ctx, storage.SessionLogKey(day))
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal([]byte(value), &s.sessions); err != nil {
			return errors.NewStorageError("decode session log", err)
		}
	}
	return nil
}

// persistEntries writes the manual entry log to the durable store.
func (s *Store) persistEntries(ctx context.Context) error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return errors.NewStorageError("encode entry log", err)
	}
	return s.kv.Put(ctx, storage.KeyEntries, string(data))
}

// persistSessions writes today's session log to the durable store.
func (s *Store) persistSessions(ctx context.Context) error {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		return errors.NewStorageError("encode session log", err)
	}
	day, _ := domain.ParseDate(s.sessionDay, nowFunc().Location())
	return s.kv.Put(ctx, storage.SessionLogKey(day), string(data))
}
