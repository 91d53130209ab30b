package stats

import (
	"context"
	"sort"
	"time"

	"timekeep/internal/domain"
	"timekeep/internal/entries"
	"timekeep/internal/registry"
)

// Origin tags a history item with the path it entered the store through.
type Origin string

const (
	// OriginManual marks an item created through the manual-entry form.
	OriginManual Origin = "manual"
	// OriginTimer marks an item recorded by a completed timer run.
	OriginTimer Origin = "timer"
)

// HistoryItem is one row of the merged manual/timer timeline.
type HistoryItem struct {
	Origin     Origin    `json:"origin"`
	TaskID     int64     `json:"taskId"`
	TaskName   string    `json:"taskName"`
	TaskColor  string    `json:"taskColor"`
	DurationMs int64     `json:"durationMs"`
	Timestamp  time.Time `json:"timestamp"`
	Notes      string    `json:"notes,omitempty"`
}

// TaskTotal pairs a task with its recomputed total time.
type TaskTotal struct {
	Task    *domain.Task `json:"task"`
	TotalMs int64        `json:"totalMs"`
}

// Engine recomputes per-task totals and filtered views over the entry
// store. Nothing here is incrementally maintained; every call walks the
// underlying records.
type Engine struct {
	registry *registry.Registry
	entries  *entries.Store
}

// New creates an aggregation engine over the given registry and entry
// store.
func New(reg *registry.Registry, entryStore *entries.Store) *Engine {
	return &Engine{
		registry: reg,
		entries:  entryStore,
	}
}

// TotalForTask returns the summed duration of every manual entry and
// today's sessions matching the task.
func (e *Engine) TotalForTask(ctx context.Context, taskID int64) (int64, error) {
	sessions, err := e.entries.TodaySessions(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, entry := range e.entries.Entries() {
		if entry.TaskID == taskID {
			total += entry.DurationMs
		}
	}
	for _, session := range sessions {
		if session.TaskID == taskID {
			total += session.DurationMs
		}
	}
	return total, nil
}

// TotalForPeriod returns the flat sum of the given entries' durations.
func (e *Engine) TotalForPeriod(filtered []*domain.TimeEntry) int64 {
	var total int64
	for _, entry := range filtered {
		total += entry.DurationMs
	}
	return total
}

// PerTaskTotals recomputes the total for every registered task.
func (e *Engine) PerTaskTotals(ctx context.Context) ([]TaskTotal, error) {
	tasks := e.registry.Tasks()
	totals := make([]TaskTotal, 0, len(tasks))
	for _, task := range tasks {
		total, err := e.TotalForTask(ctx, task.ID)
		if err != nil {
			return nil, err
		}
		totals = append(totals, TaskTotal{Task: task, TotalMs: total})
	}
	return totals, nil
}

// HistoryFeed merges manual entries and today's sessions into one
// timeline tagged by origin, sorted descending by effective timestamp
// (entry date for manual items, session start for timer items) and
// truncated to the limit most recent.
func (e *Engine) HistoryFeed(ctx context.Context, limit int) ([]HistoryItem, error) {
	sessions, err := e.entries.TodaySessions(ctx)
	if err != nil {
		return nil, err
	}

	loc := time.Now().Location()
	items := make([]HistoryItem, 0, len(e.entries.Entries())+len(sessions))

	for _, entry := range e.entries.Entries() {
		items = append(items, HistoryItem{
			Origin:     OriginManual,
			TaskID:     entry.TaskID,
			TaskName:   entry.TaskName,
			TaskColor:  entry.TaskColor,
			DurationMs: entry.DurationMs,
			Timestamp:  entry.EffectiveDate(loc),
			Notes:      entry.Notes,
		})
	}
	for _, session := range sessions {
		items = append(items, HistoryItem{
			Origin:     OriginTimer,
			TaskID:     session.TaskID,
			TaskName:   session.TaskName,
			TaskColor:  session.TaskColor,
			DurationMs: session.DurationMs,
			Timestamp:  session.StartedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// Paginate slices the filtered entries into the 1-based page of the given
// size and returns the total page count (ceil of count over pageSize).
// Pages outside 1..totalPages are the caller's responsibility; an
// out-of-range page yields an empty slice.
func (e *Engine) Paginate(filtered []*domain.TimeEntry, page, pageSize int) ([]*domain.TimeEntry, int) {
	if pageSize <= 0 {
		return nil, 0
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start < 0 || start >= len(filtered) {
		return []*domain.TimeEntry{}, totalPages
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], totalPages
}
