package storage

import (
	"time"

	"timekeep/internal/domain"
)

// Logical keys of the durable store.
const (
	// KeyTasks holds the ordered task registry.
	KeyTasks = "tasks"

	// KeyEntries holds the all-time manual entry log.
	KeyEntries = "entries"

	// KeyCheckpoint holds the active timer checkpoint, present only while
	// a task has ever been selected.
	KeyCheckpoint = "checkpoint"
)

// SessionLogKey returns the key of the session log for the given calendar
// day. A day's log is simply absent until first written; no rollover event
// exists.
func SessionLogKey(date time.Time) string {
	return "sessions:" + date.Format(domain.DateLayout)
}
