package domain

import (
	"time"
)

// MinSessionMs is the floor below which a stopped timer run is discarded
// rather than recorded. Sub-second runs are noise, not data.
const MinSessionMs int64 = 1_000

// Session represents a completed timer run, auto-recorded on stop and
// scoped to the day it ended. TaskName and TaskColor are snapshots.
type Session struct {
	TaskID     int64     `json:"taskId"`
	TaskName   string    `json:"taskName"`
	TaskColor  string    `json:"taskColor"`
	DurationMs int64     `json:"durationMs"`
	StartedAt  time.Time `json:"startedAt"`
	EndedAt    time.Time `json:"endedAt"`
}

// NewSession creates a session snapshotting the given task.
func NewSession(task *Task, durationMs int64, startedAt, endedAt time.Time) Session {
	return Session{
		TaskID:     task.ID,
		TaskName:   task.Name,
		TaskColor:  task.Color,
		DurationMs: durationMs,
		StartedAt:  startedAt,
		EndedAt:    endedAt,
	}
}

// IsValid checks if the session has valid data.
func (s Session) IsValid() bool {
	if s.TaskID <= 0 {
		return false
	}
	if s.DurationMs < MinSessionMs {
		return false
	}
	return !s.EndedAt.Before(s.StartedAt)
}
