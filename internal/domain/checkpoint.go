package domain

import (
	"time"
)

// Checkpoint is the persisted snapshot of the currently running timer,
// written on every tick and used to resume across restarts.
type Checkpoint struct {
	TaskID    int64     `json:"taskId"`
	ElapsedMs int64     `json:"elapsedMs"`
	StartedAt time.Time `json:"startedAt"`
}

// IsValid checks if the checkpoint has valid data.
func (c Checkpoint) IsValid() bool {
	return c.TaskID > 0 && c.ElapsedMs >= 0
}
