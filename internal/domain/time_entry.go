package domain

import (
	"time"
)

// Date and clock-time layouts used by manual entries.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// TimeEntry represents a manually entered, permanently retained record of
// time spent on a task. TaskName and TaskColor are snapshots of the task at
// entry time so historical display survives later task edits.
type TimeEntry struct {
	ID         int64      `json:"id"`
	TaskID     int64      `json:"taskId"`
	TaskName   string     `json:"taskName"`
	TaskColor  string     `json:"taskColor"`
	Date       string     `json:"date"`
	StartTime  string     `json:"startTime,omitempty"`
	EndTime    string     `json:"endTime,omitempty"`
	DurationMs int64      `json:"durationMs"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.TaskID <= 0 {
		return false
	}
	if te.Date == "" {
		return false
	}
	return te.DurationMs > 0
}

// EffectiveDate parses the entry's calendar date in the given location.
// The zero time is returned for an unparseable date.
func (te TimeEntry) EffectiveDate(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(DateLayout, te.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseDate parses a calendar date string in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// ParseClock parses a clock-time string onto the given calendar date.
func ParseClock(date time.Time, s string) (time.Time, error) {
	c, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location()), nil
}

// EndOfDay returns the last representable instant of the given date's day,
// 23:59:59.999, used for inclusive range filtering.
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999_000_000, date.Location())
}
