package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntry_IsValid(t *testing.T) {
	valid := TimeEntry{TaskID: 1, Date: "2024-01-15", DurationMs: 1000}
	assert.True(t, valid.IsValid())

	assert.False(t, TimeEntry{TaskID: 0, Date: "2024-01-15", DurationMs: 1000}.IsValid())
	assert.False(t, TimeEntry{TaskID: 1, Date: "", DurationMs: 1000}.IsValid())
	assert.False(t, TimeEntry{TaskID: 1, Date: "2024-01-15", DurationMs: 0}.IsValid())
}

func TestTimeEntry_EffectiveDate(t *testing.T) {
	entry := TimeEntry{Date: "2024-01-15"}

	date := entry.EffectiveDate(time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), date)

	assert.True(t, TimeEntry{Date: "garbage"}.EffectiveDate(time.UTC).IsZero())
}

func TestParseClock(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	clock, err := ParseClock(date, "17:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC), clock)

	_, err = ParseClock(date, "5:30pm")
	assert.Error(t, err)
}

func TestEndOfDay(t *testing.T) {
	date := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	end := EndOfDay(date)
	assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 999_000_000, time.UTC), end)

	// The next day's midnight is strictly after, so inclusive range checks
	// against EndOfDay exclude it.
	nextMidnight := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	assert.True(t, nextMidnight.After(end))
}

func TestDefaultTasks(t *testing.T) {
	tasks := DefaultTasks()

	require.Len(t, tasks, 5)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, "Sleep", tasks[0].Name)
	assert.Equal(t, int64(5), tasks[4].ID)
	for _, task := range tasks {
		assert.True(t, task.IsValid())
	}
}

func TestSession_IsValid(t *testing.T) {
	now := time.Now()
	task := &Task{ID: 2, Name: "Office", Color: "#4CAF50"}

	session := NewSession(task, 5_000, now.Add(-5*time.Second), now)
	assert.True(t, session.IsValid())
	assert.Equal(t, "Office", session.TaskName)
	assert.Equal(t, "#4CAF50", session.TaskColor)

	subSecond := NewSession(task, 999, now, now)
	assert.False(t, subSecond.IsValid())

	inverted := NewSession(task, 5_000, now, now.Add(-time.Second))
	assert.False(t, inverted.IsValid())
}
