package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeep/internal/config"
	"timekeep/internal/storage/sqlite"
	"timekeep/internal/tracker"
)

func setupTracker(t *testing.T) *tracker.Tracker {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	trk := tracker.New(store)
	require.NoError(t, trk.Init(context.Background()))
	return trk
}

// runCommand executes one CLI invocation against the given tracker and
// returns the captured output.
func runCommand(t *testing.T, trk *tracker.Tracker, args ...string) (string, error) {
	root := NewRootCommandWithTracker(trk, config.NewConfig())

	var buf bytes.Buffer
	cmd := root.Command()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestTaskAddCommand(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "task", "add", "Reading", "--color", "#2196F3")
	require.NoError(t, err)

	assert.Contains(t, out, "Added task 6: Reading (#2196F3)")
	assert.Len(t, trk.Tasks(), 6)
}

func TestTaskAddCommandRejectsEmptyName(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "task", "add", "   ")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Len(t, trk.Tasks(), 5)
}

func TestTaskListCommand(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "task", "list")
	require.NoError(t, err)

	for _, name := range []string{"Sleep", "Office", "Play", "Study", "Cook"} {
		assert.Contains(t, out, name)
	}
}

func TestSelectAndStatusCommands(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "select", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Timer running on Office")

	out, err = runCommand(t, trk, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "running on Office")
}

func TestSelectCommandUnknownTask(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "select", "42")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSelectCommandInvalidID(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "select", "two")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task id")
}

func TestStopCommandWhenNotRunning(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "Timer is not running.")
}

func TestStartCommandWithoutTask(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "No task selected")
}

func TestStatusCommandIdle(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No active task.")
}

func TestResetCommand(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "select", "1")
	require.NoError(t, err)

	out, err := runCommand(t, trk, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Timer reset.")
	assert.Nil(t, trk.CurrentTask())
}

func TestLogCommand(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "log",
		"--task", "2", "--date", "2024-01-15", "--start", "09:00", "--end", "17:30")
	require.NoError(t, err)

	assert.Contains(t, out, "Logged entry 1: Office on 2024-01-15 (8h 30m)")
	require.Len(t, trk.Entries(), 1)
}

func TestLogCommandRejectsMissingDuration(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "log", "--task", "2", "--date", "2024-01-15")

	require.Error(t, err)
	assert.Empty(t, trk.Entries())
}

func TestEditCommand(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "log", "--task", "2", "--date", "2024-01-15", "--hours", "2")
	require.NoError(t, err)

	out, err := runCommand(t, trk, "edit", "1",
		"--task", "3", "--date", "2024-01-16", "--hours", "1", "--minutes", "15")
	require.NoError(t, err)

	assert.Contains(t, out, "Updated entry 1: Play on 2024-01-16 (1h 15m)")
}

func TestEditCommandUnknownEntry(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "edit", "99",
		"--task", "1", "--date", "2024-01-15", "--hours", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Entry 99 not found, nothing changed.")
}

func TestDeleteCommand(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "log", "--task", "1", "--date", "2024-01-15", "--hours", "1")
	require.NoError(t, err)

	out, err := runCommand(t, trk, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted entry 1.")
	assert.Empty(t, trk.Entries())
}

func TestListCommand(t *testing.T) {
	trk := setupTracker(t)

	for _, date := range []string{"2024-01-14", "2024-01-15", "2024-02-01"} {
		_, err := runCommand(t, trk, "log", "--task", "2", "--date", date, "--hours", "1")
		require.NoError(t, err)
	}

	out, err := runCommand(t, trk, "list", "--from", "2024-01-01", "--to", "2024-01-31")
	require.NoError(t, err)

	assert.Contains(t, out, "2024-01-14")
	assert.Contains(t, out, "2024-01-15")
	assert.NotContains(t, out, "2024-02-01")
	assert.Contains(t, out, "Page 1 of 1, 2 entries, 2h 0m total")
}

func TestListCommandEmpty(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No entries found.")
}

func TestListCommandPagination(t *testing.T) {
	trk := setupTracker(t)

	for i := 0; i < 5; i++ {
		_, err := runCommand(t, trk, "log", "--task", "1", "--date", "2024-01-15", "--hours", "1")
		require.NoError(t, err)
	}

	out, err := runCommand(t, trk, "list", "--page", "2", "--page-size", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Page 2 of 3, 5 entries")
	assert.Equal(t, 2, strings.Count(out, "Sleep"))
}

func TestStatsCommand(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "log", "--task", "4", "--date", "2024-01-15", "--hours", "2")
	require.NoError(t, err)

	out, err := runCommand(t, trk, "stats")
	require.NoError(t, err)

	assert.Contains(t, out, "Study")
	assert.Contains(t, out, "2h 0m")
	assert.Contains(t, out, "02:00:00")
}

func TestHistoryCommand(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "log", "--task", "2", "--date", "2024-01-15", "--hours", "1")
	require.NoError(t, err)

	out, err := runCommand(t, trk, "history")
	require.NoError(t, err)

	assert.Contains(t, out, "manual")
	assert.Contains(t, out, "Office")
	assert.Contains(t, out, "1h 0m 0s")
}

func TestHistoryCommandEmpty(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No recorded time yet.")
}

func TestExportCommandCSV(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "log",
		"--task", "2", "--date", "2024-01-15", "--start", "09:00", "--end", "17:30")
	require.NoError(t, err)

	out, err := runCommand(t, trk, "export", "--format", "csv")
	require.NoError(t, err)

	assert.Contains(t, out, "Date,Task,Start Time,End Time,Duration (hours),Notes")
	assert.Contains(t, out, "2024-01-15,Office,09:00,17:30,8.50,")
}

func TestExportCommandJSON(t *testing.T) {
	trk := setupTracker(t)

	out, err := runCommand(t, trk, "export", "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"tasks"`)
	assert.Contains(t, out, `"totalEntries": 0`)
}

func TestExportCommandUnknownFormat(t *testing.T) {
	trk := setupTracker(t)

	_, err := runCommand(t, trk, "export", "--format", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}
