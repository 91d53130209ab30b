package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeep/internal/domain"
)

func sampleEntries() []*domain.TimeEntry {
	return []*domain.TimeEntry{
		{
			ID:         1,
			TaskID:     2,
			TaskName:   "Office",
			TaskColor:  "#4CAF50",
			Date:       "2024-01-15",
			StartTime:  "09:00",
			EndTime:    "17:30",
			DurationMs: 30_600_000,
			Notes:      "project work",
		},
		{
			ID:         2,
			TaskID:     1,
			TaskName:   "Sleep",
			TaskColor:  "#2196F3",
			Date:       "2024-01-16",
			DurationMs: 5_400_000,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, sampleEntries()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"Date", "Task", "Start Time", "End Time", "Duration (hours)", "Notes"}, records[0])
	assert.Equal(t, []string{"2024-01-15", "Office", "09:00", "17:30", "8.50", "project work"}, records[1])
	assert.Equal(t, []string{"2024-01-16", "Sleep", "", "", "1.50", ""}, records[2])
}

func TestWriteCSVEmptyLog(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	tasks := domain.DefaultTasks()
	entries := sampleEntries()

	require.NoError(t, WriteJSON(&buf, tasks, entries))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.False(t, doc.ExportDate.IsZero())
	assert.Len(t, doc.Tasks, 5)
	require.Len(t, doc.TimeEntries, 2)
	assert.Equal(t, 2, doc.TotalEntries)
	assert.Equal(t, int64(36_000_000), doc.TotalDurationMs)
	assert.Equal(t, "Office", doc.TimeEntries[0].TaskName)
}
