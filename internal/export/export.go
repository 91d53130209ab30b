package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"time"

	"timekeep/internal/domain"
	"timekeep/internal/duration"
)

// csvHeader is the fixed column layout of the CSV export.
var csvHeader = []string{"Date", "Task", "Start Time", "End Time", "Duration (hours)", "Notes"}

// WriteCSV writes the manual entry log as CSV with durations rendered as
// decimal hours to two places. This is a pure read-only projection.
func WriteCSV(w io.Writer, entries []*domain.TimeEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, entry := range entries {
		record := []string{
			entry.Date,
			entry.TaskName,
			entry.StartTime,
			entry.EndTime,
			duration.DecimalHours(entry.DurationMs),
			entry.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Document is the JSON export envelope.
type Document struct {
	ExportDate      time.Time           `json:"exportDate"`
	Tasks           []*domain.Task      `json:"tasks"`
	TimeEntries     []*domain.TimeEntry `json:"timeEntries"`
	TotalEntries    int                 `json:"totalEntries"`
	TotalDurationMs int64               `json:"totalDuration"`
}

// WriteJSON writes the task registry and manual entry log as a single
// JSON document.
func WriteJSON(w io.Writer, tasks []*domain.Task, entries []*domain.TimeEntry) error {
	var total int64
	for _, entry := range entries {
		total += entry.DurationMs
	}

	doc := Document{
		ExportDate:      time.Now(),
		Tasks:           tasks,
		TimeEntries:     entries,
		TotalEntries:    len(entries),
		TotalDurationMs: total,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
