package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"timekeep/internal/domain"
	"timekeep/internal/duration"
)

// entryFlags binds the manual-entry form fields to cobra flags.
type entryFlags struct {
	taskID  int64
	date    string
	start   string
	end     string
	hours   int64
	minutes int64
	notes   string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.taskID, "task", 0, "Task id the entry belongs to")
	cmd.Flags().StringVar(&f.date, "date", "", "Calendar date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.start, "start", "", "Start clock time (HH:MM)")
	cmd.Flags().StringVar(&f.end, "end", "", "End clock time (HH:MM)")
	cmd.Flags().Int64Var(&f.hours, "hours", 0, "Duration hours (alternative to --start/--end)")
	cmd.Flags().Int64Var(&f.minutes, "minutes", 0, "Duration minutes (alternative to --start/--end)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-form notes")
}

func (f *entryFlags) input() domain.EntryInput {
	return domain.EntryInput{
		TaskID:    f.taskID,
		Date:      f.date,
		StartTime: f.start,
		EndTime:   f.end,
		Hours:     f.hours,
		Minutes:   f.minutes,
		Notes:     f.notes,
	}
}

// newLogCommand creates the log command
func (r *RootCommand) newLogCommand() *cobra.Command {
	flags := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a manual time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := r.tracker.AddEntry(cmd.Context(), flags.input())
			if err != nil {
				return r.errors.Handle("log entry", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %d: %s on %s (%s)\n",
				entry.ID, entry.TaskName, entry.Date, duration.ShortHM(entry.DurationMs))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// newEditCommand creates the edit command
func (r *RootCommand) newEditCommand() *cobra.Command {
	flags := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "edit <entry-id>",
		Short: "Rewrite a manual time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id: %s", args[0])
			}

			entry, err := r.tracker.UpdateEntry(cmd.Context(), id, flags.input())
			if err != nil {
				return r.errors.Handle("edit entry", err)
			}
			if entry == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry %d not found, nothing changed.\n", id)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d: %s on %s (%s)\n",
				entry.ID, entry.TaskName, entry.Date, duration.ShortHM(entry.DurationMs))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// newDeleteCommand creates the delete command
func (r *RootCommand) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a manual time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id: %s", args[0])
			}

			if err := r.tracker.DeleteEntry(cmd.Context(), id); err != nil {
				return r.errors.Handle("delete entry", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d.\n", id)
			return nil
		},
	}
}
