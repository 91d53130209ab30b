package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timekeep/internal/domain"
	"timekeep/internal/duration"
)

// newListCommand creates the list command
func (r *RootCommand) newListCommand() *cobra.Command {
	var (
		fromStr  string
		toStr    string
		taskID   int64
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manual entries with optional date-range and task filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var from, to *time.Time
			loc := time.Now().Location()

			if fromStr != "" {
				t, err := domain.ParseDate(fromStr, loc)
				if err != nil {
					return fmt.Errorf("invalid --from date: %s", fromStr)
				}
				from = &t
			}
			if toStr != "" {
				t, err := domain.ParseDate(toStr, loc)
				if err != nil {
					return fmt.Errorf("invalid --to date: %s", toStr)
				}
				to = &t
			}

			var taskFilter *int64
			if taskID > 0 {
				taskFilter = &taskID
			}

			filtered := r.tracker.FilterEntries(from, to, taskFilter)
			if pageSize <= 0 {
				pageSize = r.config.Display.PageSize
			}

			pageEntries, totalPages := r.tracker.Stats().Paginate(filtered, page, pageSize)

			if len(filtered) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
				return nil
			}

			for _, entry := range pageEntries {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s  %-20s %5s-%-5s %8s  %s\n",
					entry.ID, entry.Date, entry.TaskName,
					entry.StartTime, entry.EndTime,
					duration.ShortHM(entry.DurationMs), entry.Notes)
			}

			total := r.tracker.Stats().TotalForPeriod(filtered)
			fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d, %d entries, %s total\n",
				page, totalPages, len(filtered), duration.ShortHM(total))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "Start of inclusive date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "End of inclusive date range (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&taskID, "task", 0, "Only entries for this task id")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Entries per page")
	return cmd
}
