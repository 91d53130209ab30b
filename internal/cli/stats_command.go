package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timekeep/internal/duration"
	"timekeep/internal/stats"
)

// newStatsCommand creates the stats command
func (r *RootCommand) newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show recomputed per-task totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := r.tracker.Stats().PerTaskTotals(cmd.Context())
			if err != nil {
				return r.errors.Handle("compute stats", err)
			}

			var grand int64
			for _, tt := range totals {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", tt.Task.Name, duration.ShortHM(tt.TotalMs))
				grand += tt.TotalMs
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", "Total", duration.Clock(grand))
			return nil
		},
	}
}

// newHistoryCommand creates the history command
func (r *RootCommand) newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the merged manual/timer timeline, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				limit = r.config.Timer.HistoryLimit
			}

			items, err := r.tracker.Stats().HistoryFeed(cmd.Context(), limit)
			if err != nil {
				return r.errors.Handle("build history", err)
			}

			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded time yet.")
				return nil
			}

			for _, item := range items {
				origin := "manual"
				if item.Origin == stats.OriginTimer {
					origin = "timer"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-6s %-20s %s\n",
					item.Timestamp.Format(r.config.Display.TimeFormat),
					origin, item.TaskName, duration.LongHMS(item.DurationMs))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of timeline rows")
	return cmd
}
