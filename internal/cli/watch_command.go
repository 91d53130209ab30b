package cli

import (
	"github.com/spf13/cobra"

	"timekeep/internal/tui"
)

// newWatchCommand creates the live dashboard command.
func (r *RootCommand) newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Open the live tracking dashboard",
		Long: `Open a full-screen dashboard that updates every tick.

The dashboard shows the running clock, per-task totals and today's
sessions. Timer state is checkpointed on every tick, so quitting the
dashboard never loses recorded time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tui.Run(cmd.Context(), r.tracker, r.config); err != nil {
				return r.errors.Handle("watch", err)
			}
			return nil
		},
	}
}
