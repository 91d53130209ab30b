package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timekeep/internal/export"
)

// newExportCommand creates the export command
func (r *RootCommand) newExportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the entry log to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "csv":
				return export.WriteCSV(cmd.OutOrStdout(), r.tracker.Entries())
			case "json":
				return export.WriteJSON(cmd.OutOrStdout(), r.tracker.Tasks(), r.tracker.Entries())
			default:
				return fmt.Errorf("unknown export format: %s (expected csv or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or json")
	return cmd
}
