package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timekeep/internal/duration"
)

// newTaskCommand creates the task command group
func (r *RootCommand) newTaskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tracked tasks",
	}

	cmd.AddCommand(r.newTaskAddCommand(), r.newTaskListCommand())
	return cmd
}

// newTaskAddCommand creates the task add command
func (r *RootCommand) newTaskAddCommand() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := r.tracker.AddTask(cmd.Context(), args[0], color)
			if err != nil {
				return r.errors.Handle("add task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s (%s)\n", task.ID, task.Name, task.Color)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Task color as #RRGGBB")
	return cmd
}

// newTaskListCommand creates the task list command
func (r *RootCommand) newTaskListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered tasks with accumulated time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, task := range r.tracker.Tasks() {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-20s %-8s %s\n",
					task.ID, task.Name, task.Color, duration.ShortHM(task.AccumulatedMs))
			}
			return nil
		},
	}
}
