package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"timekeep/internal/duration"
	"timekeep/internal/timer"
)

// newSelectCommand creates the select command
func (r *RootCommand) newSelectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "select <task-id>",
		Short: "Select a task and start the timer on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id: %s", args[0])
			}

			if err := r.tracker.SelectTask(cmd.Context(), taskID); err != nil {
				return r.errors.Handle("select task", err)
			}

			task := r.tracker.CurrentTask()
			fmt.Fprintf(cmd.OutOrStdout(), "Timer running on %s\n", task.Name)
			return nil
		},
	}
}

// newStartCommand creates the start command
func (r *RootCommand) newStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Resume the stopped timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.tracker.CurrentTask() == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No task selected. Use 'timekeep select <task-id>' first.")
				return nil
			}

			if err := r.tracker.StartTimer(cmd.Context()); err != nil {
				return r.errors.Handle("start timer", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Timer running on %s\n", r.tracker.CurrentTask().Name)
			return nil
		},
	}
}

// newStopCommand creates the stop command
func (r *RootCommand) newStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer and record the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.tracker.TimerState() != timer.StateRunning {
				fmt.Fprintln(cmd.OutOrStdout(), "Timer is not running.")
				return nil
			}

			if err := r.tracker.StopTimer(cmd.Context()); err != nil {
				return r.errors.Handle("stop timer", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stopped at %s\n", duration.Clock(r.tracker.ElapsedMs()))
			return nil
		},
	}
}

// newResetCommand creates the reset command
func (r *RootCommand) newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the in-flight run and clear the selected task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.tracker.ResetTimer(cmd.Context()); err != nil {
				return r.errors.Handle("reset timer", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Timer reset.")
			return nil
		},
	}
}

// newStatusCommand creates the status command
func (r *RootCommand) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current timer state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			task := r.tracker.CurrentTask()
			if task == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No active task.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s at %s\n",
				r.tracker.TimerState(), task.Name, duration.Clock(r.tracker.ElapsedMs()))
			return nil
		},
	}
}
