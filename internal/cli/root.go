package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"timekeep/internal/config"
	"timekeep/internal/logging"
	"timekeep/internal/storage/sqlite"
	"timekeep/internal/tracker"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	tracker *tracker.Tracker
	config  *config.Config
	errors  *ErrorHandler
	close   func() error
}

// NewRootCommand creates the root cobra command with all subcommands
// attached. The durable store is opened lazily in PersistentPreRunE so
// that flag overrides apply before the store path is resolved.
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
		errors: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "timekeep",
		Short: "A personal time tracker",
		Long: `Timekeep tracks time you spend on named tasks.

Run a live timer against a task, or log time manually, then review
aggregated statistics and a filterable history.

EXAMPLES:
  timekeep task add "Reading" --color "#2196F3"   # Register a new task
  timekeep select 2                               # Start the timer on task 2
  timekeep status                                 # Show the running timer
  timekeep stop                                   # Stop and record the session
  timekeep log --task 2 --date 2024-01-15 \
     --start 09:00 --end 17:30                    # Log time manually
  timekeep list --from 2024-01-01 --to 2024-01-31 # Filter the entry history
  timekeep stats                                  # Per-task totals
  timekeep export --format csv > entries.csv      # Export the entry log
  timekeep watch                                  # Live dashboard

CONFIGURATION:
  Priority order: command-line flags > environment variables > defaults

    TK_STORE_DIR               Store directory (default: ~/.timekeep)
    TK_STORE_FILENAME          Store filename (default: timekeep.db)
    TK_TIMER_TICK_INTERVAL     Dashboard tick interval (default: 1s)
    TK_TIMER_HISTORY_LIMIT     History feed length (default: 10)
    TK_DISPLAY_TIME_FORMAT     Time format (default: 2006-01-02 15:04:05)
    TK_DISPLAY_PAGE_SIZE       List page size (default: 10)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.teardown()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// NewRootCommandWithTracker creates a root command over an already
// initialized tracker. Used by tests and embedding callers.
func NewRootCommandWithTracker(trk *tracker.Tracker, cfg *config.Config) *RootCommand {
	root := NewRootCommand(cfg)
	root.tracker = trk
	root.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		applyOverrides(cfg, cmd)
		return nil
	}
	root.cmd.PersistentPostRunE = nil
	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with the given context.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command exposes the underlying cobra command.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// setup applies flag overrides, opens the durable store and initializes
// the tracker.
func (r *RootCommand) setup(cmd *cobra.Command) error {
	applyOverrides(r.config, cmd)
	if err := r.config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.config.Storage.Dir, os.FileMode(r.config.Storage.DirPermissions)); err != nil {
		return err
	}

	logging.Debugf("opening store at %s\n", r.config.GetStorePath())
	store, err := sqlite.New(r.config.GetStorePath())
	if err != nil {
		return err
	}
	r.close = store.Close

	trk := tracker.NewWithConfig(store, r.config)
	if err := trk.Init(cmd.Context()); err != nil {
		store.Close()
		return err
	}
	r.tracker = trk
	return nil
}

// teardown closes the durable store.
func (r *RootCommand) teardown() error {
	if r.close != nil {
		return r.close()
	}
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("store-dir", "", "Store directory (overrides TK_STORE_DIR)")
	flags.String("store-filename", "", "Store filename (overrides TK_STORE_FILENAME)")
	flags.Duration("tick-interval", 0, "Dashboard tick interval (overrides TK_TIMER_TICK_INTERVAL)")
	flags.Int("history-limit", 0, "History feed length (overrides TK_TIMER_HISTORY_LIMIT)")
}

// addSubcommands attaches every subcommand to the root
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newTaskCommand(),
		r.newSelectCommand(),
		r.newStartCommand(),
		r.newStopCommand(),
		r.newResetCommand(),
		r.newStatusCommand(),
		r.newLogCommand(),
		r.newEditCommand(),
		r.newDeleteCommand(),
		r.newListCommand(),
		r.newStatsCommand(),
		r.newHistoryCommand(),
		r.newExportCommand(),
		r.newWatchCommand(),
	)
}

// applyOverrides reads changed global flags into the configuration.
func applyOverrides(cfg *config.Config, cmd *cobra.Command) {
	overrides := &config.ConfigOverrides{}
	flags := cmd.Flags()

	if flags.Changed("store-dir") {
		v, _ := flags.GetString("store-dir")
		overrides.StoreDir = &v
	}
	if flags.Changed("store-filename") {
		v, _ := flags.GetString("store-filename")
		overrides.StoreFilename = &v
	}
	if flags.Changed("tick-interval") {
		v, _ := flags.GetDuration("tick-interval")
		overrides.TickInterval = &v
	}
	if flags.Changed("history-limit") {
		v, _ := flags.GetInt("history-limit")
		overrides.HistoryLimit = &v
	}

	config.ApplyOverrides(cfg, overrides)
}
