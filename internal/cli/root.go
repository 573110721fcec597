package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"assignment-tracker/internal/config"
	"assignment-tracker/internal/errors"
	"assignment-tracker/internal/store"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	store  *store.Store
	config *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(s *store.Store, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		store:  s,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "at",
		Short: "A command-line assignment and task tracker",
		Long: `Assignment Tracker (at) is a command-line application for managing
tasks in folders, with due dates, reminders, and a per-task work timer.

EXAMPLES:
  at folder list                           # List folders with open task counts
  at folder add "School" --color green     # Create a folder
  at task add 1 "Finish essay" --due 2026-09-05 --remind "2026-09-04 18:00"
  at task list                             # List all tasks
  at task done 3                           # Toggle completion of task 3
  at timer start 3                         # Start the countdown on task 3
  at timer extend 3 --minutes 10           # Add 10 minutes to the plan
  at focus plan                            # Summarize the open workload
  at focus next 2                          # Phase after 2 focus intervals

CONFIGURATION:
  Settings cascade: defaults, then ~/.at/config.toml, then environment.

  Database Configuration:
    AT_DB_DIR                              Database directory (default: ~/.at)
    AT_DB_FILENAME                         Database filename (default: at.db)

  Notification Configuration:
    AT_NOTIFY_ENABLED                      Enable desktop reminders (default: true)
    AT_NOTIFY_APP_NAME                     Notification app name
    AT_NOTIFY_LEAD_TIME                    Reminder scheduling lead time (default: 60s)

  Application Configuration:
    AT_APP_TIMEOUT                         Command timeout (default: 60s)
    AT_APP_VERBOSE                         Enable debug output (default: false)

GETTING HELP:
  at [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides os.Args for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.config.Application.Timeout)
}

func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(r.folderCommand())
	r.cmd.AddCommand(r.taskCommand())
	r.cmd.AddCommand(r.timerCommand())
	r.cmd.AddCommand(r.focusCommand())
}

func (r *RootCommand) folderCommand() *cobra.Command {
	folderCmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage folders",
	}

	folderCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List folders with open task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewFolderCommand(r.store, os.Stdout).List(ctx)
		},
	})

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			color, _ := cmd.Flags().GetString("color")
			return NewFolderCommand(r.store, os.Stdout).Add(ctx, args[0], color)
		},
	}
	addCmd.Flags().String("color", "", "Palette color for the folder")
	folderCmd.AddCommand(addCmd)

	renameCmd := &cobra.Command{
		Use:   "rename [id] [name]",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			color, _ := cmd.Flags().GetString("color")
			return NewFolderCommand(r.store, os.Stdout).Rename(ctx, args[0], args[1], color)
		},
	}
	renameCmd.Flags().String("color", "", "New palette color for the folder")
	folderCmd.AddCommand(renameCmd)

	folderCmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a folder and all its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewFolderCommand(r.store, os.Stdout).Delete(ctx, args[0])
		},
	})

	return folderCmd
}

func (r *RootCommand) taskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	listCmd := &cobra.Command{
		Use:   "list [folder-id]",
		Short: "List tasks, optionally for one folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			folderArg := ""
			if len(args) == 1 {
				folderArg = args[0]
			}
			return NewTaskCommand(r.store, os.Stdout).List(ctx, folderArg)
		},
	}
	taskCmd.AddCommand(listCmd)

	addCmd := &cobra.Command{
		Use:   "add [folder-id] [name]",
		Short: "Create a task in a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			opts := TaskOptions{}
			opts.Due, _ = cmd.Flags().GetString("due")
			opts.Remind, _ = cmd.Flags().GetString("remind")
			opts.Estimate, _ = cmd.Flags().GetInt("estimate")
			return NewTaskCommand(r.store, os.Stdout).Add(ctx, args[0], args[1], opts)
		},
	}
	addCmd.Flags().String("due", "", "Due date (yyyy-mm-dd)")
	addCmd.Flags().String("remind", "", "Reminder time (yyyy-mm-dd hh:mm)")
	addCmd.Flags().Int("estimate", 0, "Estimated minutes")
	taskCmd.AddCommand(addCmd)

	taskCmd.AddCommand(&cobra.Command{
		Use:   "done [id]",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewTaskCommand(r.store, os.Stdout).Done(ctx, args[0])
		},
	})

	taskCmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewTaskCommand(r.store, os.Stdout).Delete(ctx, args[0])
		},
	})

	return taskCmd
}

func (r *RootCommand) timerCommand() *cobra.Command {
	timerCmd := &cobra.Command{
		Use:   "timer",
		Short: "Control the per-task work timer",
	}

	timerCmd.AddCommand(&cobra.Command{
		Use:   "start [task-id]",
		Short: "Start the countdown on a task",
		Long:  "Start the countdown on a task. Any other running timer is paused first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewTimerCommand(r.store, os.Stdout).Start(ctx, args[0])
		},
	})

	timerCmd.AddCommand(&cobra.Command{
		Use:   "pause [task-id]",
		Short: "Pause the countdown on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewTimerCommand(r.store, os.Stdout).Pause(ctx, args[0])
		},
	})

	extendCmd := &cobra.Command{
		Use:   "extend [task-id]",
		Short: "Add minutes to a task's planned duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			minutes, _ := cmd.Flags().GetInt("minutes")
			return NewTimerCommand(r.store, os.Stdout).Extend(ctx, args[0], minutes)
		},
	}
	extendCmd.Flags().Int("minutes", 5, "Minutes to add")
	timerCmd.AddCommand(extendCmd)

	timerCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the running timer, if any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewTimerCommand(r.store, os.Stdout).Status(ctx)
		},
	})

	return timerCmd
}

func (r *RootCommand) focusCommand() *cobra.Command {
	focusCmd := &cobra.Command{
		Use:   "focus",
		Short: "Plan and pace focused work",
	}

	planCmd := &cobra.Command{
		Use:   "plan [folder-id]",
		Short: "Summarize the open workload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			folderArg := ""
			if len(args) == 1 {
				folderArg = args[0]
			}
			return NewFocusCommand(r.store, os.Stdout).Plan(ctx, folderArg)
		},
	}
	focusCmd.AddCommand(planCmd)

	focusCmd.AddCommand(&cobra.Command{
		Use:   "next [completed-focus-count]",
		Short: "Show the phase after n completed focus intervals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil || count < 0 {
				return errors.NewInvalidInputError("completed_focus_count", args[0], "must be a non-negative integer")
			}
			return NewFocusCommand(r.store, os.Stdout).Next(count)
		},
	})

	return focusCmd
}
