package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"assignment-tracker/internal/store"
)

// TimerCommand handles the timer subcommands
type TimerCommand struct {
	store        *store.Store
	errorHandler *ErrorHandler
	out          io.Writer
	now          func() time.Time
}

// NewTimerCommand creates a new timer command handler
func NewTimerCommand(s *store.Store, out io.Writer) *TimerCommand {
	return &TimerCommand{
		store:        s,
		errorHandler: NewErrorHandler(),
		out:          out,
		now:          time.Now,
	}
}

// Start begins the countdown on a task, pausing any other running timer
func (c *TimerCommand) Start(ctx context.Context, idArg string) error {
	id, err := parseID(idArg, "task")
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.store.StartTimer(ctx, id); err != nil {
		return c.errorHandler.Handle("start timer", err)
	}

	fmt.Fprintf(c.out, "Timer started on task %d\n", id)
	return nil
}

// Pause stops the countdown on a task
func (c *TimerCommand) Pause(ctx context.Context, idArg string) error {
	id, err := parseID(idArg, "task")
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.store.PauseTimer(ctx, id); err != nil {
		return c.errorHandler.Handle("pause timer", err)
	}

	fmt.Fprintf(c.out, "Timer paused on task %d\n", id)
	return nil
}

// Extend adds minutes to a task's planned duration
func (c *TimerCommand) Extend(ctx context.Context, idArg string, minutes int) error {
	id, err := parseID(idArg, "task")
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.store.ExtendTimer(ctx, id, minutes); err != nil {
		return c.errorHandler.Handle("extend timer", err)
	}

	fmt.Fprintf(c.out, "Extended task %d by %d minutes\n", id, minutes)
	return nil
}

// Status prints the task with a running timer, if any
func (c *TimerCommand) Status(ctx context.Context) error {
	if err := c.store.RefreshTasks(ctx); err != nil {
		return c.errorHandler.Handle("show timer", err)
	}

	task, ok := c.store.ActiveTimerTask()
	if !ok {
		fmt.Fprintln(c.out, "No timer running")
		return nil
	}

	if remaining, hasEstimate := task.RemainingMinutes(c.now()); hasEstimate {
		fmt.Fprintf(c.out, "Timer running on task %d: %s (%d min left)\n", task.ID, task.Name, remaining)
	} else {
		fmt.Fprintf(c.out, "Timer running on task %d: %s\n", task.ID, task.Name)
	}
	return nil
}
