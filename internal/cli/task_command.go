package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"assignment-tracker/internal/domain"
	"assignment-tracker/internal/store"
)

// TaskOptions carries the optional attributes of a task add or edit.
type TaskOptions struct {
	Due      string // yyyy-mm-dd
	Remind   string // yyyy-mm-dd hh:mm
	Estimate int    // minutes, 0 means unset
}

// TaskCommand handles the task subcommands
type TaskCommand struct {
	store        *store.Store
	errorHandler *ErrorHandler
	out          io.Writer
	now          func() time.Time
}

// NewTaskCommand creates a new task command handler
func NewTaskCommand(s *store.Store, out io.Writer) *TaskCommand {
	return &TaskCommand{
		store:        s,
		errorHandler: NewErrorHandler(),
		out:          out,
		now:          time.Now,
	}
}

// List prints tasks, optionally restricted to one folder id
func (c *TaskCommand) List(ctx context.Context, folderArg string) error {
	if err := c.store.RefreshTasks(ctx); err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	tasks := c.store.Tasks()
	if folderArg != "" {
		folderID, err := parseID(folderArg, "folder")
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		tasks = c.store.TasksByFolder(folderID)
	}

	now := c.now()
	for _, task := range tasks {
		fmt.Fprintln(c.out, formatTaskLine(task, now))
	}
	return nil
}

// Add creates a new task in the given folder
func (c *TaskCommand) Add(ctx context.Context, folderArg, name string, opts TaskOptions) error {
	folderID, err := parseID(folderArg, "folder")
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task := domain.NewTask(name, folderID)
	if err := applyTaskOptions(&task, opts); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	created, err := c.store.CreateTask(ctx, task)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.out, "Added task %d: %s\n", created.ID, created.Name)
	return nil
}

// Done toggles a task's completed flag
func (c *TaskCommand) Done(ctx context.Context, idArg string) error {
	id, err := parseID(idArg, "task")
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.store.ToggleTaskCompletion(ctx, id); err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	fmt.Fprintf(c.out, "Toggled task %d\n", id)
	return nil
}

// Delete removes a task
func (c *TaskCommand) Delete(ctx context.Context, idArg string) error {
	id, err := parseID(idArg, "task")
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.store.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintf(c.out, "Deleted task %d\n", id)
	return nil
}

func applyTaskOptions(task *domain.Task, opts TaskOptions) error {
	if opts.Due != "" {
		due, err := time.ParseInLocation(domain.DateLayout, opts.Due, time.Local)
		if err != nil {
			return fmt.Errorf("invalid due date %q: expected %s", opts.Due, domain.DateLayout)
		}
		task.DueDate = &due
	}
	if opts.Remind != "" {
		reminder, err := domain.ParseReminder(opts.Remind, time.Local)
		if err != nil {
			return fmt.Errorf("invalid reminder %q: expected %s", opts.Remind, domain.DateTimeLayout)
		}
		task.Reminder = &reminder
	}
	if opts.Estimate > 0 {
		estimate := opts.Estimate
		task.EstimatedMinutes = &estimate
	}
	return nil
}

func formatTaskLine(task domain.Task, now time.Time) string {
	var b strings.Builder

	mark := " "
	if task.Completed {
		mark = "x"
	}
	b.WriteString("[" + mark + "] ")
	b.WriteString(strconv.FormatInt(task.ID, 10))
	b.WriteString("\t")
	b.WriteString(task.Name)

	switch task.DueStatusAt(now) {
	case domain.DueStatusOverdue:
		b.WriteString("\tdue " + domain.FormatDuePtr(task.DueDate) + " (overdue)")
	case domain.DueStatusToday:
		b.WriteString("\tdue today")
	case domain.DueStatusFuture:
		b.WriteString("\tdue " + domain.FormatDuePtr(task.DueDate))
	}

	if task.TimerActive {
		if remaining, ok := task.RemainingMinutes(now); ok {
			b.WriteString("\t" + strconv.Itoa(remaining) + " min left")
		} else {
			b.WriteString("\ttimer running")
		}
	}

	return b.String()
}
