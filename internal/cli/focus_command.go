package cli

import (
	"context"
	"fmt"
	"io"

	"assignment-tracker/internal/session"
	"assignment-tracker/internal/store"
)

// FocusCommand handles the focus subcommands
type FocusCommand struct {
	store        *store.Store
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewFocusCommand creates a new focus command handler
func NewFocusCommand(s *store.Store, out io.Writer) *FocusCommand {
	return &FocusCommand{
		store:        s,
		errorHandler: NewErrorHandler(),
		out:          out,
	}
}

// Plan prints the open workload summary, optionally for one folder
func (c *FocusCommand) Plan(ctx context.Context, folderArg string) error {
	if err := c.store.RefreshTasks(ctx); err != nil {
		return c.errorHandler.Handle("summarize plan", err)
	}

	tasks := c.store.Tasks()
	if folderArg != "" {
		folderID, err := parseID(folderArg, "folder")
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		tasks = c.store.TasksByFolder(folderID)
	}

	fmt.Fprintln(c.out, session.Summarize(tasks).String())
	return nil
}

// Next prints the phase that follows the given number of completed
// focus intervals
func (c *FocusCommand) Next(completedFocus int) error {
	phase := session.NextPhase(completedFocus)
	fmt.Fprintf(c.out, "Next: %s (%d min)\n", phase, phase.Minutes())
	return nil
}
