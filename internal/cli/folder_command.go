package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"assignment-tracker/internal/domain"
	"assignment-tracker/internal/errors"
	"assignment-tracker/internal/store"
)

// FolderCommand handles the folder subcommands
type FolderCommand struct {
	store        *store.Store
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewFolderCommand creates a new folder command handler
func NewFolderCommand(s *store.Store, out io.Writer) *FolderCommand {
	return &FolderCommand{
		store:        s,
		errorHandler: NewErrorHandler(),
		out:          out,
	}
}

// List prints every folder with its open task count
func (c *FolderCommand) List(ctx context.Context) error {
	if err := c.store.RefreshFolders(ctx); err != nil {
		return c.errorHandler.Handle("list folders", err)
	}
	if err := c.store.RefreshTasks(ctx); err != nil {
		return c.errorHandler.Handle("list folders", err)
	}

	counts := c.store.OpenTaskCounts()
	for _, folder := range c.store.Folders() {
		fmt.Fprintf(c.out, "%d\t%s (%s)\t%d open\n", folder.ID, folder.Name, folder.Color, counts[folder.ID])
	}
	return nil
}

// Add creates a new folder
func (c *FolderCommand) Add(ctx context.Context, name, color string) error {
	folder, err := c.store.CreateFolder(ctx, name, color)
	if err != nil {
		return c.errorHandler.Handle("add folder", err)
	}

	fmt.Fprintf(c.out, "Added folder %q (%s)\n", folder.Name, folder.Color)
	return nil
}

// Rename changes a folder's name and optionally its color
func (c *FolderCommand) Rename(ctx context.Context, idArg, name, color string) error {
	id, err := parseID(idArg, "folder")
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	folder, ok := c.folderByID(id)
	if !ok {
		return c.errorHandler.HandleSimple(errors.NewNotFoundError("folder", idArg))
	}

	folder.Name = strings.TrimSpace(name)
	if color != "" {
		folder.Color = color
	}
	if err := c.store.UpdateFolder(ctx, folder); err != nil {
		return c.errorHandler.Handle("rename folder", err)
	}

	fmt.Fprintf(c.out, "Renamed folder %d to %q\n", id, folder.Name)
	return nil
}

// Delete removes a folder and all its tasks
func (c *FolderCommand) Delete(ctx context.Context, idArg string) error {
	id, err := parseID(idArg, "folder")
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.store.DeleteFolder(ctx, id); err != nil {
		return c.errorHandler.Handle("delete folder", err)
	}

	fmt.Fprintf(c.out, "Deleted folder %d and its tasks\n", id)
	return nil
}

func (c *FolderCommand) folderByID(id int64) (domain.Folder, bool) {
	for _, folder := range c.store.Folders() {
		if folder.ID == id {
			return folder, true
		}
	}
	return domain.Folder{}, false
}

func parseID(arg, resource string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError(resource+"_id", arg, "must be a positive integer")
	}
	return id, nil
}
