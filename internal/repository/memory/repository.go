package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"assignment-tracker/internal/errors"
	"assignment-tracker/internal/repository/sqlite"
)

// Repository is an in-memory implementation of sqlite.Repository.
// It mirrors the persistent backend's semantics (auto-increment ids,
// not-found errors, folder-delete cascade, task listing order) so it
// can stand in for the real store in tests and ephemeral runs.
type Repository struct {
	mu           sync.Mutex
	folders      map[int64]*sqlite.Folder
	tasks        map[int64]*sqlite.Task
	nextFolderID int64
	nextTaskID   int64
}

// New creates an empty in-memory repository
func New() *Repository {
	return &Repository{
		folders:      make(map[int64]*sqlite.Folder),
		tasks:        make(map[int64]*sqlite.Task),
		nextFolderID: 1,
		nextTaskID:   1,
	}
}

// Close is a no-op for the in-memory backend
func (r *Repository) Close() error {
	return nil
}

// CreateFolder assigns the next folder id and stores a copy
func (r *Repository) CreateFolder(ctx context.Context, folder *sqlite.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder.ID = r.nextFolderID
	r.nextFolderID++

	stored := *folder
	r.folders[folder.ID] = &stored
	return nil
}

// GetFolder retrieves a folder by ID
func (r *Repository) GetFolder(ctx context.Context, id int64) (*sqlite.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder, ok := r.folders[id]
	if !ok {
		return nil, errors.NewNotFoundError("folder", fmt.Sprintf("%d", id))
	}
	copied := *folder
	return &copied, nil
}

// ListFolders retrieves all folders in creation order
func (r *Repository) ListFolders(ctx context.Context) ([]*sqlite.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var folders []*sqlite.Folder
	for _, folder := range r.folders {
		copied := *folder
		folders = append(folders, &copied)
	}
	sort.Slice(folders, func(i, j int) bool {
		return folders[i].ID < folders[j].ID
	})
	return folders, nil
}

// UpdateFolder replaces an existing folder
func (r *Repository) UpdateFolder(ctx context.Context, folder *sqlite.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.folders[folder.ID]; !ok {
		return errors.NewNotFoundError("folder", fmt.Sprintf("%d", folder.ID))
	}
	stored := *folder
	r.folders[folder.ID] = &stored
	return nil
}

// DeleteFolder removes a folder and cascades to its tasks
func (r *Repository) DeleteFolder(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.folders[id]; !ok {
		return errors.NewNotFoundError("folder", fmt.Sprintf("%d", id))
	}
	delete(r.folders, id)
	for taskID, task := range r.tasks {
		if task.FolderID == id {
			delete(r.tasks, taskID)
		}
	}
	return nil
}

// CreateTask assigns the next task id and stores a copy
func (r *Repository) CreateTask(ctx context.Context, task *sqlite.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.folders[task.FolderID]; !ok {
		return errors.NewStorageError("create task",
			fmt.Errorf("folder %d does not exist", task.FolderID))
	}

	task.ID = r.nextTaskID
	r.nextTaskID++

	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

// GetTask retrieves a task by ID
func (r *Repository) GetTask(ctx context.Context, id int64) (*sqlite.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	copied := *task
	return &copied, nil
}

// ListTasks retrieves all tasks in the standard listing order
func (r *Repository) ListTasks(ctx context.Context) ([]*sqlite.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortedTasks(func(*sqlite.Task) bool { return true }), nil
}

// ListTasksByFolder retrieves the tasks of one folder in the standard listing order
func (r *Repository) ListTasksByFolder(ctx context.Context, folderID int64) ([]*sqlite.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortedTasks(func(task *sqlite.Task) bool { return task.FolderID == folderID }), nil
}

// ListTasksWithReminders retrieves the tasks that have a reminder set
func (r *Repository) ListTasksWithReminders(ctx context.Context) ([]*sqlite.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tasks []*sqlite.Task
	for _, task := range r.tasks {
		if task.Reminder != nil {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Reminder.Before(*tasks[j].Reminder)
	})
	return tasks, nil
}

// UpdateTask replaces an existing task
func (r *Repository) UpdateTask(ctx context.Context, task *sqlite.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", task.ID))
	}
	if _, ok := r.folders[task.FolderID]; !ok {
		return errors.NewStorageError("update task",
			fmt.Errorf("folder %d does not exist", task.FolderID))
	}
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

// DeleteTask removes a task by ID
func (r *Repository) DeleteTask(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	delete(r.tasks, id)
	return nil
}

// sortedTasks returns copies of the matching tasks in the listing
// order shared with the persistent backend: incomplete before
// completed, dated before undated, then ascending due date and id.
// Callers must hold the mutex.
func (r *Repository) sortedTasks(match func(*sqlite.Task) bool) []*sqlite.Task {
	var tasks []*sqlite.Task
	for _, task := range r.tasks {
		if match(task) {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		aHasDue := a.DueDate != nil
		bHasDue := b.DueDate != nil
		if aHasDue != bHasDue {
			return aHasDue
		}
		if aHasDue && !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.Before(*b.DueDate)
		}
		return a.ID < b.ID
	})
	return tasks
}
