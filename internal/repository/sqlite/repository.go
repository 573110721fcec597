package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"assignment-tracker/internal/errors"
	"assignment-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// taskColumns is the canonical column list for task queries
const taskColumns = "id, name, folder_id, due_date, reminder, completed, estimated_minutes, actual_minutes, timer_active, timer_started_at"

// taskOrdering sorts incomplete before completed, dated before undated,
// then ascending by due date
const taskOrdering = `completed ASC,
	CASE WHEN due_date IS NULL OR due_date = '' THEN 1 ELSE 0 END ASC,
	due_date ASC,
	id ASC`

// Repository defines the interface for database operations
type Repository interface {
	// Folder operations
	CreateFolder(ctx context.Context, folder *Folder) error
	GetFolder(ctx context.Context, id int64) (*Folder, error)
	ListFolders(ctx context.Context) ([]*Folder, error)
	UpdateFolder(ctx context.Context, folder *Folder) error
	DeleteFolder(ctx context.Context, id int64) error

	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTasksByFolder(ctx context.Context, folderID int64) ([]*Task, error)
	ListTasksWithReminders(ctx context.Context) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// A single connection keeps the foreign_keys pragma in effect for
	// every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewStorageError("enable foreign keys", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateFolder creates a new folder
func (r *SQLiteRepository) CreateFolder(ctx context.Context, folder *Folder) error {
	query := `INSERT INTO folders (name, color) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, folder.Name, folder.Color)
	if err != nil {
		return err
	}
	folder.ID = id
	return nil
}

// GetFolder retrieves a folder by ID
func (r *SQLiteRepository) GetFolder(ctx context.Context, id int64) (*Folder, error) {
	query := `SELECT id, name, color FROM folders WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanFolder, "folder", fmt.Sprintf("%d", id), id)
}

// ListFolders retrieves all folders in creation order
func (r *SQLiteRepository) ListFolders(ctx context.Context) ([]*Folder, error) {
	query := `SELECT id, name, color FROM folders ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanFolders, "folders")
}

// UpdateFolder updates an existing folder
func (r *SQLiteRepository) UpdateFolder(ctx context.Context, folder *Folder) error {
	query := `UPDATE folders SET name = ?, color = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "folder", fmt.Sprintf("%d", folder.ID), folder.Name, folder.Color, folder.ID)
}

// DeleteFolder deletes a folder by ID.
// Child tasks are removed by the ON DELETE CASCADE constraint.
func (r *SQLiteRepository) DeleteFolder(ctx context.Context, id int64) error {
	query := `DELETE FROM folders WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "folder", fmt.Sprintf("%d", id), id)
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (name, folder_id, due_date, reminder, completed, estimated_minutes, actual_minutes, timer_active, timer_started_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Name,
		task.FolderID,
		FormatTimePtrForDB(task.DueDate),
		FormatTimePtrForDB(task.Reminder),
		BoolToInt(task.Completed),
		task.EstimatedMinutes,
		task.ActualMinutes,
		BoolToInt(task.TimerActive),
		FormatTimePtrForDB(task.TimerStartedAt),
	)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in the standard listing order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY ` + taskOrdering
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ListTasksByFolder retrieves the tasks of one folder in the standard listing order
func (r *SQLiteRepository) ListTasksByFolder(ctx context.Context, folderID int64) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE folder_id = ? ORDER BY ` + taskOrdering
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", folderID)
}

// ListTasksWithReminders retrieves the tasks that have a reminder set
func (r *SQLiteRepository) ListTasksWithReminders(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE reminder IS NOT NULL AND reminder != '' ORDER BY reminder ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask updates an existing task with full-replace semantics
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET name = ?, folder_id = ?, due_date = ?, reminder = ?, completed = ?, estimated_minutes = ?, actual_minutes = ?, timer_active = ?, timer_started_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Name,
		task.FolderID,
		FormatTimePtrForDB(task.DueDate),
		FormatTimePtrForDB(task.Reminder),
		BoolToInt(task.Completed),
		task.EstimatedMinutes,
		task.ActualMinutes,
		BoolToInt(task.TimerActive),
		FormatTimePtrForDB(task.TimerStartedAt),
		task.ID,
	)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
