package sqlite

import "time"

// Folder represents a folder row.
type Folder struct {
	ID    int64
	Name  string
	Color string
}

// Task represents a task row.
// Timestamps are stored as RFC3339 text and completed/timer_active as
// integers; pointers allow NULL columns.
type Task struct {
	ID               int64
	Name             string
	FolderID         int64
	DueDate          *time.Time
	Reminder         *time.Time
	Completed        bool
	EstimatedMinutes *int64
	ActualMinutes    *int64
	TimerActive      bool
	TimerStartedAt   *time.Time
}
