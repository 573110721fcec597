package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanFolder scans a single folder from a database row
func ScanFolder(scanner Scanner) (*Folder, error) {
	folder := &Folder{}
	err := scanner.Scan(&folder.ID, &folder.Name, &folder.Color)
	if err != nil {
		return nil, err
	}
	return folder, nil
}

// ScanFolders scans multiple folders from database rows
func ScanFolders(rows Rows) ([]*Folder, error) {
	var folders []*Folder
	for rows.Next() {
		folder, err := ScanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return folders, nil
}

// ScanTask scans a single task from a database row.
// Timestamp columns arrive as RFC3339 text and completed/timer_active
// as integers; both are coerced to their Go representations here.
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var dueDate, reminder, timerStartedAt sql.NullString
	var estimated, actual sql.NullInt64
	var completed, timerActive int

	err := scanner.Scan(
		&task.ID,
		&task.Name,
		&task.FolderID,
		&dueDate,
		&reminder,
		&completed,
		&estimated,
		&actual,
		&timerActive,
		&timerStartedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Completed = completed != 0
	task.TimerActive = timerActive != 0

	if dueDate.Valid && dueDate.String != "" {
		t, err := ParseTimeFromDB(dueDate.String)
		if err != nil {
			return nil, err
		}
		task.DueDate = &t
	}
	if reminder.Valid && reminder.String != "" {
		t, err := ParseTimeFromDB(reminder.String)
		if err != nil {
			return nil, err
		}
		task.Reminder = &t
	}
	if timerStartedAt.Valid && timerStartedAt.String != "" {
		t, err := ParseTimeFromDB(timerStartedAt.String)
		if err != nil {
			return nil, err
		}
		task.TimerStartedAt = &t
	}
	if estimated.Valid {
		v := estimated.Int64
		task.EstimatedMinutes = &v
	}
	if actual.Valid {
		v := actual.Int64
		task.ActualMinutes = &v
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
