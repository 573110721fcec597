package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	dbPath := filepath.Join(t.TempDir(), "at.db")

	repo, err := New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() { repo.Close() })
	return repo
}

func createTestFolder(t *testing.T, repo *SQLiteRepository) *Folder {
	folder := &Folder{Name: "School", Color: "blue"}
	require.NoError(t, repo.CreateFolder(context.Background(), folder))
	return folder
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCreateFolder(t *testing.T) {
	repo := setupTestDB(t)

	folder := &Folder{Name: "Work", Color: "red"}
	err := repo.CreateFolder(context.Background(), folder)
	require.NoError(t, err)
	assert.Greater(t, folder.ID, int64(0))

	retrieved, err := repo.GetFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	assert.Equal(t, folder.ID, retrieved.ID)
	assert.Equal(t, "Work", retrieved.Name)
	assert.Equal(t, "red", retrieved.Color)
}

func TestGetFolder_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetFolder(context.Background(), 999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListFolders(t *testing.T) {
	repo := setupTestDB(t)

	names := []string{"School", "Work", "Home"}
	for _, name := range names {
		require.NoError(t, repo.CreateFolder(context.Background(), &Folder{Name: name, Color: "blue"}))
	}

	folders, err := repo.ListFolders(context.Background())
	require.NoError(t, err)
	require.Len(t, folders, 3)

	// Creation order
	for i, name := range names {
		assert.Equal(t, name, folders[i].Name)
	}
}

func TestUpdateFolder(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)

	folder.Name = "University"
	folder.Color = "purple"
	require.NoError(t, repo.UpdateFolder(context.Background(), folder))

	retrieved, err := repo.GetFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	assert.Equal(t, "University", retrieved.Name)
	assert.Equal(t, "purple", retrieved.Color)

	// Updating a non-existent folder reports not found
	err = repo.UpdateFolder(context.Background(), &Folder{ID: 999, Name: "Ghost", Color: "blue"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteFolder_CascadesToTasks(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)
	other := &Folder{Name: "Work", Color: "red"}
	require.NoError(t, repo.CreateFolder(context.Background(), other))

	for _, name := range []string{"Essay", "Reading", "Quiz"} {
		task := &Task{Name: name, FolderID: folder.ID}
		require.NoError(t, repo.CreateTask(context.Background(), task))
	}
	kept := &Task{Name: "Report", FolderID: other.ID}
	require.NoError(t, repo.CreateTask(context.Background(), kept))

	require.NoError(t, repo.DeleteFolder(context.Background(), folder.ID))

	_, err := repo.GetFolder(context.Background(), folder.ID)
	assert.Error(t, err)

	// Child tasks are gone, tasks in other folders survive
	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, kept.ID, tasks[0].ID)
}

func TestDeleteFolder_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.DeleteFolder(context.Background(), 999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateTask_RoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)

	due := time.Date(2024, 6, 20, 17, 0, 0, 0, time.UTC)
	reminder := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)
	started := time.Date(2024, 6, 19, 14, 30, 0, 0, time.UTC)

	task := &Task{
		Name:             "Essay",
		FolderID:         folder.ID,
		DueDate:          timePtr(due),
		Reminder:         timePtr(reminder),
		EstimatedMinutes: int64Ptr(90),
		ActualMinutes:    int64Ptr(25),
		TimerActive:      true,
		TimerStartedAt:   timePtr(started),
	}

	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)
	assert.Greater(t, task.ID, int64(0))

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, retrieved.ID)
	assert.Equal(t, "Essay", retrieved.Name)
	assert.Equal(t, folder.ID, retrieved.FolderID)
	assert.False(t, retrieved.Completed) // default on creation
	require.NotNil(t, retrieved.DueDate)
	assert.Equal(t, due.Unix(), retrieved.DueDate.Unix())
	require.NotNil(t, retrieved.Reminder)
	assert.Equal(t, reminder.Unix(), retrieved.Reminder.Unix())
	require.NotNil(t, retrieved.EstimatedMinutes)
	assert.Equal(t, int64(90), *retrieved.EstimatedMinutes)
	require.NotNil(t, retrieved.ActualMinutes)
	assert.Equal(t, int64(25), *retrieved.ActualMinutes)
	assert.True(t, retrieved.TimerActive)
	require.NotNil(t, retrieved.TimerStartedAt)
	assert.Equal(t, started.Unix(), retrieved.TimerStartedAt.Unix())
}

func TestCreateTask_MinimalFields(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)

	task := &Task{Name: "Reading", FolderID: folder.ID}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved.DueDate)
	assert.Nil(t, retrieved.Reminder)
	assert.Nil(t, retrieved.EstimatedMinutes)
	assert.Nil(t, retrieved.ActualMinutes)
	assert.False(t, retrieved.TimerActive)
	assert.Nil(t, retrieved.TimerStartedAt)
}

func TestCreateTask_ForeignKeyViolation(t *testing.T) {
	repo := setupTestDB(t)

	task := &Task{Name: "Orphan", FolderID: 999}
	err := repo.CreateTask(context.Background(), task)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "storage")
}

func TestListTasks_Ordering(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)

	// A: incomplete with a later due date, B: incomplete without a due
	// date, C: completed with the earliest due date. Expected: A, B, C.
	taskA := &Task{Name: "A", FolderID: folder.ID, DueDate: timePtr(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))}
	taskB := &Task{Name: "B", FolderID: folder.ID}
	taskC := &Task{Name: "C", FolderID: folder.ID, DueDate: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), Completed: true}

	for _, task := range []*Task{taskB, taskC, taskA} {
		require.NoError(t, repo.CreateTask(context.Background(), task))
	}

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "A", tasks[0].Name)
	assert.Equal(t, "B", tasks[1].Name)
	assert.Equal(t, "C", tasks[2].Name)
}

func TestListTasks_DueDatesAscendingWithinGroup(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)

	dues := []time.Time{
		time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	for i, due := range dues {
		task := &Task{Name: string(rune('a' + i)), FolderID: folder.ID, DueDate: timePtr(due)}
		require.NoError(t, repo.CreateTask(context.Background(), task))
	}

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i := 1; i < len(tasks); i++ {
		assert.True(t, tasks[i-1].DueDate.Before(*tasks[i].DueDate))
	}
}

func TestListTasksByFolder(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)
	other := &Folder{Name: "Work", Color: "red"}
	require.NoError(t, repo.CreateFolder(context.Background(), other))

	require.NoError(t, repo.CreateTask(context.Background(), &Task{Name: "Essay", FolderID: folder.ID}))
	require.NoError(t, repo.CreateTask(context.Background(), &Task{Name: "Report", FolderID: other.ID}))

	tasks, err := repo.ListTasksByFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Essay", tasks[0].Name)

	empty, err := repo.ListTasksByFolder(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListTasksWithReminders(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)

	reminder := time.Now().Add(time.Hour)
	withReminder := &Task{Name: "Essay", FolderID: folder.ID, Reminder: timePtr(reminder)}
	withoutReminder := &Task{Name: "Reading", FolderID: folder.ID}
	require.NoError(t, repo.CreateTask(context.Background(), withReminder))
	require.NoError(t, repo.CreateTask(context.Background(), withoutReminder))

	tasks, err := repo.ListTasksWithReminders(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, withReminder.ID, tasks[0].ID)
	require.NotNil(t, tasks[0].Reminder)
}

func TestUpdateTask_FullReplace(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)
	other := &Folder{Name: "Work", Color: "red"}
	require.NoError(t, repo.CreateFolder(context.Background(), other))

	due := time.Date(2024, 6, 20, 17, 0, 0, 0, time.UTC)
	task := &Task{Name: "Essay", FolderID: folder.ID, DueDate: timePtr(due)}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	task.Name = "Final essay"
	task.FolderID = other.ID
	task.DueDate = nil
	task.Completed = true
	task.EstimatedMinutes = int64Ptr(60)
	require.NoError(t, repo.UpdateTask(context.Background(), task))

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final essay", retrieved.Name)
	assert.Equal(t, other.ID, retrieved.FolderID)
	assert.Nil(t, retrieved.DueDate) // full replace clears dropped fields
	assert.True(t, retrieved.Completed)
	require.NotNil(t, retrieved.EstimatedMinutes)
	assert.Equal(t, int64(60), *retrieved.EstimatedMinutes)

	err = repo.UpdateTask(context.Background(), &Task{ID: 999, Name: "Ghost", FolderID: folder.ID})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteTask(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)

	task := &Task{Name: "Essay", FolderID: folder.ID}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	require.NoError(t, repo.DeleteTask(context.Background(), task.ID))

	_, err := repo.GetTask(context.Background(), task.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = repo.DeleteTask(context.Background(), 999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTimeFormatting(t *testing.T) {
	repo := setupTestDB(t)
	folder := createTestFolder(t, repo)

	due := time.Date(2025, 6, 23, 11, 47, 24, 890799237, time.UTC)
	task := &Task{Name: "Essay", FolderID: folder.ID, DueDate: timePtr(due)}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)

	// Stored as RFC3339 with second precision
	require.NotNil(t, retrieved.DueDate)
	assert.Equal(t, "2025-06-23T11:47:24Z", retrieved.DueDate.Format(time.RFC3339))
	assert.Equal(t, due.Unix(), retrieved.DueDate.Unix())
}
