package domain

import (
	"assignment-tracker/internal/repository/sqlite"
)

// FolderMapper handles conversion between domain and database Folder models.
type FolderMapper struct{}

// NewFolderMapper creates a new FolderMapper instance.
func NewFolderMapper() *FolderMapper {
	return &FolderMapper{}
}

// ToDatabase converts a domain Folder to a database Folder.
func (m *FolderMapper) ToDatabase(domainFolder Folder) sqlite.Folder {
	return sqlite.Folder{
		ID:    domainFolder.ID,
		Name:  domainFolder.Name,
		Color: domainFolder.Color,
	}
}

// FromDatabase converts a database Folder to a domain Folder.
func (m *FolderMapper) FromDatabase(dbFolder sqlite.Folder) Folder {
	return Folder{
		ID:    dbFolder.ID,
		Name:  dbFolder.Name,
		Color: dbFolder.Color,
	}
}

// FromDatabaseSlice converts a slice of database Folders to domain Folders.
func (m *FolderMapper) FromDatabaseSlice(dbFolders []*sqlite.Folder) []Folder {
	domainFolders := make([]Folder, len(dbFolders))
	for i, folder := range dbFolders {
		domainFolders[i] = m.FromDatabase(*folder)
	}
	return domainFolders
}

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:               domainTask.ID,
		Name:             domainTask.Name,
		FolderID:         domainTask.FolderID,
		DueDate:          domainTask.DueDate,
		Reminder:         domainTask.Reminder,
		Completed:        domainTask.Completed,
		EstimatedMinutes: intPtrTo64(domainTask.EstimatedMinutes),
		ActualMinutes:    intPtrTo64(domainTask.ActualMinutes),
		TimerActive:      domainTask.TimerActive,
		TimerStartedAt:   domainTask.TimerStartedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:               dbTask.ID,
		Name:             dbTask.Name,
		FolderID:         dbTask.FolderID,
		DueDate:          dbTask.DueDate,
		Reminder:         dbTask.Reminder,
		Completed:        dbTask.Completed,
		EstimatedMinutes: int64PtrToInt(dbTask.EstimatedMinutes),
		ActualMinutes:    int64PtrToInt(dbTask.ActualMinutes),
		TimerActive:      dbTask.TimerActive,
		TimerStartedAt:   dbTask.TimerStartedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Folder *FolderMapper
	Task   *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Folder: NewFolderMapper(),
		Task:   NewTaskMapper(),
	}
}

func intPtrTo64(v *int) *int64 {
	if v == nil {
		return nil
	}
	converted := int64(*v)
	return &converted
}

func int64PtrToInt(v *int64) *int {
	if v == nil {
		return nil
	}
	converted := int(*v)
	return &converted
}
