// Package store holds the in-memory working copy of folders and tasks
// and coordinates every mutation: validate, persist, reload, reconcile
// reminders, then tell subscribers. The repository stays the source of
// truth; the cached slices are refreshed from it after each write, so a
// failed write leaves the published state untouched.
package store

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"assignment-tracker/internal/domain"
	"assignment-tracker/internal/errors"
	"assignment-tracker/internal/notify"
	"assignment-tracker/internal/repository/sqlite"
	"assignment-tracker/internal/validation"
)

// Store is the single authority over domain state. All reads and
// mutations go through it; callers never touch the repository directly.
//
// Two locks: writeMu serializes each mutation end-to-end (the whole
// read-modify-write, including the repository call), mu guards the
// published slices and the subscriber map. Holding only mu for reads
// keeps them cheap while a slow write is in flight.
type Store struct {
	repo            sqlite.Repository
	scheduler       *notify.Scheduler
	mapper          *domain.Mapper
	folderValidator *validation.FolderValidator
	taskValidator   *validation.TaskValidator
	now             func() time.Time

	writeMu sync.Mutex

	mu          sync.Mutex
	folders     []domain.Folder
	tasks       []domain.Task
	subscribers map[int]func()
	nextSubID   int
}

// New creates a store over the given repository and reminder scheduler.
// Call RefreshFolders and RefreshTasks before first use.
func New(repo sqlite.Repository, scheduler *notify.Scheduler) *Store {
	return &Store{
		repo:            repo,
		scheduler:       scheduler,
		mapper:          domain.NewMapper(),
		folderValidator: validation.NewFolderValidator(),
		taskValidator:   validation.NewTaskValidator(),
		now:             time.Now,
		subscribers:     make(map[int]func()),
	}
}

// Subscribe registers a callback invoked after every successful
// mutation. The returned function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) notifySubscribers() {
	s.mu.Lock()
	callbacks := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// Folders returns a copy of the cached folder list.
func (s *Store) Folders() []domain.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Folder(nil), s.folders...)
}

// Tasks returns a copy of the cached task list, in repository order.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Task(nil), s.tasks...)
}

// TasksByFolder filters the cached task list to one folder, preserving
// order. The repository is not consulted.
func (s *Store) TasksByFolder(folderID int64) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var filtered []domain.Task
	for _, task := range s.tasks {
		if task.FolderID == folderID {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// ActiveTimerTask returns the task with a running timer, if any. The
// answer is derived from the cached tasks, never stored separately.
func (s *Store) ActiveTimerTask() (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.TimerActive {
			return task, true
		}
	}
	return domain.Task{}, false
}

// RefreshFolders reloads the folder list from the repository. An empty
// repository is bootstrapped with the default folder so the app never
// presents a folder-less state.
func (s *Store) RefreshFolders(ctx context.Context) error {
	dbFolders, err := s.repo.ListFolders(ctx)
	if err != nil {
		return err
	}

	if len(dbFolders) == 0 {
		def := s.mapper.Folder.ToDatabase(domain.NewFolder(domain.DefaultFolderName, domain.DefaultColor))
		if err := s.repo.CreateFolder(ctx, &def); err != nil {
			return err
		}
		dbFolders, err = s.repo.ListFolders(ctx)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.folders = s.mapper.Folder.FromDatabaseSlice(dbFolders)
	s.mu.Unlock()
	return nil
}

// RefreshTasks reloads the task list from the repository.
func (s *Store) RefreshTasks(ctx context.Context) error {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tasks = s.mapper.Task.FromDatabaseSlice(dbTasks)
	s.mu.Unlock()
	return nil
}

// CreateFolder validates and persists a new folder, then refreshes.
func (s *Store) CreateFolder(ctx context.Context, name, color string) (domain.Folder, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.folderValidator.ValidateFolderName(name); err != nil {
		return domain.Folder{}, err
	}
	if color == "" {
		color = domain.DefaultColor
	}

	folder := domain.NewFolder(strings.TrimSpace(name), color)
	if err := s.folderValidator.ValidateFolder(folder); err != nil {
		return domain.Folder{}, err
	}

	dbFolder := s.mapper.Folder.ToDatabase(folder)
	if err := s.repo.CreateFolder(ctx, &dbFolder); err != nil {
		return domain.Folder{}, err
	}

	if err := s.RefreshFolders(ctx); err != nil {
		return domain.Folder{}, err
	}
	s.notifySubscribers()
	return s.mapper.Folder.FromDatabase(dbFolder), nil
}

// UpdateFolder validates and persists folder changes, then refreshes.
func (s *Store) UpdateFolder(ctx context.Context, folder domain.Folder) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.folderValidator.ValidateFolderID(folder.ID); err != nil {
		return err
	}
	if err := s.folderValidator.ValidateFolder(folder); err != nil {
		return err
	}

	dbFolder := s.mapper.Folder.ToDatabase(folder)
	if err := s.repo.UpdateFolder(ctx, &dbFolder); err != nil {
		return err
	}

	if err := s.RefreshFolders(ctx); err != nil {
		return err
	}
	s.notifySubscribers()
	return nil
}

// DeleteFolder removes a folder and, through the database cascade, its
// tasks. Reminders for the doomed tasks are cancelled first so no
// trigger outlives its task.
func (s *Store) DeleteFolder(ctx context.Context, id int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.folderValidator.ValidateFolderID(id); err != nil {
		return err
	}

	for _, task := range s.TasksByFolder(id) {
		s.scheduler.Cancel(task.ID)
	}

	if err := s.repo.DeleteFolder(ctx, id); err != nil {
		return err
	}

	if err := s.RefreshFolders(ctx); err != nil {
		return err
	}
	if err := s.RefreshTasks(ctx); err != nil {
		return err
	}
	s.notifySubscribers()
	return nil
}

// CreateTask validates and persists a new task, schedules its reminder
// if eligible, then refreshes.
func (s *Store) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	validName, err := s.taskValidator.GetValidTaskName(task.Name)
	if err != nil {
		return domain.Task{}, err
	}
	task.Name = validName
	if err := s.taskValidator.ValidateTask(task); err != nil {
		return domain.Task{}, err
	}

	dbTask := s.mapper.Task.ToDatabase(task)
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return domain.Task{}, err
	}

	created := s.mapper.Task.FromDatabase(dbTask)
	if err := s.RefreshTasks(ctx); err != nil {
		return domain.Task{}, err
	}
	s.scheduler.Reconcile(created)
	s.notifySubscribers()
	return created, nil
}

// UpdateTask validates and persists task changes as a full replace,
// reconciles the reminder, then refreshes.
func (s *Store) UpdateTask(ctx context.Context, task domain.Task) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.updateTask(ctx, task)
}

// updateTask is the UpdateTask body for callers already holding writeMu.
func (s *Store) updateTask(ctx context.Context, task domain.Task) error {
	if err := s.taskValidator.ValidateTaskID(task.ID); err != nil {
		return err
	}
	validName, err := s.taskValidator.GetValidTaskName(task.Name)
	if err != nil {
		return err
	}
	task.Name = validName
	if err := s.taskValidator.ValidateTask(task); err != nil {
		return err
	}

	dbTask := s.mapper.Task.ToDatabase(task)
	if err := s.repo.UpdateTask(ctx, &dbTask); err != nil {
		return err
	}

	if err := s.RefreshTasks(ctx); err != nil {
		return err
	}
	s.scheduler.Reconcile(task)
	s.notifySubscribers()
	return nil
}

// DeleteTask removes a task and cancels any pending reminder for it.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}

	s.scheduler.Cancel(id)
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	if err := s.RefreshTasks(ctx); err != nil {
		return err
	}
	s.notifySubscribers()
	return nil
}

// ToggleTaskCompletion flips a task's completed flag. Completing a task
// with a running timer pauses the timer first, so the open work is
// accrued rather than lost.
func (s *Store) ToggleTaskCompletion(ctx context.Context, id int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	task, err := s.taskByID(id)
	if err != nil {
		return err
	}

	if !task.Completed && task.TimerActive {
		task = task.PauseTimer(s.now())
	}
	task.Completed = !task.Completed

	return s.updateTask(ctx, task)
}

// StartTimer starts the countdown on one task. Any other running timer
// is paused first; at most one task has a live timer at a time. The
// whole stop-then-start sequence runs under writeMu, so two concurrent
// calls cannot both observe "no active timer".
func (s *Store) StartTimer(ctx context.Context, id int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	task, err := s.taskByID(id)
	if err != nil {
		return err
	}
	if task.Completed {
		return errors.NewInvalidInputError("task_id", id, "cannot start a timer on a completed task")
	}
	if task.TimerActive {
		return nil
	}

	if active, ok := s.ActiveTimerTask(); ok {
		if err := s.updateTask(ctx, active.PauseTimer(s.now())); err != nil {
			return err
		}
	}

	return s.updateTask(ctx, task.StartTimer(s.now()))
}

// PauseTimer stops the countdown on a task, accruing the elapsed whole
// minutes into its actual time.
func (s *Store) PauseTimer(ctx context.Context, id int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	task, err := s.taskByID(id)
	if err != nil {
		return err
	}
	if !task.TimerActive {
		return nil
	}

	return s.updateTask(ctx, task.PauseTimer(s.now()))
}

// ExtendTimer adds minutes to a task's planned duration.
func (s *Store) ExtendTimer(ctx context.Context, id int64, minutes int) error {
	if minutes <= 0 {
		return errors.NewInvalidInputError("minutes", minutes, "must be positive")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	task, err := s.taskByID(id)
	if err != nil {
		return err
	}

	return s.updateTask(ctx, task.ExtendTimer(minutes))
}

// OpenTaskCounts reports the number of open tasks per folder id,
// derived from the cached tasks.
func (s *Store) OpenTaskCounts() map[int64]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[int64]int)
	for _, task := range s.tasks {
		if !task.Completed {
			counts[task.FolderID]++
		}
	}
	return counts
}

// RescheduleAll rebuilds every reminder trigger from the cached tasks.
// Run once at startup, after the first RefreshTasks.
func (s *Store) RescheduleAll() {
	s.scheduler.RescheduleAll(s.Tasks())
}

// FoldersSortedByName returns the cached folders ordered by name, for
// display surfaces that want alphabetical rather than insertion order.
func (s *Store) FoldersSortedByName() []domain.Folder {
	folders := s.Folders()
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders
}

func (s *Store) taskByID(id int64) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return domain.Task{}, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
}
