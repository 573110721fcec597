package domain

import (
	"time"
)

// Task represents a to-do/assignment item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID               int64
	Name             string
	FolderID         int64
	DueDate          *time.Time
	Reminder         *time.Time
	Completed        bool
	EstimatedMinutes *int
	ActualMinutes    *int
	TimerActive      bool
	TimerStartedAt   *time.Time
}

// DueStatus classifies a task's due date relative to a reference day.
type DueStatus string

const (
	DueStatusNone    DueStatus = "none"
	DueStatusOverdue DueStatus = "overdue"
	DueStatusToday   DueStatus = "today"
	DueStatusFuture  DueStatus = "future"
)

// NewTask creates a new Task in the given folder.
func NewTask(name string, folderID int64) Task {
	return Task{
		Name:     name,
		FolderID: folderID,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != "" && t.FolderID > 0
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// DueStatusAt classifies the due date against now by calendar day, not
// by exact timestamp, so a due date earlier today is "today", not
// "overdue". Both times are compared in now's location.
func (t Task) DueStatusAt(now time.Time) DueStatus {
	if t.DueDate == nil {
		return DueStatusNone
	}

	due := t.DueDate.In(now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case dueDay.Before(today):
		return DueStatusOverdue
	case dueDay.Equal(today):
		return DueStatusToday
	default:
		return DueStatusFuture
	}
}

// StartTimer returns a copy of the task with a live countdown started at now.
func (t Task) StartTimer(now time.Time) Task {
	t.TimerActive = true
	t.TimerStartedAt = &now
	return t
}

// PauseTimer returns a copy of the task with the countdown stopped.
// Whole minutes elapsed since the timer started are accrued into
// ActualMinutes, so paused time never counts against the estimate.
func (t Task) PauseTimer(now time.Time) Task {
	if t.TimerActive && t.TimerStartedAt != nil {
		elapsed := int(now.Sub(*t.TimerStartedAt).Minutes())
		if elapsed > 0 {
			total := elapsed
			if t.ActualMinutes != nil {
				total += *t.ActualMinutes
			}
			t.ActualMinutes = &total
		}
	}
	t.TimerActive = false
	t.TimerStartedAt = nil
	return t
}

// ExtendTimer returns a copy of the task with the planned duration
// extended by the given number of minutes. Extending grows the
// estimate; it does not consume it.
func (t Task) ExtendTimer(minutes int) Task {
	if minutes <= 0 {
		return t
	}
	total := minutes
	if t.EstimatedMinutes != nil {
		total += *t.EstimatedMinutes
	}
	t.EstimatedMinutes = &total
	return t
}

// RemainingMinutes reports the planned minutes left at now, counting
// both accrued work and the live countdown. The second return value is
// false when no duration was planned.
func (t Task) RemainingMinutes(now time.Time) (int, bool) {
	if t.EstimatedMinutes == nil {
		return 0, false
	}

	spent := 0
	if t.ActualMinutes != nil {
		spent = *t.ActualMinutes
	}
	if t.TimerActive && t.TimerStartedAt != nil {
		spent += int(now.Sub(*t.TimerStartedAt).Minutes())
	}

	remaining := *t.EstimatedMinutes - spent
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}
