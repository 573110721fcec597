package notify

import (
	"fmt"
	"time"

	"assignment-tracker/internal/domain"
	"assignment-tracker/internal/errors"
	"assignment-tracker/internal/logging"
)

// ScheduleLeadTime is the default minimum distance into the future a
// reminder must be before it is worth scheduling. Reminders at or
// inside this buffer are skipped rather than fired immediately.
const ScheduleLeadTime = 60 * time.Second

// Scheduler keeps the notification store consistent with the task set:
// one live trigger per task with a future reminder, none for completed
// or reminder-less tasks. Notifier failures are logged and neutralized;
// reminders are best-effort, task persistence is not.
type Scheduler struct {
	notifier Notifier
	lead     time.Duration
	now      func() time.Time
}

// NewScheduler creates a scheduler over the given notifier with the
// default lead-time buffer.
func NewScheduler(notifier Notifier) *Scheduler {
	return NewSchedulerWithLeadTime(notifier, ScheduleLeadTime)
}

// NewSchedulerWithLeadTime creates a scheduler with a custom lead-time
// buffer. A non-positive lead falls back to the default.
func NewSchedulerWithLeadTime(notifier Notifier, lead time.Duration) *Scheduler {
	if lead <= 0 {
		lead = ScheduleLeadTime
	}
	return &Scheduler{
		notifier: notifier,
		lead:     lead,
		now:      time.Now,
	}
}

// Schedule registers a trigger for the task's reminder. It is a no-op
// when the task has no reminder, is completed, or the reminder is not
// far enough in the future. Any prior trigger under the task's id is
// cancelled first so a task never carries two.
func (s *Scheduler) Schedule(task domain.Task) {
	if !s.eligible(task) {
		return
	}

	if err := s.notifier.Cancel(task.ID); err != nil {
		logging.Debugf("notify: %v\n", schedulingFailure("cancel before schedule", task.ID, err))
	}

	body := ""
	if task.DueDate != nil {
		body = "Due " + domain.FormatDuePtr(task.DueDate)
	}

	if err := s.notifier.ScheduleOneShot(task.ID, *task.Reminder, task.Name, body); err != nil {
		logging.Debugf("notify: %v\n", schedulingFailure("schedule reminder", task.ID, err))
	}
}

// Cancel removes any trigger for the task id. Safe to call when none exists.
func (s *Scheduler) Cancel(taskID int64) {
	if err := s.notifier.Cancel(taskID); err != nil {
		logging.Debugf("notify: %v\n", schedulingFailure("cancel reminder", taskID, err))
	}
}

// Reconcile brings the trigger for one task in line with its current
// state: scheduled when eligible, cancelled otherwise. Called after
// every mutation that can affect a task's reminder or completion.
func (s *Scheduler) Reconcile(task domain.Task) {
	if s.eligible(task) {
		s.Schedule(task)
		return
	}
	s.Cancel(task.ID)
}

// RescheduleAll drops every trigger and schedules the eligible tasks
// afresh. Run once at process start to recover triggers the system
// discarded, e.g. after a restart.
func (s *Scheduler) RescheduleAll(tasks []domain.Task) {
	if err := s.notifier.CancelAll(); err != nil {
		logging.Debugf("notify: %v\n", schedulingFailure("cancel all reminders", 0, err))
	}
	for _, task := range tasks {
		s.Schedule(task)
	}
}

func (s *Scheduler) eligible(task domain.Task) bool {
	if task.Reminder == nil || task.Completed {
		return false
	}
	return task.Reminder.After(s.now().Add(s.lead))
}

// schedulingFailure wraps a notifier error in the scheduling error
// type, carrying the task id for the debug log.
func schedulingFailure(operation string, taskID int64, cause error) error {
	err := errors.NewSchedulingError(operation, cause)
	if taskID != 0 {
		err = err.WithContext("task_id", fmt.Sprintf("%d", taskID))
	}
	return err
}
