// Package session derives work-session figures from the task list:
// plan summaries for a set of tasks and the focus/break cadence for
// timed work.
package session

import (
	"fmt"

	"assignment-tracker/internal/domain"
)

// Pomodoro cadence defaults, in minutes.
const (
	FocusMinutes      = 25
	ShortBreakMinutes = 5
	LongBreakMinutes  = 15

	// Every fourth completed focus interval earns the long break.
	FocusIntervalsPerCycle = 4
)

// Phase is one leg of the focus/break cadence.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Minutes returns the default length of the phase.
func (p Phase) Minutes() int {
	switch p {
	case PhaseFocus:
		return FocusMinutes
	case PhaseShortBreak:
		return ShortBreakMinutes
	case PhaseLongBreak:
		return LongBreakMinutes
	default:
		return 0
	}
}

// NextPhase returns the phase that follows a completed focus interval.
// completedFocus counts focus intervals finished so far in the session,
// including the one that just ended.
func NextPhase(completedFocus int) Phase {
	if completedFocus <= 0 {
		return PhaseFocus
	}
	if completedFocus%FocusIntervalsPerCycle == 0 {
		return PhaseLongBreak
	}
	return PhaseShortBreak
}

// PlanSummary aggregates the open workload of a set of tasks.
type PlanSummary struct {
	TaskCount      int // open tasks
	EstimatedCount int // open tasks carrying an estimate
	TotalMinutes   int // summed estimates of open tasks
}

// String renders the summary in a form suitable for a status line.
func (s PlanSummary) String() string {
	return fmt.Sprintf("%d tasks, %d estimated, %d min planned",
		s.TaskCount, s.EstimatedCount, s.TotalMinutes)
}

// Summarize totals the open tasks in the slice. Completed tasks are
// skipped; tasks without an estimate count toward TaskCount only.
func Summarize(tasks []domain.Task) PlanSummary {
	var summary PlanSummary
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		summary.TaskCount++
		if task.EstimatedMinutes != nil && *task.EstimatedMinutes > 0 {
			summary.EstimatedCount++
			summary.TotalMinutes += *task.EstimatedMinutes
		}
	}
	return summary
}
