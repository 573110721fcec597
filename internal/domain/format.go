package domain

import (
	"time"
)

// Display layouts for due dates and reminders. Each layout has a
// matching parse function so a formatted value maps back to the same
// instant at minute precision.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02 15:04"
)

// FormatDate renders the calendar day of a timestamp.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders the time of day of a timestamp.
func FormatClock(t time.Time) string {
	return t.Format(TimeLayout)
}

// FormatReminder renders a combined date and time string for a reminder.
func FormatReminder(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseReminder parses a string produced by FormatReminder back to a
// timestamp in the given location.
func ParseReminder(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, s, loc)
}

// FormatDuePtr renders an optional due date as a calendar day,
// returning empty for nil.
func FormatDuePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}
