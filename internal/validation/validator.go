package validation

import (
	"strings"
	"time"

	"assignment-tracker/internal/domain"
)

// Name length limits shared by folders and tasks.
const (
	NameMinLength = 1
	NameMaxLength = 255
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidID checks if an entity ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsValidColor checks if a color is one of the fixed palette tokens
func (v *Validator) IsValidColor(color string) bool {
	return domain.IsValidColor(color)
}

// IsPositiveMinutes checks an optional minutes value; nil is valid,
// a present value must be positive
func (v *Validator) IsPositiveMinutes(minutes *int) bool {
	return minutes == nil || *minutes > 0
}

// IsValidTimeRange checks that an optional reminder does not fall on a
// later calendar day than an optional due date. Due dates mean the
// whole day, so a reminder later the same day is fine.
func (v *Validator) IsValidTimeRange(reminder, dueDate *time.Time) bool {
	if reminder == nil || dueDate == nil {
		return true
	}
	endOfDueDay := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 23, 59, 59, 0, dueDate.Location())
	return !reminder.After(endOfDueDay)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
