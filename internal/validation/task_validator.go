package validation

import (
	"assignment-tracker/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskName validates a task name for creation or update
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmedName, NameMinLength, NameMaxLength) {
		validationError.AddInvalidLengthError("task_name", trimmedName, NameMinLength, NameMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTask validates a domain.Task object for creation or update
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if nameErr := tv.ValidateTaskName(task.Name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if !tv.validator.IsValidID(task.FolderID) {
		validationError.AddInvalidValueError("folder_id", task.FolderID, "must reference an existing folder")
	}

	if task.ID != 0 && !tv.validator.IsValidID(task.ID) {
		validationError.AddInvalidValueError("task_id", task.ID, "must be a positive integer")
	}

	if !tv.validator.IsPositiveMinutes(task.EstimatedMinutes) {
		validationError.AddInvalidValueError("estimated_minutes", task.EstimatedMinutes, "must be a positive number of minutes")
	}

	if !tv.validator.IsPositiveMinutes(task.ActualMinutes) {
		validationError.AddInvalidValueError("actual_minutes", task.ActualMinutes, "must be a positive number of minutes")
	}

	if !tv.validator.IsValidTimeRange(task.Reminder, task.DueDate) {
		validationError.AddInvalidRangeError("reminder", task.Reminder, "must not be after the due date")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
