package errors

import (
	"errors"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("folder", "123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "folder not found: 123" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "folder not found: 123")
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "folder" {
		t.Errorf("NewNotFoundError should set resource context")
	}

	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "123" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewStorageError("create task", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: create task" {
		t.Errorf("NewStorageError message = %v, want %v", err.Message, "storage operation failed: create task")
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want %v", err.Code, "STORAGE_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewStorageError cause = %v, want %v", err.Cause, cause)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "create task" {
		t.Errorf("NewStorageError should set operation context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("color", "magenta-ish", "not in palette")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for color: not in palette" {
		t.Errorf("NewInvalidInputError message = %v, want %v", err.Message, "invalid input for color: not in palette")
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("NewInvalidInputError code = %v, want %v", err.Code, "INVALID_INPUT")
	}

	field, ok := err.GetContext("field")
	if !ok || field != "color" {
		t.Errorf("NewInvalidInputError should set field context")
	}

	value, ok := err.GetContext("value")
	if !ok || value != "magenta-ish" {
		t.Errorf("NewInvalidInputError should set value context")
	}

	reason, ok := err.GetContext("reason")
	if !ok || reason != "not in palette" {
		t.Errorf("NewInvalidInputError should set reason context")
	}
}

func TestNewSchedulingError(t *testing.T) {
	cause := errors.New("notification daemon unavailable")
	err := NewSchedulingError("schedule reminder", cause)

	if err.Type != ErrorTypeScheduling {
		t.Errorf("NewSchedulingError type = %v, want %v", err.Type, ErrorTypeScheduling)
	}
	if err.Code != "SCHEDULING_ERROR" {
		t.Errorf("NewSchedulingError code = %v, want %v", err.Code, "SCHEDULING_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewSchedulingError cause = %v, want %v", err.Cause, cause)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "schedule reminder" {
		t.Errorf("NewSchedulingError should set operation context")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NewStorageError("op", nil)
	if !IsAppError(appErr) {
		t.Errorf("IsAppError should return true for AppError")
	}
	if IsAppError(errors.New("plain")) {
		t.Errorf("IsAppError should return false for plain error")
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewNotFoundError("task", "7")
	if !IsErrorType(err, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should match not_found")
	}
	if IsErrorType(err, ErrorTypeStorage) {
		t.Errorf("IsErrorType should not match storage")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return false for plain error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation message passes through",
			err:      NewValidationError("name is required", nil),
			expected: "name is required",
		},
		{
			name:     "storage message is generic",
			err:      NewStorageError("create task", errors.New("disk full")),
			expected: "A storage error occurred. Please try again.",
		},
		{
			name:     "scheduling message notes the task was saved",
			err:      NewSchedulingError("schedule reminder", nil),
			expected: "The reminder could not be scheduled. The task was saved.",
		},
		{
			name:     "plain error passes through",
			err:      errors.New("something odd"),
			expected: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	if ShouldLogError(NewValidationError("bad", nil)) {
		t.Errorf("validation errors should not be logged")
	}
	if ShouldLogError(NewNotFoundError("task", "1")) {
		t.Errorf("not found errors should not be logged")
	}
	if !ShouldLogError(NewStorageError("op", nil)) {
		t.Errorf("storage errors should be logged")
	}
	if !ShouldLogError(NewSchedulingError("op", nil)) {
		t.Errorf("scheduling errors should be logged")
	}
	if !ShouldLogError(errors.New("plain")) {
		t.Errorf("unknown errors should be logged")
	}
}
