package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	ve := NewValidationError()
	if ve.Error() != "validation error" {
		t.Errorf("empty ValidationError.Error() = %q", ve.Error())
	}

	ve.AddRequiredError("task_name")
	if !strings.Contains(ve.Error(), "task_name") {
		t.Errorf("single error message should mention the field, got %q", ve.Error())
	}

	ve.AddInvalidValueError("color", "nope", "must be one of the palette colors")
	if !strings.Contains(ve.Error(), "multiple validation errors") {
		t.Errorf("multi error message should say multiple, got %q", ve.Error())
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Error("new ValidationError should have no errors")
	}

	ve.AddRequiredError("task_name")
	if !ve.HasErrors() {
		t.Error("ValidationError should report errors after AddRequiredError")
	}
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("task_name")
	ve.AddInvalidValueError("color", "nope", "bad")
	ve.AddInvalidLengthError("task_name", "x", 1, 255)

	fieldErrors := ve.GetFieldErrors("task_name")
	if len(fieldErrors) != 2 {
		t.Errorf("GetFieldErrors(task_name) = %d errors, want 2", len(fieldErrors))
	}

	if len(ve.GetFieldErrors("missing")) != 0 {
		t.Error("GetFieldErrors for unknown field should be empty")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if ve.GetUserFriendlyMessage() != "Input validation failed" {
		t.Errorf("empty message = %q", ve.GetUserFriendlyMessage())
	}

	ve.AddRequiredError("task_name")
	if ve.GetUserFriendlyMessage() != "task_name is required" {
		t.Errorf("single message = %q", ve.GetUserFriendlyMessage())
	}

	ve.AddRequiredError("color")
	msg := ve.GetUserFriendlyMessage()
	if !strings.Contains(msg, "Multiple validation errors occurred") {
		t.Errorf("multi message = %q", msg)
	}
	if !strings.Contains(msg, "- color is required") {
		t.Errorf("multi message should list each error, got %q", msg)
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	if !IsValidationError(ve) {
		t.Error("IsValidationError should recognize *ValidationError")
	}
	if IsValidationError(errors.New("plain")) {
		t.Error("IsValidationError should reject plain errors")
	}
}

func TestFieldError_Error(t *testing.T) {
	fe := &FieldError{Field: "task_name", Type: ErrorTypeRequired, Message: "task_name is required"}
	expected := "validation error for field 'task_name': task_name is required"
	if fe.Error() != expected {
		t.Errorf("FieldError.Error() = %q, want %q", fe.Error(), expected)
	}
}
