package validation

import (
	"assignment-tracker/internal/domain"
)

// FolderValidator provides validation for Folder-related operations
type FolderValidator struct {
	validator *Validator
}

// NewFolderValidator creates a new folder validator
func NewFolderValidator() *FolderValidator {
	return &FolderValidator{
		validator: NewValidator(),
	}
}

// ValidateFolderName validates a folder name for creation or update
func (fv *FolderValidator) ValidateFolderName(name string) error {
	validationError := NewValidationError()

	trimmedName := fv.validator.TrimAndValidateString(name)

	if !fv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("folder_name")
		return validationError
	}

	if !fv.validator.IsValidStringLength(trimmedName, NameMinLength, NameMaxLength) {
		validationError.AddInvalidLengthError("folder_name", trimmedName, NameMinLength, NameMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateColor validates a palette color token
func (fv *FolderValidator) ValidateColor(color string) error {
	if !fv.validator.IsValidColor(color) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("color", color, "must be one of the palette colors")
		return validationError
	}
	return nil
}

// ValidateFolder validates a domain.Folder object
func (fv *FolderValidator) ValidateFolder(folder domain.Folder) error {
	validationError := NewValidationError()

	if nameErr := fv.ValidateFolderName(folder.Name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if colorErr := fv.ValidateColor(folder.Color); colorErr != nil {
		if colorValidationErr, ok := colorErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, colorValidationErr.Errors...)
		}
	}

	if folder.ID != 0 && !fv.validator.IsValidID(folder.ID) {
		validationError.AddInvalidValueError("folder_id", folder.ID, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateFolderID validates a folder ID
func (fv *FolderValidator) ValidateFolderID(id int64) error {
	if !fv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("folder_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
