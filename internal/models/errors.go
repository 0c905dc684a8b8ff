package models

import "fmt"

// Error codes surfaced to API clients via the GraphQL errors array.
const (
	CodeDuplicateEmail    = "DUPLICATE_EMAIL"
	CodeNotFound          = "NOT_FOUND"
	CodeReferenceNotFound = "REFERENCE_NOT_FOUND"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Extensions exposes the error code to the GraphQL layer so it appears under
// extensions.code in the response errors array.
func (e *AppError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// Predefined error constructors
func NewDuplicateEmailError(email string) *AppError {
	return &AppError{
		Code:    CodeDuplicateEmail,
		Message: fmt.Sprintf("email %q is already in use", email),
	}
}

func NewNotFoundError(resource, id string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %s not found", resource, id),
	}
}

func NewReferenceNotFoundError(resource, id string) *AppError {
	return &AppError{
		Code:    CodeReferenceNotFound,
		Message: fmt.Sprintf("referenced %s %s does not exist", resource, id),
	}
}
