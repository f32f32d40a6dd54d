// Package errors defines common error types for the application.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for the application.
const (
	CodeUnknown               = "UNKNOWN_ERROR"
	CodeInvalidBase           = "INVALID_BASE"
	CodeInvalidInput          = "INVALID_INPUT"
	CodePreconditionViolation = "PRECONDITION_VIOLATION"
	CodeExternalRankerFailure = "EXTERNAL_RANKER_FAILURE"
	CodeUploadError           = "UPLOAD_ERROR"
	CodeConfigError           = "CONFIG_ERROR"
	CodeNotFound              = "NOT_FOUND"
)

// AppError represents an application error with a code and message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error instances.
var (
	ErrInvalidBase           = New(CodeInvalidBase, "base must be greater than 1")
	ErrInvalidInput          = New(CodeInvalidInput, "invalid input")
	ErrExternalRankerFailure = New(CodeExternalRankerFailure, "external ranker failure")
	ErrUploadError           = New(CodeUploadError, "upload error")
	ErrConfigError           = New(CodeConfigError, "configuration error")
	ErrNotFound              = New(CodeNotFound, "resource not found")
)

// IsInvalidBase checks if the error is an invalid-base error.
func IsInvalidBase(err error) bool {
	return errors.Is(err, ErrInvalidBase)
}

// IsInvalidInput checks if the error is an invalid-input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsExternalRankerFailure checks if the error originated from the ranker adapter.
func IsExternalRankerFailure(err error) bool {
	return errors.Is(err, ErrExternalRankerFailure)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetErrorMessage extracts the error message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// Precondition panics with a diagnostic identifying a violated caller
// contract (spec: precondition violations are a bug in the library's own
// composition, not a recoverable runtime error).
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("precondition violation: "+format, args...))
	}
}
