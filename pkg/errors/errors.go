package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Store errors
	ErrDuplicateIdentity ErrorCode = "DUPLICATE_IDENTITY"
	ErrStudentNotFound   ErrorCode = "STUDENT_NOT_FOUND"
	ErrCourseNotFound    ErrorCode = "COURSE_NOT_FOUND"
	ErrNotEnrolled       ErrorCode = "NOT_ENROLLED"

	// Persistence errors
	ErrDeserialization ErrorCode = "DESERIALIZATION"
	ErrIOFailure       ErrorCode = "IO_FAILURE"
	ErrImport          ErrorCode = "IMPORT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// RosterError represents a structured error with code and details
type RosterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RosterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RosterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RosterError) Is(target error) bool {
	var targetErr *RosterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RosterError with the given code and message
func New(code ErrorCode, message string) *RosterError {
	return &RosterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RosterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RosterError {
	return &RosterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RosterError
func Wrap(err error, code ErrorCode, message string) *RosterError {
	if err == nil {
		return nil
	}
	return &RosterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RosterError {
	if err == nil {
		return nil
	}
	return &RosterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RosterError) WithDetail(key string, value interface{}) *RosterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rosterErr *RosterError
	if errors.As(err, &rosterErr) {
		return rosterErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RosterError
func GetErrorCode(err error) ErrorCode {
	var rosterErr *RosterError
	if errors.As(err, &rosterErr) {
		return rosterErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RosterError
func GetErrorDetails(err error) map[string]interface{} {
	var rosterErr *RosterError
	if errors.As(err, &rosterErr) {
		return rosterErr.Details
	}
	return nil
}

// UserMessage returns the message meant for people: the RosterError message
// without its code, or err.Error() for any other error.
func UserMessage(err error) string {
	var rosterErr *RosterError
	if errors.As(err, &rosterErr) {
		return rosterErr.Message
	}
	return err.Error()
}
