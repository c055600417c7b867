package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the failure categories igno can hit
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Network errors (non-200 responses, transport failures)
	ErrNetwork  ErrorCode = "NETWORK"
	ErrNotFound ErrorCode = "NOT_FOUND"

	// Parse errors (malformed listing or cache JSON)
	ErrParse ErrorCode = "PARSE"

	// Filesystem errors (unreadable or unwritable paths)
	ErrFilesystem ErrorCode = "FILESYSTEM"

	// Selection errors (aborted or out-of-range interactive pick)
	ErrSelection ErrorCode = "SELECTION"

	// Configuration errors (bad config file, unresolvable directories)
	ErrConfig ErrorCode = "CONFIG"
)

// IgnoError represents a structured error with code and details
type IgnoError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *IgnoError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *IgnoError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *IgnoError) Is(target error) bool {
	var targetErr *IgnoError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new IgnoError with the given code and message
func New(code ErrorCode, message string) *IgnoError {
	return &IgnoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new IgnoError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *IgnoError {
	return &IgnoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an IgnoError
func Wrap(err error, code ErrorCode, message string) *IgnoError {
	if err == nil {
		return nil
	}
	return &IgnoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *IgnoError {
	if err == nil {
		return nil
	}
	return &IgnoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *IgnoError) WithDetail(key string, value interface{}) *IgnoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ignoErr *IgnoError
	if errors.As(err, &ignoErr) {
		return ignoErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an IgnoError
func GetErrorCode(err error) ErrorCode {
	var ignoErr *IgnoError
	if errors.As(err, &ignoErr) {
		return ignoErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an IgnoError
func GetErrorDetails(err error) map[string]interface{} {
	var ignoErr *IgnoError
	if errors.As(err, &ignoErr) {
		return ignoErr.Details
	}
	return nil
}
