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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Compilation errors
	ErrEncoding          ErrorCode = "ENCODING"
	ErrSyntax            ErrorCode = "SYNTAX"
	ErrUndefinedConstant ErrorCode = "UNDEFINED_CONSTANT"
	ErrEmit              ErrorCode = "EMIT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// ConfcError represents a structured error with code and details
type ConfcError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ConfcError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ConfcError) Unwrap() error {
	return e.Wrapped
}

// Is matches any ConfcError carrying the same code
func (e *ConfcError) Is(target error) bool {
	var targetErr *ConfcError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ConfcError with the given code and message
func New(code ErrorCode, message string) *ConfcError {
	return &ConfcError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ConfcError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ConfcError {
	return &ConfcError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ConfcError
func Wrap(err error, code ErrorCode, message string) *ConfcError {
	if err == nil {
		return nil
	}
	return &ConfcError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ConfcError {
	if err == nil {
		return nil
	}
	return &ConfcError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ConfcError) WithDetail(key string, value interface{}) *ConfcError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var confcErr *ConfcError
	if errors.As(err, &confcErr) {
		return confcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ConfcError
func GetErrorCode(err error) ErrorCode {
	var confcErr *ConfcError
	if errors.As(err, &confcErr) {
		return confcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ConfcError
func GetErrorDetails(err error) map[string]interface{} {
	var confcErr *ConfcError
	if errors.As(err, &confcErr) {
		return confcErr.Details
	}
	return nil
}
