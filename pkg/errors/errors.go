// Package errors provides the coded error type used across dotinstall.
//
// Every failure the installer can hit maps to one ErrorCode, so callers and
// tests can branch on the category without matching message text.
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

	// Configuration errors
	ErrConfigLoad           ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid        ErrorCode = "CONFIG_INVALID"
	ErrInvalidPath          ErrorCode = "INVALID_PATH"
	ErrRootNotFound         ErrorCode = "ROOT_NOT_FOUND"
	ErrWrongProject         ErrorCode = "WRONG_PROJECT"
	ErrNoRemoteConfigured   ErrorCode = "NO_REMOTE_CONFIGURED"
	ErrMissingSourceFile    ErrorCode = "MISSING_SOURCE_FILE"
	ErrMissingSymlinkTarget ErrorCode = "MISSING_SYMLINK_TARGET"
	ErrDuplicateDestination ErrorCode = "DUPLICATE_DESTINATION"

	// I/O errors
	ErrBackupDirCreate ErrorCode = "BACKUP_DIR_CREATE_FAILED"
	ErrBackupCopy      ErrorCode = "BACKUP_COPY_FAILED"
	ErrRemove          ErrorCode = "REMOVE_FAILED"
	ErrInstallCopy     ErrorCode = "INSTALL_COPY_FAILED"
	ErrDirCreate       ErrorCode = "DIR_CREATE_FAILED"
	ErrSymlinkCreate   ErrorCode = "SYMLINK_CREATE_FAILED"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an *Error
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an *Error
func GetErrorDetails(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
