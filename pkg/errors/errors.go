// Package errors provides the coded error type used across toss.
//
// Errors own their data (paths are copied into the error) so they can be
// collected, reported after the fact, and compared with errors.Is by code.
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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrIO           ErrorCode = "IO"

	// Selection and removal errors
	ErrNoSuchFile        ErrorCode = "NO_SUCH_FILE"
	ErrNotADirectory     ErrorCode = "NOT_A_DIRECTORY"
	ErrDirectoryNotEmpty ErrorCode = "DIRECTORY_NOT_EMPTY"
	ErrIsDirectory       ErrorCode = "IS_DIRECTORY"
	ErrIsRoot            ErrorCode = "IS_ROOT"
	ErrCrossesDevices    ErrorCode = "CROSSES_DEVICES"
	ErrPatternNoMatch    ErrorCode = "PATTERN_NO_MATCH"
	ErrPermissionDenied  ErrorCode = "PERMISSION_DENIED"

	// History errors
	ErrHistoryEmpty       ErrorCode = "HISTORY_EMPTY"
	ErrRevertTargetExists ErrorCode = "REVERT_TARGET_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Path    string
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

// Is matches any *Error carrying the same code
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
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithPath records the path the error is about
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
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
	var tossErr *Error
	if errors.As(err, &tossErr) {
		return tossErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an *Error
func GetErrorCode(err error) ErrorCode {
	var tossErr *Error
	if errors.As(err, &tossErr) {
		return tossErr.Code
	}
	return ErrUnknown
}

// GetErrorPath returns the path recorded on an error, or "" if none
func GetErrorPath(err error) string {
	var tossErr *Error
	if errors.As(err, &tossErr) {
		return tossErr.Path
	}
	return ""
}

// UserMessage renders an error the way it is shown on stderr: the message
// without the code prefix, followed by the wrapped cause if any.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var tossErr *Error
	if !errors.As(err, &tossErr) {
		return err.Error()
	}
	if tossErr.Wrapped != nil {
		return fmt.Sprintf("%s: %s", tossErr.Message, UserMessage(tossErr.Wrapped))
	}
	return tossErr.Message
}
