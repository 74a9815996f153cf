package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes, one per failure kind. Every one of them is fatal to a run.
const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// ErrMissingRoot means the configuration root could not be listed
	ErrMissingRoot ErrorCode = "MISSING_ROOT"

	// ErrIO covers any other filesystem failure
	ErrIO ErrorCode = "IO"

	// ErrInvalidConfig means an entry name is not in the mapping table
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"

	// ErrInvalidPrivilege means a symlink could not be created
	ErrInvalidPrivilege ErrorCode = "INVALID_PRIVILEGE"

	// ErrEnvVar means the home directory value was missing or not valid text
	ErrEnvVar ErrorCode = "ENV_VAR"

	// ErrExistingPath means a destination is occupied by something that is not a link
	ErrExistingPath ErrorCode = "EXISTING_PATH"

	// ErrConfigLoad is returned when ambient settings cannot be loaded
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// CleanfigError represents a structured error with code and details
type CleanfigError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CleanfigError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CleanfigError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CleanfigError) Is(target error) bool {
	var targetErr *CleanfigError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CleanfigError with the given code and message
func New(code ErrorCode, message string) *CleanfigError {
	return &CleanfigError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CleanfigError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CleanfigError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a CleanfigError
func Wrap(err error, code ErrorCode, message string) *CleanfigError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// WithDetail adds a detail to the error
func (e *CleanfigError) WithDetail(key string, value interface{}) *CleanfigError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// MissingRoot reports that the configuration root cannot be listed.
func MissingRoot(root string, cause error) *CleanfigError {
	e := New(ErrMissingRoot, "`~/.config/cleanfig` does not exist").WithDetail("root", root)
	e.Wrapped = cause
	return e
}

// IO wraps a filesystem failure that is not one of the more specific kinds.
func IO(err error) *CleanfigError {
	return Wrap(err, ErrIO, "io error")
}

// InvalidConfig reports an entry name that has no mapping.
func InvalidConfig(name string) *CleanfigError {
	return Newf(ErrInvalidConfig, "invalid config path `%s`", name).WithDetail("name", name)
}

// InvalidPrivilege reports a failed symlink creation.
func InvalidPrivilege(dest string, cause error) *CleanfigError {
	e := New(ErrInvalidPrivilege, "must run as administrator").WithDetail("path", dest)
	e.Wrapped = cause
	return e
}

// EnvVar reports a missing or malformed home directory value.
func EnvVar(detail string) *CleanfigError {
	return New(ErrEnvVar, detail)
}

// ExistingPath reports a destination occupied by non-link content.
func ExistingPath(path string) *CleanfigError {
	return Newf(ErrExistingPath, "path `%s` already exists", path).WithDetail("path", path)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cfErr *CleanfigError
	if errors.As(err, &cfErr) {
		return cfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CleanfigError
func GetErrorCode(err error) ErrorCode {
	var cfErr *CleanfigError
	if errors.As(err, &cfErr) {
		return cfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CleanfigError
func GetErrorDetails(err error) map[string]interface{} {
	var cfErr *CleanfigError
	if errors.As(err, &cfErr) {
		return cfErr.Details
	}
	return nil
}
