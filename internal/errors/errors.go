package errors

import (
	"errors"
	"fmt"
)

// Exit codes for plastic-ctl
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitWorkspaceNotFound = 2
	ExitToolFailed        = 3
	ExitConfigError       = 4
	ExitSelectorError     = 5
	ExitFilesystemError   = 6
)

// PlasticError is the base error type for plastic-ctl
type PlasticError struct {
	Code    int
	Message string
	Cause   error
}

func (e *PlasticError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PlasticError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *PlasticError) ExitCode() int {
	return e.Code
}

// New creates a new PlasticError
func New(code int, message string) *PlasticError {
	return &PlasticError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PlasticError
func Wrap(code int, message string, cause error) *PlasticError {
	return &PlasticError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// WorkspaceNotFound returns an error for a path with no workspace bound to it
func WorkspaceNotFound(path string) *PlasticError {
	return New(ExitWorkspaceNotFound, fmt.Sprintf("no workspace found at %s", path))
}

// ToolFailed returns an error for a failed cm invocation
func ToolFailed(command string, cause error) *PlasticError {
	return Wrap(ExitToolFailed, fmt.Sprintf("cm %s failed", command), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *PlasticError {
	return Wrap(ExitConfigError, message, cause)
}

// SelectorError returns an error for selector operations
func SelectorError(message string, cause error) *PlasticError {
	return Wrap(ExitSelectorError, message, cause)
}

// FilesystemError returns an error for filesystem operations
func FilesystemError(op string, path string, cause error) *PlasticError {
	return Wrap(ExitFilesystemError, fmt.Sprintf("%s %s failed", op, path), cause)
}

// WorkspaceError returns an error for workspace operations
func WorkspaceError(op string, cause error) *PlasticError {
	return Wrap(ExitGeneralError, fmt.Sprintf("workspace %s failed", op), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *PlasticError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var plasticErr *PlasticError
	if errors.As(err, &plasticErr) {
		return plasticErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
