package errors

import (
	"errors"
	"fmt"
)

// Exit codes for deployctl
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitNotFound     = 2
	ExitIOError      = 3
	ExitConfigError  = 4
)

// DeployError is the base error type for deployctl
type DeployError struct {
	Code    int
	Message string
	Cause   error
}

func (e *DeployError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DeployError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *DeployError) ExitCode() int {
	return e.Code
}

// New creates a new DeployError
func New(code int, message string) *DeployError {
	return &DeployError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a DeployError
func Wrap(code int, message string, cause error) *DeployError {
	return &DeployError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigNotFound returns an error for a missing or unreadable config file
func ConfigNotFound(path string, cause error) *DeployError {
	return Wrap(ExitNotFound, fmt.Sprintf("config file not found: %s", path), cause)
}

// ManifestNotFound returns an error for a missing fail2ban manifest
func ManifestNotFound(path string, cause error) *DeployError {
	return Wrap(ExitNotFound, fmt.Sprintf("manifest not found: %s", path), cause)
}

// IOError returns an error for failed directory creation or file writes
func IOError(message string, cause error) *DeployError {
	return Wrap(ExitIOError, message, cause)
}

// ConfigError returns an error for configuration content issues
func ConfigError(message string, cause error) *DeployError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *DeployError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var deployErr *DeployError
	if errors.As(err, &deployErr) {
		return deployErr.ExitCode()
	}
	return ExitGeneralError
}

// IsNotFound reports whether err carries the not-found exit code
func IsNotFound(err error) bool {
	var deployErr *DeployError
	if errors.As(err, &deployErr) {
		return deployErr.Code == ExitNotFound
	}
	return false
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
