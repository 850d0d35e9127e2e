package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
const (
	// ExitSuccess indicates the run completed, including when nothing is outdated.
	ExitSuccess = 0

	// ExitFailure indicates the run was aborted: the package manager version is
	// unmet or unreadable, its output could not be parsed, or the configuration is invalid.
	ExitFailure = 1
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (ExitSuccess or ExitFailure)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise the underlying error's message,
// or a default message with the exit code.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// It performs the following operations:
//   - Returns ExitSuccess for nil and for EmptyOutputError
//   - Returns the code of an ExitError
//   - Returns ExitFailure for anything else
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if _, ok := IsEmptyOutput(err); ok {
		return ExitSuccess
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// VersionUnmetError indicates that the package manager cannot be used: its
// version output is empty or unreadable, or the version is below the minimum.
//
// Fields:
//   - Command: The package manager command that was checked (e.g., "pip")
//   - Found: The detected version, empty when it could not be read
//   - Required: The minimum version required
//   - Reason: Short description of why the requirement is unmet
type VersionUnmetError struct {
	Command  string
	Found    string
	Required string
	Reason   string
}

// Error implements the error interface.
func (e *VersionUnmetError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%s: %s (requires version %s or newer)", e.Command, e.Reason, e.Required)
	}
	return fmt.Sprintf("%s version %s is not supported: %s (requires version %s or newer)", e.Command, e.Found, e.Reason, e.Required)
}

// IsVersionUnmet checks if err is a VersionUnmetError and returns it.
func IsVersionUnmet(err error) (*VersionUnmetError, bool) {
	var vue *VersionUnmetError
	if errors.As(err, &vue) {
		return vue, true
	}
	return nil, false
}

// ParseError indicates that the package manager's listing output could not
// be decoded. The whole query result is discarded.
//
// Fields:
//   - Command: The command line whose output failed to parse
//   - Err: The underlying decode error
type ParseError struct {
	Command string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse output of %q: %v", e.Command, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if err is a ParseError and returns it.
func IsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// EmptyOutputError indicates that the outdated query returned no packages.
// It ends the run successfully.
type EmptyOutputError struct {
	Command string
}

// Error implements the error interface.
func (e *EmptyOutputError) Error() string {
	return "No outdated packages."
}

// IsEmptyOutput checks if err is an EmptyOutputError and returns it.
func IsEmptyOutput(err error) (*EmptyOutputError, bool) {
	var eoe *EmptyOutputError
	if errors.As(err, &eoe) {
		return eoe, true
	}
	return nil, false
}
