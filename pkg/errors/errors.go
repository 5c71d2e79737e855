// Package errors provides structured error types for collatzgraph.
//
// Every failure the tool can report carries a machine-readable [Code] so the
// CLI can surface the specific reason a run was aborted, and tests can assert
// on the category rather than on message text.
//
// # Error Codes
//
//   - INVALID_*: Input validation failures (seed, range, format, config)
//   - OVERFLOW: A Collatz step left the native integer range
//   - MISSING_DEPTH_ENTRY: A layout invariant was violated (programming fault)
//   - INTERNAL_*: Unexpected failures in rendering back ends
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSeed, "seed must be >= 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidSeed) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidSeed   Code = "INVALID_SEED"
	ErrCodeInvalidRange  Code = "INVALID_RANGE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Arithmetic errors
	ErrCodeOverflow Code = "OVERFLOW"

	// Invariant violations. These indicate a bug, not bad input.
	ErrCodeMissingDepth Code = "MISSING_DEPTH_ENTRY"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvariant reports whether err signals a violated internal invariant
// rather than a recoverable input problem.
func IsInvariant(err error) bool {
	return Is(err, ErrCodeMissingDepth)
}
