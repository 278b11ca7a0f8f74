// Package errors provides structured error types for cargo-brief.
//
// Every fatal condition the command can hit carries a [Code] so callers and
// tests can tell a provider failure from a not-found result without matching
// on message text:
//   - METADATA_ERROR: cargo metadata could not be run or decoded
//   - PACKAGE_NOT_FOUND: a non-wildcard pattern matched nothing
//   - OUTPUT_ERROR: rendered output could not be finalized
//   - INTERNAL_ERROR: the dependency snapshot violates its own invariants
//
// # Usage
//
//	err := errors.New(errors.ErrCodePackageNotFound, "Package %s not found", pattern)
//	if errors.Is(err, errors.ErrCodePackageNotFound) {
//	    // ...
//	}
//
//	err := errors.Wrap(errors.ErrCodeMetadata, cause, "Unable to read cargo metadata")
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
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodePackageNotFound Code = "PACKAGE_NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Provider and output errors
	ErrCodeMetadata Code = "METADATA_ERROR"
	ErrCodeOutput   Code = "OUTPUT_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
//
// Error() returns only the human-readable part since it is printed to the
// user as-is; use [GetCode] to recover the code.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
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
// Only the outermost *Error in the chain is consulted.
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

// UserMessage returns the message of the outermost *Error without its cause.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
