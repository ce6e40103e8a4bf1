// Package errors provides structured error and warning types for massing.
//
// Error codes are machine-readable so the CLI and HTTP API can handle
// failures consistently. The massing core itself never aborts a batch: a
// malformed input row or an unsatisfiable room becomes a Warning attached to
// the run's results, and processing of the remaining rooms continues.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidModule, "module %.0f outside 50-300cm", m)
//	if errors.Is(err, errors.ErrCodeInvalidModule) {
//	    // Handle validation error
//	}
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
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidInputRow  Code = "INVALID_INPUT_ROW"
	ErrCodeInvalidModule    Code = "INVALID_MODULE"
	ErrCodeInvalidTolerance Code = "INVALID_TOLERANCE"
	ErrCodeInvalidHeight    Code = "INVALID_HEIGHT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"

	// Degraded but non-fatal outcomes
	ErrCodeNoAcceptableProportion Code = "NO_ACCEPTABLE_PROPORTION"
	ErrCodeAreaOutOfTolerance     Code = "AREA_OUT_OF_TOLERANCE"

	// Resource errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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

// Warning is a non-fatal issue surfaced alongside successful results.
// Row is 1-based when the warning originates from a tabular input row,
// zero otherwise. Room is the room name when known.
type Warning struct {
	Code    Code   `json:"code"`
	Room    string `json:"room,omitempty"`
	Row     int    `json:"row,omitempty"`
	Message string `json:"message"`
}

// String renders the warning for log output.
func (w Warning) String() string {
	switch {
	case w.Room != "":
		return fmt.Sprintf("%s: %s: %s", w.Code, w.Room, w.Message)
	case w.Row > 0:
		return fmt.Sprintf("%s: row %d: %s", w.Code, w.Row, w.Message)
	default:
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
}
