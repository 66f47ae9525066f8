// Package errors provides structured error types for keygrid.
//
// Every failure a user can see carries a [Code] so the CLI can report a
// short message and tests can assert the failure category without matching
// on strings.
//
// # Error Codes
//
//   - INVALID_*: malformed user input (shape descriptor, config file, paths)
//   - INPUT_READ: the layout file is missing or unreadable
//   - OUTPUT_WRITE: the image could not be written
//   - FONT_LOAD: the preferred font is unavailable (recovered internally)
//   - CANVAS_SIZE: the layout would produce an empty or oversized image
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidShape, "invalid shape part: %q", part)
//	if errors.Is(err, errors.ErrCodeInvalidShape) {
//	    // report and abort
//	}
//
//	err := errors.Wrap(errors.ErrCodeInputRead, origErr, "read %s", path)
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
	ErrCodeInvalidShape  Code = "INVALID_SHAPE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// I/O errors
	ErrCodeInputRead   Code = "INPUT_READ"
	ErrCodeOutputWrite Code = "OUTPUT_WRITE"

	// Recovered internally, never returned to the user.
	ErrCodeFontLoad Code = "FONT_LOAD"

	// Rendering errors
	ErrCodeCanvasSize Code = "CANVAS_SIZE"
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
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
